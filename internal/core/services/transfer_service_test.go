package services_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	ledgerSuite
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func planRequest(amount int64, fundingReceiptID *string) dto.PlanTransferRequest {
	return dto.PlanTransferRequest{
		SourceAccount:      "OPERATING_BANK",
		DestinationAccount: "EXCHANGE_MAIN",
		Method:             domain.TransferWire,
		Amount:             amount,
		FundingReceiptID:   fundingReceiptID,
	}
}

func (s *TransferServiceTestSuite) plan(amount int64, fundingReceiptID *string) *domain.TreasuryTransfer {
	transfer, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(amount, fundingReceiptID))
	s.Require().NoError(err)
	return transfer
}

func (s *TransferServiceTestSuite) TestPlan_Unfunded() {
	req := planRequest(2500, nil)
	req.Notes = strPtr("monthly sweep")

	transfer, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), req)
	s.Require().NoError(err)
	s.Equal(domain.TransferPlanned, transfer.Status)
	s.Nil(transfer.PaymentReceiptID)
	s.False(transfer.PlannedAt.IsZero())
	s.Nil(transfer.SubmittedAt)

	trail := s.auditTrail(domain.EntityTransfer, transfer.TransferID)
	s.Require().Len(trail, 1)
	s.Equal(string(domain.TransferPlanned), trail[0].ToStatus)
	s.Equal("monthly sweep", *trail[0].Note)
}

func (s *TransferServiceTestSuite) TestPlan_Validation() {
	same := planRequest(100, nil)
	same.DestinationAccount = same.SourceAccount

	unknownSource := planRequest(100, nil)
	unknownSource.SourceAccount = "PETTY_CASH"

	unknownDestination := planRequest(100, nil)
	unknownDestination.DestinationAccount = "SOMEWHERE"

	badMethod := planRequest(100, nil)
	badMethod.Method = "SWIFT"

	testCases := []struct {
		name string
		req  dto.PlanTransferRequest
	}{
		{"zero amount", planRequest(0, nil)},
		{"negative amount", planRequest(-1, nil)},
		{"amount above maximum", planRequest(dto.MaxAmount+1, nil)},
		{"same account", same},
		{"unknown source", unknownSource},
		{"unknown destination", unknownDestination},
		{"unknown method", badMethod},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), tc.req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *TransferServiceTestSuite) TestPlan_FundingReceiptChecks() {
	_, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(100, strPtr("missing")))
	s.ErrorIs(err, apperrors.ErrNotFound)

	pending := s.recordReceipt(domain.MethodCash, 10000)
	_, err = s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(100, &pending.ReceiptID))
	s.ErrorIs(err, apperrors.ErrInvalidState)

	s.requestApproval(pending.ReceiptID)
	_, err = s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(100, &pending.ReceiptID))
	s.ErrorIs(err, apperrors.ErrInvalidState)

	transfer := s.plan(100, strPtr(""))
	s.Nil(transfer.PaymentReceiptID)
}

// 7000 fits, 4000 more would exceed 10000, 3000 lands exactly on the boundary.
func (s *TransferServiceTestSuite) TestPlan_AllocationBoundary() {
	receipt := s.approvedCashReceipt(10000)

	s.plan(7000, &receipt.ReceiptID)

	_, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(4000, &receipt.ReceiptID))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	s.plan(3000, &receipt.ReceiptID)

	_, err = s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(1, &receipt.ReceiptID))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (s *TransferServiceTestSuite) TestPlan_HugeAmountDoesNotWrapAllocation() {
	receipt := s.approvedCashReceipt(10000)
	s.plan(7000, &receipt.ReceiptID)

	_, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(math.MaxInt64-1000, &receipt.ReceiptID))
	s.ErrorIs(err, apperrors.ErrValidation)

	page, err := s.svc.Transfer.ListTransfers(s.ctx, dto.ListTransfersParams{Limit: 10})
	s.Require().NoError(err)
	s.Len(page.Transfers, 1)
}

func (s *TransferServiceTestSuite) TestPlan_CanceledTransferReleasesAllocation() {
	receipt := s.approvedCashReceipt(10000)
	first := s.plan(10000, &receipt.ReceiptID)

	_, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(10000, &receipt.ReceiptID))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = s.svc.Transfer.Cancel(s.ctx, financeActor, newKey(), first.TransferID, dto.CancelTransferRequest{Reason: strPtr("wrong destination")})
	s.Require().NoError(err)

	s.plan(10000, &receipt.ReceiptID)
}

func (s *TransferServiceTestSuite) TestPlan_ConcurrentPlansNeverOverAllocate() {
	receipt := s.approvedCashReceipt(10000)

	const callers = 10
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.svc.Transfer.Plan(context.Background(), financeActor, newKey(), planRequest(3000, &receipt.ReceiptID))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	}
	s.Equal(3, succeeded)

	page, err := s.svc.Transfer.ListTransfers(s.ctx, dto.ListTransfersParams{PaymentReceiptID: receipt.ReceiptID, Limit: 50})
	s.Require().NoError(err)
	var allocated int64
	for _, t := range page.Transfers {
		allocated += t.Amount
	}
	s.LessOrEqual(allocated, receipt.Amount)
	s.Equal(int64(9000), allocated)
}

func (s *TransferServiceTestSuite) TestRoundTrip() {
	transfer := s.plan(5000, nil)

	submitted, err := s.svc.Transfer.Submit(s.ctx, financeActor, newKey(), transfer.TransferID, dto.SubmitTransferRequest{BankRef: strPtr("FED-1234")})
	s.Require().NoError(err)
	s.Equal(domain.TransferSubmitted, submitted.Status)
	s.Require().NotNil(submitted.SubmittedAt)
	s.Equal("FED-1234", *submitted.SourceBankRef)

	confirmed, err := s.svc.Transfer.Confirm(s.ctx, financeActor, newKey(), transfer.TransferID, dto.ConfirmTransferRequest{DestinationRef: strPtr("EXCH-99")})
	s.Require().NoError(err)
	s.Equal(domain.TransferConfirmed, confirmed.Status)
	s.NotNil(confirmed.SubmittedAt)
	s.NotNil(confirmed.ConfirmedAt)
	s.True(confirmed.ConfirmedAt.After(*confirmed.SubmittedAt))
	s.Equal("EXCH-99", *confirmed.DestinationRef)

	_, err = s.svc.Transfer.Cancel(s.ctx, financeActor, newKey(), transfer.TransferID, dto.CancelTransferRequest{})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	_, err = s.svc.Transfer.Submit(s.ctx, financeActor, newKey(), transfer.TransferID, dto.SubmitTransferRequest{})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	_, err = s.svc.Transfer.Confirm(s.ctx, financeActor, newKey(), transfer.TransferID, dto.ConfirmTransferRequest{})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)

	got, err := s.svc.Transfer.GetTransfer(s.ctx, transfer.TransferID)
	s.Require().NoError(err)
	s.Equal(domain.TransferConfirmed, got.Status)
	s.Len(s.auditTrail(domain.EntityTransfer, transfer.TransferID), 3)
}

func (s *TransferServiceTestSuite) TestConfirm_RequiresSubmission() {
	transfer := s.plan(5000, nil)
	_, err := s.svc.Transfer.Confirm(s.ctx, financeActor, newKey(), transfer.TransferID, dto.ConfirmTransferRequest{})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (s *TransferServiceTestSuite) TestCancel() {
	planned := s.plan(100, nil)
	canceled, err := s.svc.Transfer.Cancel(s.ctx, financeActor, newKey(), planned.TransferID, dto.CancelTransferRequest{})
	s.Require().NoError(err)
	s.Equal(domain.TransferCanceled, canceled.Status)
	s.NotNil(canceled.CanceledAt)

	submitted := s.plan(200, nil)
	_, err = s.svc.Transfer.Submit(s.ctx, financeActor, newKey(), submitted.TransferID, dto.SubmitTransferRequest{})
	s.Require().NoError(err)
	canceled, err = s.svc.Transfer.Cancel(s.ctx, financeActor, newKey(), submitted.TransferID, dto.CancelTransferRequest{Reason: strPtr("bank rejected")})
	s.Require().NoError(err)
	s.Equal(domain.TransferCanceled, canceled.Status)
	s.Nil(canceled.ConfirmedAt)

	trail := s.auditTrail(domain.EntityTransfer, submitted.TransferID)
	last := trail[len(trail)-1]
	s.Equal(string(domain.TransferSubmitted), last.FromStatus)
	s.Equal(string(domain.TransferCanceled), last.ToStatus)
	s.Equal("bank rejected", *last.Note)

	_, err = s.svc.Transfer.Confirm(s.ctx, financeActor, newKey(), submitted.TransferID, dto.ConfirmTransferRequest{})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	_, err = s.svc.Transfer.Cancel(s.ctx, financeActor, newKey(), "missing", dto.CancelTransferRequest{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransferServiceTestSuite) TestSubmit_ReplayKeepsSubmittedAt() {
	transfer := s.plan(5000, nil)
	key := newKey()
	req := dto.SubmitTransferRequest{BankRef: strPtr("FED-1")}

	first, err := s.svc.Transfer.Submit(s.ctx, financeActor, key, transfer.TransferID, req)
	s.Require().NoError(err)
	second, err := s.svc.Transfer.Submit(s.ctx, financeActor, key, transfer.TransferID, req)
	s.Require().NoError(err)

	s.Equal(first.TransferID, second.TransferID)
	s.Equal(first.Status, second.Status)
	s.Require().NotNil(second.SubmittedAt)
	s.True(first.SubmittedAt.Equal(*second.SubmittedAt))
	s.Equal(first.Version, second.Version)

	got, err := s.svc.Transfer.GetTransfer(s.ctx, transfer.TransferID)
	s.Require().NoError(err)
	s.True(first.SubmittedAt.Equal(*got.SubmittedAt))
	s.Len(s.auditTrail(domain.EntityTransfer, transfer.TransferID), 2)
}

func (s *TransferServiceTestSuite) TestSubmit_KeyReusedForOtherTransfer() {
	a := s.plan(100, nil)
	b := s.plan(200, nil)
	key := newKey()

	_, err := s.svc.Transfer.Submit(s.ctx, financeActor, key, a.TransferID, dto.SubmitTransferRequest{})
	s.Require().NoError(err)
	_, err = s.svc.Transfer.Submit(s.ctx, financeActor, key, b.TransferID, dto.SubmitTransferRequest{})
	s.ErrorIs(err, apperrors.ErrConflict)

	got, err := s.svc.Transfer.GetTransfer(s.ctx, b.TransferID)
	s.Require().NoError(err)
	s.Equal(domain.TransferPlanned, got.Status)
}

func (s *TransferServiceTestSuite) TestListTransfers() {
	receipt := s.approvedCashReceipt(10000)
	s.plan(1000, &receipt.ReceiptID)
	s.plan(2000, nil)
	third := s.plan(3000, nil)
	_, err := s.svc.Transfer.Submit(s.ctx, financeActor, newKey(), third.TransferID, dto.SubmitTransferRequest{})
	s.Require().NoError(err)

	page, err := s.svc.Transfer.ListTransfers(s.ctx, dto.ListTransfersParams{Status: string(domain.TransferPlanned), Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(page.Transfers, 2)
	s.Equal(int64(2000), page.Transfers[0].Amount)

	page, err = s.svc.Transfer.ListTransfers(s.ctx, dto.ListTransfersParams{PaymentReceiptID: receipt.ReceiptID, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(page.Transfers, 1)
	s.Equal(int64(1000), page.Transfers[0].Amount)

	_, err = s.svc.Transfer.ListTransfers(s.ctx, dto.ListTransfersParams{Status: "SENT"})
	s.ErrorIs(err, apperrors.ErrValidation)
}
