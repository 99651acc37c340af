package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/core/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	ledgerSuite
	period domain.Period
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.ledgerSuite.SetupTest()
	s.period = domain.Period{From: s.base.Add(-time.Hour), To: s.base.Add(24 * time.Hour)}

	approved := s.approvedCashReceipt(10000)

	card := s.recordReceipt(domain.MethodCard, 5000)
	_, err := s.svc.Receipt.MarkReceived(s.ctx, opsActor, newKey(), card.ReceiptID)
	s.Require().NoError(err)

	s.recordReceipt(domain.MethodCheck, 2000)

	awaiting := s.recordReceipt(domain.MethodCash, 3000)
	s.requestApproval(awaiting.ReceiptID)

	rejected := s.recordReceipt(domain.MethodCash, 800)
	request := s.requestApproval(rejected.ReceiptID)
	_, err = s.svc.Approval.Decide(s.ctx, legalActor, newKey(), request.RequestID, dto.DecideApprovalRequest{
		Outcome:         domain.ApprovalRejected,
		RejectionReason: strPtr("counterfeit notes"),
	})
	s.Require().NoError(err)

	wire, err := s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), planRequest(4000, &approved.ReceiptID))
	s.Require().NoError(err)
	_, err = s.svc.Transfer.Submit(s.ctx, financeActor, newKey(), wire.TransferID, dto.SubmitTransferRequest{})
	s.Require().NoError(err)
	_, err = s.svc.Transfer.Confirm(s.ctx, financeActor, newKey(), wire.TransferID, dto.ConfirmTransferRequest{})
	s.Require().NoError(err)

	ach := planRequest(1000, nil)
	ach.Method = domain.TransferACH
	_, err = s.svc.Transfer.Plan(s.ctx, financeActor, newKey(), ach)
	s.Require().NoError(err)
}

func (s *ReconciliationServiceTestSuite) TestTotals() {
	totals, err := s.svc.Reconciliation.Totals(s.ctx, s.period)
	s.Require().NoError(err)

	s.Equal(int64(15000), totals.Received)
	s.Equal(int64(5000), totals.Pending)
	s.Equal(int64(4000), totals.TransferredOut)
	s.Equal(int64(5), totals.ReceiptCount)
	s.Equal(s.period, totals.Period)
	s.True(totals.AsOf.Equal(s.base))
}

func (s *ReconciliationServiceTestSuite) TestTotals_EmptyPeriod() {
	later := domain.Period{From: s.base.Add(48 * time.Hour), To: s.base.Add(72 * time.Hour)}
	totals, err := s.svc.Reconciliation.Totals(s.ctx, later)
	s.Require().NoError(err)
	s.Zero(totals.Received)
	s.Zero(totals.Pending)
	s.Zero(totals.TransferredOut)
	s.Zero(totals.ReceiptCount)
}

func (s *ReconciliationServiceTestSuite) TestTotals_InvalidPeriod() {
	_, err := s.svc.Reconciliation.Totals(s.ctx, domain.Period{From: s.base, To: s.base})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.svc.Reconciliation.ByMethod(s.ctx, domain.Period{From: s.base, To: s.base.Add(-time.Minute)})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReconciliationServiceTestSuite) TestByMethod() {
	breakdown, err := s.svc.Reconciliation.ByMethod(s.ctx, s.period)
	s.Require().NoError(err)

	s.Require().Len(breakdown.Receipts, len(domain.AllPaymentMethods))
	byMethod := map[domain.PaymentMethod]domain.MethodTotals{}
	for i, row := range breakdown.Receipts {
		s.Equal(domain.AllPaymentMethods[i], row.Method)
		byMethod[row.Method] = row
	}
	s.Equal(domain.MethodTotals{Method: domain.MethodCash, Received: 10000, Pending: 3000, ReceiptCount: 3}, byMethod[domain.MethodCash])
	s.Equal(domain.MethodTotals{Method: domain.MethodCard, Received: 5000, ReceiptCount: 1}, byMethod[domain.MethodCard])
	s.Equal(domain.MethodTotals{Method: domain.MethodCheck, Pending: 2000, ReceiptCount: 1}, byMethod[domain.MethodCheck])
	s.Equal(domain.MethodTotals{Method: domain.MethodBankWire}, byMethod[domain.MethodBankWire])

	s.Equal([]domain.TransferMethodTotals{
		{Method: domain.TransferACH},
		{Method: domain.TransferWire, TransferredOut: 4000, TransferCount: 1},
	}, breakdown.Transfers)
}

func (s *ReconciliationServiceTestSuite) TestAuditTrail() {
	_, err := s.svc.Reconciliation.AuditTrail(s.ctx, "INVOICE", "x")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Reconciliation.AuditTrail(s.ctx, domain.EntityReceipt, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconciliationService_StoreErrors(t *testing.T) {
	repo := new(MockReconciliationRepository)
	auditRepo := new(MockAuditReader)
	svc := services.NewReconciliationService(repo, auditRepo)
	ctx := context.Background()
	period := domain.Period{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	repo.On("GetReconciliationSnapshot", mock.Anything, period).
		Return(nil, fmt.Errorf("%w: statement timeout", apperrors.ErrStoreUnavailable)).Once()
	_, err := svc.Totals(ctx, period)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	auditRepo.On("ListAuditEntries", mock.Anything, domain.EntityTransfer, "t-1").
		Return([]domain.AuditEntry{{EntityType: domain.EntityTransfer, EntityID: "t-1", Sequence: 1, ToStatus: "PLANNED"}}, nil).Once()
	entries, err := svc.AuditTrail(ctx, domain.EntityTransfer, "t-1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	repo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestReconciliationService_UnknownMethodsIgnored(t *testing.T) {
	repo := new(MockReconciliationRepository)
	svc := services.NewReconciliationService(repo, new(MockAuditReader))
	period := domain.Period{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.On("GetReconciliationSnapshot", mock.Anything, period).Return(&domain.ReconciliationSnapshot{
		Receipts: []domain.ReceiptAggregate{
			{Method: "LEGACY", Status: domain.ReceiptReceived, Amount: 999, Count: 1},
			{Method: domain.MethodOther, Status: domain.ReceiptRefunded, Amount: 50, Count: 1},
		},
	}, nil)

	breakdown, err := svc.ByMethod(context.Background(), period)
	require.NoError(t, err)
	for _, row := range breakdown.Receipts {
		assert.Zero(t, row.Received)
		assert.Zero(t, row.Pending)
	}
	assert.Equal(t, int64(1), breakdown.Receipts[len(breakdown.Receipts)-1].ReceiptCount)
}
