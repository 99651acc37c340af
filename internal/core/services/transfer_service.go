package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// transferService implements the treasury transfer state machine.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferReader
	accounts     domain.AccountRegistry
}

// NewTransferService creates a new transfer service.
func NewTransferService(uow portsrepo.UnitOfWork, transferRepo portsrepo.TransferReader, accounts domain.AccountRegistry, options ...ServiceOption) portssvc.TransferSvcFacade {
	return &transferService{
		BaseService:  newBaseService(uow, options),
		transferRepo: transferRepo,
		accounts:     accounts,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// Plan creates a PLANNED transfer. A funded transfer locks its receipt so the
// allocation check and the insert cannot interleave with another Plan.
func (s *transferService) Plan(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.PlanTransferRequest) (*domain.TreasuryTransfer, error) {
	if err := s.validatePlan(req); err != nil {
		s.LogWarn(ctx, err, "Invalid transfer plan", slog.String("actor_id", actor.ID))
		return nil, err
	}
	fundingID := req.FundingReceiptID
	if isBlank(fundingID) {
		fundingID = nil
	}

	call := idempotentCall{scope: ScopePlanTransfer, key: idempotencyKey, request: req}
	transfer, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.TreasuryTransfer, string, error) {
		if fundingID != nil {
			if err := s.checkAllocation(ctx, tx, *fundingID, req.Amount); err != nil {
				return nil, "", err
			}
		}

		now := s.now()
		transfer := domain.TreasuryTransfer{
			TransferID:         s.newID(),
			SourceAccount:      req.SourceAccount,
			DestinationAccount: req.DestinationAccount,
			Method:             req.Method,
			Amount:             req.Amount,
			Status:             domain.TransferPlanned,
			PaymentReceiptID:   fundingID,
			PlannedAt:          now,
			Notes:              req.Notes,
			AuditFields:        domain.NewAuditFields(actor.ID, now),
		}
		if err := tx.Transfers().SaveTransfer(ctx, transfer); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityTransfer, transfer.TransferID, actor, "", string(transfer.Status), req.Notes, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		return &transfer, transfer.TransferID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to plan transfer", slog.Int64("amount", req.Amount), slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer planned",
		slog.String("transfer_id", transfer.TransferID),
		slog.Int64("amount", transfer.Amount),
		slog.String("source", transfer.SourceAccount),
		slog.String("destination", transfer.DestinationAccount),
		slog.String("actor_id", actor.ID))
	return transfer, nil
}

func (s *transferService) validatePlan(req dto.PlanTransferRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.SourceAccount == req.DestinationAccount {
		return fmt.Errorf("%w: source and destination account must differ", apperrors.ErrValidation)
	}
	if !s.accounts.IsSource(req.SourceAccount) {
		return fmt.Errorf("%w: unknown source account %q", apperrors.ErrValidation, req.SourceAccount)
	}
	if !s.accounts.IsDestination(req.DestinationAccount) {
		return fmt.Errorf("%w: unknown destination account %q", apperrors.ErrValidation, req.DestinationAccount)
	}
	return nil
}

// checkAllocation locks the funding receipt and verifies that amount fits in
// its unallocated balance. The boundary is inclusive.
func (s *transferService) checkAllocation(ctx context.Context, tx portsrepo.TxRepositories, receiptID string, amount int64) error {
	receipt, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, receiptID)
	if err != nil {
		return err
	}
	if !receipt.Status.IsCleared() {
		return fmt.Errorf("%w: funding receipt %s is %s, must be APPROVED or RECEIVED", apperrors.ErrInvalidState, receiptID, receipt.Status)
	}
	allocated, err := tx.Transfers().SumAllocatedForReceipt(ctx, receiptID)
	if err != nil {
		return err
	}
	if !receipt.CanFund(allocated, amount) {
		return fmt.Errorf("%w: receipt %s has %d of %d unallocated, requested %d",
			apperrors.ErrInsufficientFunds, receiptID, receipt.Amount-allocated, receipt.Amount, amount)
	}
	return nil
}

// Submit moves PLANNED -> SUBMITTED and records the bank reference.
func (s *transferService) Submit(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.SubmitTransferRequest) (*domain.TreasuryTransfer, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	call := idempotentCall{scope: ScopeSubmitTransfer, key: idempotencyKey, target: transferID, request: req}
	return s.transition(ctx, actor, call, domain.TransferSubmitted, nil, func(t *domain.TreasuryTransfer, now time.Time) {
		t.SubmittedAt = &now
		t.SourceBankRef = req.BankRef
	})
}

// Confirm moves SUBMITTED -> CONFIRMED and records the destination reference.
func (s *transferService) Confirm(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.ConfirmTransferRequest) (*domain.TreasuryTransfer, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	call := idempotentCall{scope: ScopeConfirmTransfer, key: idempotencyKey, target: transferID, request: req}
	return s.transition(ctx, actor, call, domain.TransferConfirmed, nil, func(t *domain.TreasuryTransfer, now time.Time) {
		t.ConfirmedAt = &now
		t.DestinationRef = req.DestinationRef
	})
}

// Cancel moves PLANNED or SUBMITTED -> CANCELED. Confirmed transfers need a
// separate reversing transfer.
func (s *transferService) Cancel(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.CancelTransferRequest) (*domain.TreasuryTransfer, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	call := idempotentCall{scope: ScopeCancelTransfer, key: idempotencyKey, target: transferID, request: req}
	return s.transition(ctx, actor, call, domain.TransferCanceled, req.Reason, func(t *domain.TreasuryTransfer, now time.Time) {
		t.CanceledAt = &now
	})
}

// transition locks the transfer, checks the edge and writes the new status
// and its audit entry in one transaction.
func (s *transferService) transition(ctx context.Context, actor domain.Actor, call idempotentCall, to domain.TransferStatus, note *string, apply func(t *domain.TreasuryTransfer, now time.Time)) (*domain.TreasuryTransfer, error) {
	var from domain.TransferStatus
	transfer, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.TreasuryTransfer, string, error) {
		transfer, err := tx.Transfers().FindTransferByIDForUpdate(ctx, call.target)
		if err != nil {
			return nil, "", err
		}
		if !transfer.Status.CanTransitionTo(to) {
			return nil, "", fmt.Errorf("%w: transfer %s cannot move from %s to %s", apperrors.ErrInvalidTransition, transfer.TransferID, transfer.Status, to)
		}

		now := s.now()
		from = transfer.Status
		transfer.Status = to
		apply(transfer, now)
		transfer.Touch(actor.ID, now)
		if err := tx.Transfers().UpdateTransfer(ctx, *transfer); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityTransfer, transfer.TransferID, actor, string(from), string(to), note, call.key, now); err != nil {
			return nil, "", err
		}
		return transfer, transfer.TransferID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Transfer transition rejected",
			slog.String("transfer_id", call.target),
			slog.String("to_status", string(to)),
			slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer transitioned",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("from_status", string(from)),
		slog.String("to_status", string(transfer.Status)),
		slog.String("actor_id", actor.ID))
	return transfer, nil
}

// GetTransfer retrieves a transfer by ID.
func (s *transferService) GetTransfer(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get transfer", slog.String("transfer_id", transferID))
		return nil, err
	}
	return transfer, nil
}

// ListTransfers retrieves a page of transfers, newest first.
func (s *transferService) ListTransfers(ctx context.Context, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	var filter domain.TransferFilter
	if params.Status != "" {
		status := domain.TransferStatus(params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown transfer status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}
	if params.PaymentReceiptID != "" {
		receiptID := params.PaymentReceiptID
		filter.PaymentReceiptID = &receiptID
	}

	transfers, nextToken, err := s.transferRepo.ListTransfers(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list transfers")
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return &dto.ListTransfersResponse{
		Transfers: dto.ToListTransferResponse(transfers),
		NextToken: nextToken,
	}, nil
}
