package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// receiptService implements the payment receipt state machine.
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptReader
	policy      domain.MethodPolicy
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(uow portsrepo.UnitOfWork, receiptRepo portsrepo.ReceiptReader, policy domain.MethodPolicy, options ...ServiceOption) portssvc.ReceiptSvcFacade {
	return &receiptService{
		BaseService: newBaseService(uow, options),
		receiptRepo: receiptRepo,
		policy:      policy,
	}
}

// Ensure receiptService implements the ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// RecordManualReceipt creates a PENDING receipt.
func (s *receiptService) RecordManualReceipt(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.RecordReceiptRequest) (*domain.PaymentReceipt, error) {
	if err := validateStruct(req); err != nil {
		s.LogWarn(ctx, err, "Invalid receipt", slog.String("actor_id", actor.ID))
		return nil, err
	}

	call := idempotentCall{scope: ScopeRecordReceipt, key: idempotencyKey, request: req}
	receipt, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.PaymentReceipt, string, error) {
		now := s.now()
		receipt := domain.PaymentReceipt{
			ReceiptID:   s.newID(),
			Method:      req.Method,
			Amount:      req.Amount,
			Status:      domain.ReceiptPending,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			Description: req.Description,
			Notes:       req.Notes,
			ExternalRef: req.ExternalRef,
			AuditFields: domain.NewAuditFields(actor.ID, now),
		}
		if err := tx.Receipts().SaveReceipt(ctx, receipt); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityReceipt, receipt.ReceiptID, actor, "", string(receipt.Status), nil, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		return &receipt, receipt.ReceiptID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to record receipt", slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt recorded",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("method", string(receipt.Method)),
		slog.Int64("amount", receipt.Amount),
		slog.String("actor_id", actor.ID))
	return receipt, nil
}

// RequestApproval opens an approval request for a PENDING receipt.
func (s *receiptService) RequestApproval(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RequestApprovalRequest) (*domain.ApprovalRequest, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	assignedRole := domain.RoleLegal
	if req.AssignedRole != "" {
		assignedRole = domain.ParseRole(string(req.AssignedRole))
		if !assignedRole.IsValid() {
			return nil, fmt.Errorf("%w: unknown assigned role %q", apperrors.ErrValidation, req.AssignedRole)
		}
	}

	call := idempotentCall{scope: ScopeRequestApproval, key: idempotencyKey, target: receiptID, request: req}
	request, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.ApprovalRequest, string, error) {
		receipt, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, receiptID)
		if err != nil {
			return nil, "", err
		}

		existing, err := tx.Approvals().FindPendingApprovalByReceiptID(ctx, receiptID)
		if err == nil {
			return nil, "", fmt.Errorf("%w: receipt %s already has pending approval request %s", apperrors.ErrConflict, receiptID, existing.RequestID)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", err
		}

		if receipt.Status != domain.ReceiptPending {
			return nil, "", fmt.Errorf("%w: receipt %s is %s, approval can only be requested while PENDING", apperrors.ErrInvalidTransition, receiptID, receipt.Status)
		}
		if !s.policy.RequiresCompliance(receipt.Method) && !req.DesignateCompliance {
			return nil, "", fmt.Errorf("%w: %s receipts do not go through approval unless designated for compliance review", apperrors.ErrInvalidTransition, receipt.Method)
		}

		now := s.now()
		request := domain.ApprovalRequest{
			RequestID:        s.newID(),
			PaymentReceiptID: receiptID,
			Status:           domain.ApprovalPending,
			AssignedRole:     assignedRole,
			RequestedAt:      now,
			RequestedBy:      actor.ID,
			Attachments:      []string{},
			AuditFields:      domain.NewAuditFields(actor.ID, now),
		}
		if err := tx.Approvals().SaveApprovalRequest(ctx, request); err != nil {
			return nil, "", err
		}

		from := receipt.Status
		receipt.Status = domain.ReceiptPendingApproval
		receipt.Touch(actor.ID, now)
		if err := tx.Receipts().UpdateReceipt(ctx, *receipt); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityReceipt, receiptID, actor, string(from), string(receipt.Status), req.Notes, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityApproval, request.RequestID, actor, "", string(request.Status), req.Notes, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		return &request, request.RequestID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to request approval", slog.String("receipt_id", receiptID), slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Approval requested",
		slog.String("receipt_id", receiptID),
		slog.String("request_id", request.RequestID),
		slog.String("assigned_role", string(request.AssignedRole)),
		slog.String("actor_id", actor.ID))
	return request, nil
}

// MarkReceived confirms funds are in hand. Allowed from APPROVED, or from
// PENDING for auto-clearing methods.
func (s *receiptService) MarkReceived(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string) (*domain.PaymentReceipt, error) {
	call := idempotentCall{scope: ScopeMarkReceived, key: idempotencyKey, target: receiptID}
	return s.transition(ctx, actor, call, domain.ReceiptReceived, nil, func(r *domain.PaymentReceipt) error {
		switch {
		case r.Status == domain.ReceiptApproved:
		case r.Status == domain.ReceiptPending && s.policy.AutoClears(r.Method):
		case r.Status == domain.ReceiptPending:
			return fmt.Errorf("%w: %s receipts cannot be marked received before approval", apperrors.ErrInvalidTransition, r.Method)
		default:
			return fmt.Errorf("%w: receipt %s is %s", apperrors.ErrInvalidTransition, r.ReceiptID, r.Status)
		}
		return nil
	})
}

// Refund moves an APPROVED or RECEIVED receipt to REFUNDED.
func (s *receiptService) Refund(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RefundReceiptRequest) (*domain.PaymentReceipt, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	call := idempotentCall{scope: ScopeRefund, key: idempotencyKey, target: receiptID, request: req}
	return s.transition(ctx, actor, call, domain.ReceiptRefunded, req.Reason, func(r *domain.PaymentReceipt) error {
		if !r.Status.IsCleared() {
			return fmt.Errorf("%w: receipt %s is %s, only APPROVED or RECEIVED receipts can be refunded", apperrors.ErrInvalidTransition, r.ReceiptID, r.Status)
		}
		return nil
	})
}

// transition locks the receipt, runs the guard and writes the new status and
// its audit entry in one transaction.
func (s *receiptService) transition(ctx context.Context, actor domain.Actor, call idempotentCall, to domain.ReceiptStatus, note *string, guard func(r *domain.PaymentReceipt) error) (*domain.PaymentReceipt, error) {
	var from domain.ReceiptStatus
	receipt, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.PaymentReceipt, string, error) {
		receipt, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, call.target)
		if err != nil {
			return nil, "", err
		}
		if err := guard(receipt); err != nil {
			return nil, "", err
		}
		if !receipt.Status.CanTransitionTo(to) {
			return nil, "", fmt.Errorf("%w: receipt %s cannot move from %s to %s", apperrors.ErrInvalidTransition, receipt.ReceiptID, receipt.Status, to)
		}

		now := s.now()
		from = receipt.Status
		receipt.Status = to
		if to == domain.ReceiptReceived {
			receipt.ReceivedAt = &now
		}
		receipt.Touch(actor.ID, now)
		if err := tx.Receipts().UpdateReceipt(ctx, *receipt); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityReceipt, receipt.ReceiptID, actor, string(from), string(to), note, call.key, now); err != nil {
			return nil, "", err
		}
		return receipt, receipt.ReceiptID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Receipt transition rejected",
			slog.String("receipt_id", call.target),
			slog.String("to_status", string(to)),
			slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt transitioned",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("from_status", string(from)),
		slog.String("to_status", string(receipt.Status)),
		slog.String("actor_id", actor.ID))
	return receipt, nil
}

// GetReceipt retrieves a receipt by ID.
func (s *receiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get receipt", slog.String("receipt_id", receiptID))
		return nil, err
	}
	return receipt, nil
}

// ListReceipts retrieves a page of receipts, newest first.
func (s *receiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	var filter domain.ReceiptFilter
	if params.Status != "" {
		status := domain.ReceiptStatus(params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown receipt status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}
	if params.Method != "" {
		method := domain.PaymentMethod(params.Method)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, params.Method)
		}
		filter.Method = &method
	}

	receipts, nextToken, err := s.receiptRepo.ListReceipts(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list receipts")
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return &dto.ListReceiptsResponse{
		Receipts:  dto.ToListReceiptResponse(receipts),
		NextToken: nextToken,
	}, nil
}
