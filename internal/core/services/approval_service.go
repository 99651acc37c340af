package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// approvalService manages the approval request lifecycle.
type approvalService struct {
	BaseService
	approvalRepo  portsrepo.ApprovalReader
	overrideRoles []domain.Role
}

// NewApprovalService creates a new approval service. overrideRoles may decide
// any request regardless of its assigned role.
func NewApprovalService(uow portsrepo.UnitOfWork, approvalRepo portsrepo.ApprovalReader, overrideRoles []domain.Role, options ...ServiceOption) portssvc.ApprovalSvcFacade {
	return &approvalService{
		BaseService:   newBaseService(uow, options),
		approvalRepo:  approvalRepo,
		overrideRoles: overrideRoles,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// Decide approves or rejects a PENDING request. The request and its receipt
// are updated in the same transaction; the receipt is locked first, matching
// the lock order of RequestApproval.
func (s *approvalService) Decide(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.DecideApprovalRequest) (*domain.ApprovalRequest, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Outcome == domain.ApprovalRejected && isBlank(req.RejectionReason) {
		return nil, fmt.Errorf("%w: rejectionReason is required to reject", apperrors.ErrValidation)
	}
	receiptStatus, ok := req.Outcome.ReceiptStatus()
	if !ok {
		return nil, fmt.Errorf("%w: outcome must be APPROVED or REJECTED", apperrors.ErrValidation)
	}

	// receipt ID and assigned role never change, so they can be read before locking
	current, err := s.approvalRepo.FindApprovalRequestByID(ctx, requestID)
	if err != nil {
		s.logFailure(ctx, err, "Approval request lookup failed", slog.String("request_id", requestID))
		return nil, err
	}
	if !current.CanBeDecidedBy(actor.Role, s.overrideRoles) {
		err := fmt.Errorf("%w: role %s may not decide a request assigned to %s", apperrors.ErrForbidden, actor.Role, current.AssignedRole)
		s.LogWarn(ctx, err, "Approval decision forbidden", slog.String("request_id", requestID), slog.String("actor_id", actor.ID))
		return nil, err
	}

	call := idempotentCall{scope: ScopeDecide, key: idempotencyKey, target: requestID, request: req}
	decided, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.ApprovalRequest, string, error) {
		receipt, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, current.PaymentReceiptID)
		if err != nil {
			return nil, "", err
		}
		request, err := tx.Approvals().FindApprovalRequestByIDForUpdate(ctx, requestID)
		if err != nil {
			return nil, "", err
		}
		if request.Status != domain.ApprovalPending {
			return nil, "", fmt.Errorf("%w: approval request %s is already %s", apperrors.ErrInvalidTransition, requestID, request.Status)
		}
		if receipt.Status != domain.ReceiptPendingApproval {
			return nil, "", fmt.Errorf("%w: receipt %s is %s, expected PENDING_APPROVAL", apperrors.ErrInvalidState, receipt.ReceiptID, receipt.Status)
		}

		now := s.now()
		request.Status = req.Outcome
		request.DecidedAt = &now
		request.DecidedBy = &actor.ID
		request.DecisionNotes = req.Notes
		if req.Outcome == domain.ApprovalRejected {
			request.RejectionReason = req.RejectionReason
		}
		request.Touch(actor.ID, now)
		if err := tx.Approvals().UpdateApprovalRequest(ctx, *request); err != nil {
			return nil, "", err
		}

		receipt.Status = receiptStatus
		receipt.Touch(actor.ID, now)
		if err := tx.Receipts().UpdateReceipt(ctx, *receipt); err != nil {
			return nil, "", err
		}

		note := req.Notes
		if req.Outcome == domain.ApprovalRejected {
			note = req.RejectionReason
		}
		if err := s.recordTransition(ctx, tx, domain.EntityApproval, requestID, actor, string(domain.ApprovalPending), string(request.Status), note, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		if err := s.recordTransition(ctx, tx, domain.EntityReceipt, receipt.ReceiptID, actor, string(domain.ReceiptPendingApproval), string(receipt.Status), note, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		return request, requestID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Approval decision rejected",
			slog.String("request_id", requestID),
			slog.String("outcome", string(req.Outcome)),
			slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Approval request decided",
		slog.String("request_id", requestID),
		slog.String("receipt_id", decided.PaymentReceiptID),
		slog.String("outcome", string(decided.Status)),
		slog.String("actor_id", actor.ID))
	return decided, nil
}

// AttachEvidence appends an evidence reference to a PENDING request.
func (s *approvalService) AttachEvidence(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.AttachEvidenceRequest) (*domain.ApprovalRequest, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	call := idempotentCall{scope: ScopeAttachEvidence, key: idempotencyKey, target: requestID, request: req}
	request, err := runIdempotent(ctx, &s.BaseService, call, func(ctx context.Context, tx portsrepo.TxRepositories) (*domain.ApprovalRequest, string, error) {
		request, err := tx.Approvals().FindApprovalRequestByIDForUpdate(ctx, requestID)
		if err != nil {
			return nil, "", err
		}
		if request.Status != domain.ApprovalPending {
			return nil, "", fmt.Errorf("%w: evidence can only be attached while PENDING, request %s is %s", apperrors.ErrInvalidTransition, requestID, request.Status)
		}

		now := s.now()
		request.Attachments = append(request.Attachments, req.AttachmentRef)
		request.Touch(actor.ID, now)
		if err := tx.Approvals().UpdateApprovalRequest(ctx, *request); err != nil {
			return nil, "", err
		}
		note := "attached " + req.AttachmentRef
		if err := s.recordTransition(ctx, tx, domain.EntityApproval, requestID, actor, string(request.Status), string(request.Status), &note, idempotencyKey, now); err != nil {
			return nil, "", err
		}
		return request, requestID, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to attach evidence", slog.String("request_id", requestID), slog.String("actor_id", actor.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Evidence attached",
		slog.String("request_id", requestID),
		slog.Int("attachments", len(request.Attachments)),
		slog.String("actor_id", actor.ID))
	return request, nil
}

// GetApprovalRequest retrieves an approval request by ID.
func (s *approvalService) GetApprovalRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	request, err := s.approvalRepo.FindApprovalRequestByID(ctx, requestID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get approval request", slog.String("request_id", requestID))
		return nil, err
	}
	return request, nil
}

// ListApprovalRequests retrieves a page of the approval queue, newest first.
func (s *approvalService) ListApprovalRequests(ctx context.Context, params dto.ListApprovalRequestsParams) (*dto.ListApprovalRequestsResponse, error) {
	var filter domain.ApprovalFilter
	if params.Status != "" {
		status := domain.ApprovalStatus(params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown approval status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}
	if params.AssignedRole != "" {
		role := domain.ParseRole(params.AssignedRole)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, params.AssignedRole)
		}
		filter.AssignedRole = &role
	}
	if params.PaymentReceiptID != "" {
		receiptID := params.PaymentReceiptID
		filter.PaymentReceiptID = &receiptID
	}

	requests, nextToken, err := s.approvalRepo.ListApprovalRequests(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list approval requests")
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}

	return &dto.ListApprovalRequestsResponse{
		ApprovalRequests: dto.ToListApprovalRequestResponse(requests),
		NextToken:        nextToken,
	}, nil
}
