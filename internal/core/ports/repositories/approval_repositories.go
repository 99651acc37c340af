package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// ApprovalReader defines read operations for approval requests
type ApprovalReader interface {
	// FindApprovalRequestByID retrieves a specific approval request.
	FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// ListApprovalRequests retrieves approval requests newest first using token-based pagination.
	ListApprovalRequests(ctx context.Context, filter domain.ApprovalFilter, limit int, nextToken *string) ([]domain.ApprovalRequest, *string, error)
}

// ApprovalTxRepository defines approval request operations inside a store transaction
type ApprovalTxRepository interface {
	// SaveApprovalRequest persists a new approval request. It returns
	// apperrors.ErrConflict if the receipt already has a PENDING request.
	SaveApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error

	// FindApprovalRequestByIDForUpdate selects an approval request and locks it.
	FindApprovalRequestByIDForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// FindPendingApprovalByReceiptID returns the receipt's PENDING request or apperrors.ErrNotFound.
	FindPendingApprovalByReceiptID(ctx context.Context, receiptID string) (*domain.ApprovalRequest, error)

	// UpdateApprovalRequest writes status, decision fields and attachments of a locked request.
	UpdateApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error
}
