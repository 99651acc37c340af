package services

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// ApprovalReaderSvc defines read operations for approval requests
type ApprovalReaderSvc interface {
	// GetApprovalRequest retrieves a specific approval request.
	GetApprovalRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// ListApprovalRequests retrieves a paginated approval queue.
	ListApprovalRequests(ctx context.Context, params dto.ListApprovalRequestsParams) (*dto.ListApprovalRequestsResponse, error)
}

// ApprovalWriterSvc defines approval request transitions
type ApprovalWriterSvc interface {
	// Decide approves or rejects a pending request and propagates the outcome
	// to its receipt atomically.
	Decide(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.DecideApprovalRequest) (*domain.ApprovalRequest, error)

	// AttachEvidence appends an evidence reference while the request is PENDING.
	AttachEvidence(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.AttachEvidenceRequest) (*domain.ApprovalRequest, error)
}

// ApprovalSvcFacade combines all approval-related service interfaces
type ApprovalSvcFacade interface {
	ApprovalReaderSvc
	ApprovalWriterSvc
}
