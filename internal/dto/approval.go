package dto

import (
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// DecideApprovalRequest records a compliance decision.
type DecideApprovalRequest struct {
	Outcome         domain.ApprovalStatus `json:"outcome" binding:"required,oneof=APPROVED REJECTED" validate:"required,oneof=APPROVED REJECTED"`
	Notes           *string               `json:"notes" binding:"omitempty,max=2000" validate:"omitempty,max=2000"`
	RejectionReason *string               `json:"rejectionReason" binding:"omitempty,max=1000" validate:"omitempty,max=1000"`
}

// AttachEvidenceRequest appends an evidence reference to a pending request.
type AttachEvidenceRequest struct {
	AttachmentRef string `json:"attachmentRef" binding:"required,max=500" validate:"required,max=500"`
}

// ApprovalRequestResponse defines the data returned for an approval request.
type ApprovalRequestResponse struct {
	RequestID        string                `json:"requestID"`
	PaymentReceiptID string                `json:"paymentReceiptID"`
	Status           domain.ApprovalStatus `json:"status"`
	AssignedRole     domain.Role           `json:"assignedRole"`
	RequestedAt      time.Time             `json:"requestedAt"`
	RequestedBy      string                `json:"requestedBy"`
	DecidedAt        *time.Time            `json:"decidedAt,omitempty"`
	DecidedBy        *string               `json:"decidedBy,omitempty"`
	DecisionNotes    *string               `json:"decisionNotes,omitempty"`
	RejectionReason  *string               `json:"rejectionReason,omitempty"`
	Attachments      []string              `json:"attachments"`
	Version          int64                 `json:"version"`
}

// ListApprovalRequestsParams defines query parameters for the approval queue.
type ListApprovalRequestsParams struct {
	Status           string  `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	AssignedRole     string  `form:"assignedRole" binding:"omitempty,oneof=OPERATIONS LEGAL FINANCE ADMIN"`
	PaymentReceiptID string  `form:"paymentReceiptID"`
	Limit            int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken        *string `form:"nextToken"`
}

// ListApprovalRequestsResponse wraps a page of approval requests.
type ListApprovalRequestsResponse struct {
	ApprovalRequests []ApprovalRequestResponse `json:"approvalRequests"`
	NextToken        *string                   `json:"nextToken,omitempty"`
}

// ToApprovalRequestResponse converts a domain.ApprovalRequest to its DTO
func ToApprovalRequestResponse(a *domain.ApprovalRequest) ApprovalRequestResponse {
	attachments := a.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return ApprovalRequestResponse{
		RequestID:        a.RequestID,
		PaymentReceiptID: a.PaymentReceiptID,
		Status:           a.Status,
		AssignedRole:     a.AssignedRole,
		RequestedAt:      a.RequestedAt,
		RequestedBy:      a.RequestedBy,
		DecidedAt:        a.DecidedAt,
		DecidedBy:        a.DecidedBy,
		DecisionNotes:    a.DecisionNotes,
		RejectionReason:  a.RejectionReason,
		Attachments:      attachments,
		Version:          a.Version,
	}
}

// ToListApprovalRequestResponse converts a slice of approval requests to DTOs
func ToListApprovalRequestResponse(requests []domain.ApprovalRequest) []ApprovalRequestResponse {
	res := make([]ApprovalRequestResponse, len(requests))
	for i := range requests {
		res[i] = ToApprovalRequestResponse(&requests[i])
	}
	return res
}
