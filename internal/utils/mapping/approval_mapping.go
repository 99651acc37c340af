package mapping

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
)

// ToModelApprovalRequest converts a domain ApprovalRequest to a model ApprovalRequest
func ToModelApprovalRequest(d domain.ApprovalRequest) models.ApprovalRequest {
	attachments := d.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return models.ApprovalRequest{
		RequestID:        d.RequestID,
		PaymentReceiptID: d.PaymentReceiptID,
		Status:           string(d.Status),
		AssignedRole:     string(d.AssignedRole),
		RequestedAt:      d.RequestedAt,
		RequestedBy:      d.RequestedBy,
		DecidedAt:        d.DecidedAt,
		DecidedBy:        d.DecidedBy,
		DecisionNotes:    d.DecisionNotes,
		RejectionReason:  d.RejectionReason,
		Attachments:      attachments,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainApprovalRequest converts a model ApprovalRequest to a domain ApprovalRequest
func ToDomainApprovalRequest(m models.ApprovalRequest) domain.ApprovalRequest {
	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return domain.ApprovalRequest{
		RequestID:        m.RequestID,
		PaymentReceiptID: m.PaymentReceiptID,
		Status:           domain.ApprovalStatus(m.Status),
		AssignedRole:     domain.Role(m.AssignedRole),
		RequestedAt:      m.RequestedAt.UTC(),
		RequestedBy:      m.RequestedBy,
		DecidedAt:        utcPtr(m.DecidedAt),
		DecidedBy:        m.DecidedBy,
		DecisionNotes:    m.DecisionNotes,
		RejectionReason:  m.RejectionReason,
		Attachments:      attachments,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
