package memory

import (
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneReceipt(r domain.PaymentReceipt) *domain.PaymentReceipt {
	r.ClientName = cloneString(r.ClientName)
	r.ClientEmail = cloneString(r.ClientEmail)
	r.Description = cloneString(r.Description)
	r.Notes = cloneString(r.Notes)
	r.ExternalRef = cloneString(r.ExternalRef)
	r.ReceivedAt = cloneTime(r.ReceivedAt)
	return &r
}

func cloneApproval(a domain.ApprovalRequest) *domain.ApprovalRequest {
	a.DecidedAt = cloneTime(a.DecidedAt)
	a.DecidedBy = cloneString(a.DecidedBy)
	a.DecisionNotes = cloneString(a.DecisionNotes)
	a.RejectionReason = cloneString(a.RejectionReason)
	if a.Attachments != nil {
		a.Attachments = append([]string{}, a.Attachments...)
	}
	return &a
}

func cloneTransfer(t domain.TreasuryTransfer) *domain.TreasuryTransfer {
	t.PaymentReceiptID = cloneString(t.PaymentReceiptID)
	t.SubmittedAt = cloneTime(t.SubmittedAt)
	t.ConfirmedAt = cloneTime(t.ConfirmedAt)
	t.CanceledAt = cloneTime(t.CanceledAt)
	t.SourceBankRef = cloneString(t.SourceBankRef)
	t.DestinationRef = cloneString(t.DestinationRef)
	t.Notes = cloneString(t.Notes)
	return &t
}

func cloneIdempotency(r domain.IdempotencyRecord) *domain.IdempotencyRecord {
	if r.Response != nil {
		r.Response = append([]byte{}, r.Response...)
	}
	return &r
}
