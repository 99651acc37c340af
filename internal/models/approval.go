package models

import "time"

// ApprovalRequest is the approval_requests row. A partial unique index keeps
// at most one PENDING row per receipt.
type ApprovalRequest struct {
	RequestID        string     `db:"request_id"`
	PaymentReceiptID string     `db:"payment_receipt_id"`
	Status           string     `db:"status"`
	AssignedRole     string     `db:"assigned_role"`
	RequestedAt      time.Time  `db:"requested_at"`
	RequestedBy      string     `db:"requested_by"`
	DecidedAt        *time.Time `db:"decided_at"`
	DecidedBy        *string    `db:"decided_by"`
	DecisionNotes    *string    `db:"decision_notes"`
	RejectionReason  *string    `db:"rejection_reason"`
	Attachments      []string   `db:"attachments"` // text[]
	AuditFields
}
