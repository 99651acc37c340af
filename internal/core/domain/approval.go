package domain

import "time"

// ApprovalStatus is the lifecycle state of an ApprovalRequest.
// PENDING -> APPROVED | REJECTED; both outcomes are terminal.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsValid reports whether s is a known approval status.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// IsTerminal reports whether a decision has been recorded.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// ReceiptStatus returns the receipt status a decision of s propagates to.
func (s ApprovalStatus) ReceiptStatus() (ReceiptStatus, bool) {
	switch s {
	case ApprovalApproved:
		return ReceiptApproved, true
	case ApprovalRejected:
		return ReceiptRejected, true
	}
	return "", false
}

// ApprovalRequest is the compliance gate for a single PaymentReceipt.
// At most one PENDING request exists per receipt.
type ApprovalRequest struct {
	RequestID        string         `json:"requestID"`
	PaymentReceiptID string         `json:"paymentReceiptID"`
	Status           ApprovalStatus `json:"status"`
	AssignedRole     Role           `json:"assignedRole"`
	RequestedAt      time.Time      `json:"requestedAt"`
	RequestedBy      string         `json:"requestedBy"`
	DecidedAt        *time.Time     `json:"decidedAt,omitempty"`
	DecidedBy        *string        `json:"decidedBy,omitempty"`
	DecisionNotes    *string        `json:"decisionNotes,omitempty"`
	RejectionReason  *string        `json:"rejectionReason,omitempty"`
	Attachments      []string       `json:"attachments"`
	AuditFields
}

// CanBeDecidedBy reports whether role may decide this request, either as the
// assigned role or as one of the override roles.
func (a *ApprovalRequest) CanBeDecidedBy(role Role, overrides []Role) bool {
	if role == a.AssignedRole {
		return true
	}
	for _, o := range overrides {
		if role == o {
			return true
		}
	}
	return false
}

// ApprovalFilter narrows approval request listings (e.g. the legal queue).
type ApprovalFilter struct {
	Status           *ApprovalStatus
	AssignedRole     *Role
	PaymentReceiptID *string
}
