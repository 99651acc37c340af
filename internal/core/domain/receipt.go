package domain

import "time"

// PaymentMethod is how money reached the business.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCard     PaymentMethod = "CARD"
	MethodBankACH  PaymentMethod = "BANK_ACH"
	MethodBankWire PaymentMethod = "BANK_WIRE"
	MethodCheck    PaymentMethod = "CHECK"
	MethodOther    PaymentMethod = "OTHER"
)

// AllPaymentMethods lists methods in a stable display order.
var AllPaymentMethods = []PaymentMethod{
	MethodCash, MethodCard, MethodBankACH, MethodBankWire, MethodCheck, MethodOther,
}

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	for _, known := range AllPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// ReceiptStatus is the lifecycle state of a PaymentReceipt.
//
// Transitions:
//
//	PENDING          -> PENDING_APPROVAL | RECEIVED (auto-clearing methods only)
//	PENDING_APPROVAL -> APPROVED | REJECTED (approval decision only)
//	APPROVED         -> RECEIVED | REFUNDED
//	RECEIVED         -> REFUNDED
//
// REJECTED and REFUNDED are terminal.
type ReceiptStatus string

const (
	ReceiptPending         ReceiptStatus = "PENDING"
	ReceiptPendingApproval ReceiptStatus = "PENDING_APPROVAL"
	ReceiptApproved        ReceiptStatus = "APPROVED"
	ReceiptReceived        ReceiptStatus = "RECEIVED"
	ReceiptRejected        ReceiptStatus = "REJECTED"
	ReceiptRefunded        ReceiptStatus = "REFUNDED"
)

var receiptTransitions = map[ReceiptStatus][]ReceiptStatus{
	ReceiptPending:         {ReceiptPendingApproval, ReceiptReceived},
	ReceiptPendingApproval: {ReceiptApproved, ReceiptRejected},
	ReceiptApproved:        {ReceiptReceived, ReceiptRefunded},
	ReceiptReceived:        {ReceiptRefunded},
}

// IsValid reports whether s is a known receipt status.
func (s ReceiptStatus) IsValid() bool {
	switch s {
	case ReceiptPending, ReceiptPendingApproval, ReceiptApproved, ReceiptReceived, ReceiptRejected, ReceiptRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the receipt graph has an edge s -> next.
// Method-specific guards (auto-clearing, compliance) are enforced by the
// receipt service on top of this.
func (s ReceiptStatus) CanTransitionTo(next ReceiptStatus) bool {
	for _, allowed := range receiptTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ReceiptStatus) IsTerminal() bool {
	return len(receiptTransitions[s]) == 0
}

// IsCleared reports whether funds in this status may back a treasury transfer.
func (s ReceiptStatus) IsCleared() bool {
	return s == ReceiptApproved || s == ReceiptReceived
}

// IsPending reports whether the receipt still awaits clearing.
func (s ReceiptStatus) IsPending() bool {
	return s == ReceiptPending || s == ReceiptPendingApproval
}

// PaymentReceipt records money received by the business.
// Amount is in minor currency units and never changes after creation.
type PaymentReceipt struct {
	ReceiptID   string        `json:"receiptID"`
	Method      PaymentMethod `json:"method"`
	Amount      int64         `json:"amount"`
	Status      ReceiptStatus `json:"status"`
	ClientName  *string       `json:"clientName,omitempty"`
	ClientEmail *string       `json:"clientEmail,omitempty"`
	Description *string       `json:"description,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
	ExternalRef *string       `json:"externalRef,omitempty"` // e.g. check number
	ReceivedAt  *time.Time    `json:"receivedAt,omitempty"`
	AuditFields
}

// ReceiptFilter narrows receipt listings.
type ReceiptFilter struct {
	Status *ReceiptStatus
	Method *PaymentMethod
}

// ReportingTime is the instant a receipt counts toward reconciliation
// periods: when funds were confirmed in hand, else when it was recorded.
func (r *PaymentReceipt) ReportingTime() time.Time {
	if r.ReceivedAt != nil {
		return *r.ReceivedAt
	}
	return r.CreatedAt
}

// CanFund reports whether amount fits in what is left of the receipt once
// allocated has been committed to transfers. The boundary is inclusive.
func (r *PaymentReceipt) CanFund(allocated, amount int64) bool {
	if amount <= 0 || allocated < 0 || allocated > r.Amount {
		return false
	}
	return amount <= r.Amount-allocated
}
