package domain

import "time"

// TransferMethod is the rail used for an outbound treasury transfer.
type TransferMethod string

const (
	TransferACH  TransferMethod = "ACH"
	TransferWire TransferMethod = "WIRE"
)

// AllTransferMethods lists transfer rails in a stable display order.
var AllTransferMethods = []TransferMethod{TransferACH, TransferWire}

// IsValid reports whether m is a known transfer method.
func (m TransferMethod) IsValid() bool {
	return m == TransferACH || m == TransferWire
}

// TransferStatus is the lifecycle state of a TreasuryTransfer.
//
//	PLANNED   -> SUBMITTED | CANCELED
//	SUBMITTED -> CONFIRMED | CANCELED
//
// CONFIRMED and CANCELED are terminal; no edge moves backward.
type TransferStatus string

const (
	TransferPlanned   TransferStatus = "PLANNED"
	TransferSubmitted TransferStatus = "SUBMITTED"
	TransferConfirmed TransferStatus = "CONFIRMED"
	TransferCanceled  TransferStatus = "CANCELED"
)

var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferPlanned:   {TransferSubmitted, TransferCanceled},
	TransferSubmitted: {TransferConfirmed, TransferCanceled},
}

// IsValid reports whether s is a known transfer status.
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferPlanned, TransferSubmitted, TransferConfirmed, TransferCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transfer graph has an edge s -> next.
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	for _, allowed := range transferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s TransferStatus) IsTerminal() bool {
	return len(transferTransitions[s]) == 0
}

// CountsTowardAllocation reports whether a transfer in this status consumes
// its funding receipt's balance.
func (s TransferStatus) CountsTowardAllocation() bool {
	return s != TransferCanceled
}

// TreasuryTransfer moves cleared funds from a custody/bank account to an
// external destination, optionally funded by a single PaymentReceipt.
type TreasuryTransfer struct {
	TransferID         string         `json:"transferID"`
	SourceAccount      string         `json:"sourceAccount"`
	DestinationAccount string         `json:"destinationAccount"`
	Method             TransferMethod `json:"method"`
	Amount             int64          `json:"amount"`
	Status             TransferStatus `json:"status"`
	PaymentReceiptID   *string        `json:"paymentReceiptID,omitempty"`
	PlannedAt          time.Time      `json:"plannedAt"`
	SubmittedAt        *time.Time     `json:"submittedAt,omitempty"`
	ConfirmedAt        *time.Time     `json:"confirmedAt,omitempty"`
	CanceledAt         *time.Time     `json:"canceledAt,omitempty"`
	SourceBankRef      *string        `json:"sourceBankRef,omitempty"`
	DestinationRef     *string        `json:"destinationRef,omitempty"`
	Notes              *string        `json:"notes,omitempty"`
	AuditFields
}

// TransferFilter narrows transfer listings.
type TransferFilter struct {
	Status           *TransferStatus
	PaymentReceiptID *string
}
