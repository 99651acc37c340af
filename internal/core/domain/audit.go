package domain

import "time"

// EntityType names the record collection an audit entry belongs to.
type EntityType string

const (
	EntityReceipt  EntityType = "PAYMENT_RECEIPT"
	EntityApproval EntityType = "APPROVAL_REQUEST"
	EntityTransfer EntityType = "TREASURY_TRANSFER"
)

// AuditEntry is an immutable record of one transition. Entries are keyed by
// (EntityType, EntityID, Sequence) and written in the same store transaction
// as the status change they describe.
type AuditEntry struct {
	EntityType     EntityType `json:"entityType"`
	EntityID       string     `json:"entityID"`
	Sequence       int64      `json:"sequence"`
	ActorID        string     `json:"actorID"`
	ActorRole      Role       `json:"actorRole"`
	FromStatus     string     `json:"fromStatus"` // empty for creation
	ToStatus       string     `json:"toStatus"`
	Note           *string    `json:"note,omitempty"`
	IdempotencyKey *string    `json:"idempotencyKey,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

// IsValid reports whether t is a known entity type.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityReceipt, EntityApproval, EntityTransfer:
		return true
	}
	return false
}
