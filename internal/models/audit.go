package models

import "time"

// AuditEntry is the audit_entries row, keyed by (entity_type, entity_id, sequence).
type AuditEntry struct {
	EntityType     string    `db:"entity_type"`
	EntityID       string    `db:"entity_id"`
	Sequence       int64     `db:"sequence"`
	ActorID        string    `db:"actor_id"`
	ActorRole      string    `db:"actor_role"`
	FromStatus     string    `db:"from_status"`
	ToStatus       string    `db:"to_status"`
	Note           *string   `db:"note"`
	IdempotencyKey *string   `db:"idempotency_key"`
	OccurredAt     time.Time `db:"occurred_at"`
}

// IdempotencyKey is the idempotency_keys row, keyed by (scope, key).
type IdempotencyKey struct {
	Scope       string    `db:"scope"`
	Key         string    `db:"key"`
	Fingerprint string    `db:"fingerprint"`
	ResourceID  *string   `db:"resource_id"`
	Response    []byte    `db:"response"` // jsonb, NULL until completed
	CreatedAt   time.Time `db:"created_at"`
}
