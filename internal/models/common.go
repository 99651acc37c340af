package models

import "time"

// AuditFields holds the audit columns shared by every ledger table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
	Version       int64     `db:"version"`
}
