package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// AuditWriter appends transition records inside a store transaction
type AuditWriter interface {
	// AppendAuditEntry assigns the next sequence number for the entity and stores the entry.
	AppendAuditEntry(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error)
}

// AuditReader defines read operations for the audit log
type AuditReader interface {
	// ListAuditEntries returns an entity's entries ordered by sequence.
	ListAuditEntries(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error)
}
