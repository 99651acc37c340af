package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/models"
	"github.com/SscSPs/payment_recon_app/internal/utils/mapping"
)

type pgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(base BaseRepository) repositories.AuditReader {
	return &pgxAuditRepository{BaseRepository: base}
}

// ListAuditEntries implements repositories.AuditReader.
func (r *pgxAuditRepository) ListAuditEntries(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT entity_type, entity_id, sequence, actor_id, actor_role, from_status, to_status, note, idempotency_key, occurred_at
		FROM audit_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY sequence;
	`
	entries := make([]domain.AuditEntry, 0)
	err := r.guard(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, string(entityType), entityID)
		if err != nil {
			return translateError(err, "error querying audit entries")
		}
		defer rows.Close()
		for rows.Next() {
			var m models.AuditEntry
			if err := rows.Scan(&m.EntityType, &m.EntityID, &m.Sequence, &m.ActorID, &m.ActorRole,
				&m.FromStatus, &m.ToStatus, &m.Note, &m.IdempotencyKey, &m.OccurredAt); err != nil {
				return translateError(err, "error scanning audit entry")
			}
			entries = append(entries, mapping.ToDomainAuditEntry(m))
		}
		return translateError(rows.Err(), "error iterating audit entries")
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendAuditEntry implements repositories.AuditWriter. Callers hold the
// entity's row lock, so the next sequence number cannot be taken twice; the
// primary key rejects it if it is.
func (t *txRepositories) AppendAuditEntry(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	var next int64
	err := t.tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(sequence), 0) + 1 FROM audit_entries WHERE entity_type = $1 AND entity_id = $2`,
		string(entry.EntityType), entry.EntityID,
	).Scan(&next)
	if err != nil {
		return domain.AuditEntry{}, translateError(err, fmt.Sprintf("failed to number audit entry for %s %s", entry.EntityType, entry.EntityID))
	}
	entry.Sequence = next

	m := mapping.ToModelAuditEntry(entry)
	query := `
		INSERT INTO audit_entries (entity_type, entity_id, sequence, actor_id, actor_role, from_status, to_status, note, idempotency_key, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = t.tx.Exec(ctx, query, m.EntityType, m.EntityID, m.Sequence, m.ActorID, m.ActorRole,
		m.FromStatus, m.ToStatus, m.Note, m.IdempotencyKey, m.OccurredAt)
	if err != nil {
		return domain.AuditEntry{}, translateError(err, fmt.Sprintf("failed to append audit entry for %s %s", entry.EntityType, entry.EntityID))
	}
	return entry, nil
}
