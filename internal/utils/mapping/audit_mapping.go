package mapping

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		EntityType:     string(d.EntityType),
		EntityID:       d.EntityID,
		Sequence:       d.Sequence,
		ActorID:        d.ActorID,
		ActorRole:      string(d.ActorRole),
		FromStatus:     d.FromStatus,
		ToStatus:       d.ToStatus,
		Note:           d.Note,
		IdempotencyKey: d.IdempotencyKey,
		OccurredAt:     d.OccurredAt,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		EntityType:     domain.EntityType(m.EntityType),
		EntityID:       m.EntityID,
		Sequence:       m.Sequence,
		ActorID:        m.ActorID,
		ActorRole:      domain.Role(m.ActorRole),
		FromStatus:     m.FromStatus,
		ToStatus:       m.ToStatus,
		Note:           m.Note,
		IdempotencyKey: m.IdempotencyKey,
		OccurredAt:     m.OccurredAt.UTC(),
	}
}

// ToDomainIdempotencyRecord converts a model IdempotencyKey to a domain IdempotencyRecord
func ToDomainIdempotencyRecord(m models.IdempotencyKey) domain.IdempotencyRecord {
	rec := domain.IdempotencyRecord{
		Scope:       m.Scope,
		Key:         m.Key,
		Fingerprint: m.Fingerprint,
		Response:    m.Response,
		CreatedAt:   m.CreatedAt.UTC(),
	}
	if m.ResourceID != nil {
		rec.ResourceID = *m.ResourceID
	}
	return rec
}
