package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
	"github.com/SscSPs/payment_recon_app/internal/utils/mapping"
)

// ClaimIdempotencyKey implements repositories.IdempotencyRepository.
//
// A concurrent claim of the same key blocks on the insert until the first
// transaction ends; it then reads the committed record, or inserts its own if
// the first transaction rolled back.
func (t *txRepositories) ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, error) {
	insert := `
		INSERT INTO idempotency_keys (scope, key, fingerprint, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scope, key) DO NOTHING;
	`
	if _, err := t.tx.Exec(ctx, insert, record.Scope, record.Key, record.Fingerprint, record.CreatedAt); err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to claim idempotency key %s", record.Key))
	}

	query := `
		SELECT scope, key, fingerprint, resource_id, response, created_at
		FROM idempotency_keys
		WHERE scope = $1 AND key = $2
		FOR UPDATE;
	`
	var m models.IdempotencyKey
	err := t.tx.QueryRow(ctx, query, record.Scope, record.Key).
		Scan(&m.Scope, &m.Key, &m.Fingerprint, &m.ResourceID, &m.Response, &m.CreatedAt)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("idempotency key %s", record.Key))
	}
	claimed := mapping.ToDomainIdempotencyRecord(m)
	return &claimed, nil
}

// CompleteIdempotencyKey implements repositories.IdempotencyRepository.
func (t *txRepositories) CompleteIdempotencyKey(ctx context.Context, scope, key, resourceID string, response []byte) error {
	query := `
		UPDATE idempotency_keys
		SET resource_id = $3, response = $4
		WHERE scope = $1 AND key = $2;
	`
	tag, err := t.tx.Exec(ctx, query, scope, key, resourceID, response)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to complete idempotency key %s", key))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: idempotency key %s was not claimed", apperrors.ErrNotFound, key)
	}
	return nil
}
