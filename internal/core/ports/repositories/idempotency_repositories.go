package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// IdempotencyRepository stores idempotency keys in the same transaction as
// the transition they guard.
type IdempotencyRepository interface {
	// ClaimIdempotencyKey inserts the record if (scope, key) is new and returns
	// the stored record, locked for the rest of the transaction. A record that
	// is already Completed carries the original response.
	ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, error)

	// CompleteIdempotencyKey stores the response of a claimed key.
	CompleteIdempotencyKey(ctx context.Context, scope, key, resourceID string, response []byte) error
}

// IdempotencyCache is an optional fast path in front of the store for
// completed idempotent responses.
type IdempotencyCache interface {
	// GetResponse returns the cached record, or nil and no error on a miss.
	GetResponse(ctx context.Context, scope, key string) (*domain.IdempotencyRecord, error)

	// StoreResponse caches a completed record.
	StoreResponse(ctx context.Context, record domain.IdempotencyRecord) error
}
