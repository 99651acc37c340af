package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = 24 * time.Hour
	defaultPrefix = "recon:idem:"
)

// cachedRecord is the JSON form of a completed idempotency record.
type cachedRecord struct {
	Scope       string          `json:"scope"`
	Key         string          `json:"key"`
	Fingerprint string          `json:"fingerprint"`
	ResourceID  string          `json:"resourceID"`
	Response    json.RawMessage `json:"response"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IdempotencyCache keeps completed idempotent responses in Redis so replays
// skip the store. The store remains the source of truth.
type IdempotencyCache struct {
	client *goredis.Client
	ttl    time.Duration
	prefix string
}

var _ portsrepo.IdempotencyCache = (*IdempotencyCache)(nil)

// NewIdempotencyCache creates a cache on client. ttl <= 0 uses 24h.
func NewIdempotencyCache(client *goredis.Client, ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &IdempotencyCache{client: client, ttl: ttl, prefix: defaultPrefix}
}

func (c *IdempotencyCache) cacheKey(scope, key string) string {
	return c.prefix + scope + ":" + key
}

// GetResponse implements portsrepo.IdempotencyCache.
func (c *IdempotencyCache) GetResponse(ctx context.Context, scope, key string) (*domain.IdempotencyRecord, error) {
	val, err := c.client.Get(ctx, c.cacheKey(scope, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency cache: %w", err)
	}

	var cached cachedRecord
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached idempotency record: %w", err)
	}
	return &domain.IdempotencyRecord{
		Scope:       cached.Scope,
		Key:         cached.Key,
		Fingerprint: cached.Fingerprint,
		ResourceID:  cached.ResourceID,
		Response:    []byte(cached.Response),
		CreatedAt:   cached.CreatedAt,
	}, nil
}

// StoreResponse implements portsrepo.IdempotencyCache. Records without a
// response are not cached.
func (c *IdempotencyCache) StoreResponse(ctx context.Context, record domain.IdempotencyRecord) error {
	if !record.Completed() {
		return nil
	}
	payload, err := json.Marshal(cachedRecord{
		Scope:       record.Scope,
		Key:         record.Key,
		Fingerprint: record.Fingerprint,
		ResourceID:  record.ResourceID,
		Response:    json.RawMessage(record.Response),
		CreatedAt:   record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode idempotency record: %w", err)
	}
	if err := c.client.Set(ctx, c.cacheKey(record.Scope, record.Key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write idempotency cache: %w", err)
	}
	return nil
}
