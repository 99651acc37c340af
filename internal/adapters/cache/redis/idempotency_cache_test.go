package redis

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*IdempotencyCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyCache(client, ttl), mr
}

func TestIdempotencyCache_StoreAndGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	miss, err := cache.GetResponse(ctx, "transfer.submit", "k-1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	record := domain.IdempotencyRecord{
		Scope:       "transfer.submit",
		Key:         "k-1",
		Fingerprint: "abc123",
		ResourceID:  "t-1",
		Response:    []byte(`{"transferID":"t-1","status":"SUBMITTED"}`),
		CreatedAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.StoreResponse(ctx, record))
	assert.True(t, mr.Exists("recon:idem:transfer.submit:k-1"))
	assert.Equal(t, time.Hour, mr.TTL("recon:idem:transfer.submit:k-1"))

	got, err := cache.GetResponse(ctx, "transfer.submit", "k-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.Fingerprint, got.Fingerprint)
	assert.Equal(t, record.ResourceID, got.ResourceID)
	assert.JSONEq(t, string(record.Response), string(got.Response))
	assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, got.Completed())
}

func TestIdempotencyCache_SkipsIncompleteRecords(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	require.NoError(t, cache.StoreResponse(context.Background(), domain.IdempotencyRecord{Scope: "receipt.record", Key: "k-2"}))
	assert.False(t, mr.Exists("recon:idem:receipt.record:k-2"))
	assert.Equal(t, defaultTTL, cache.ttl)
}

func TestIdempotencyCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.StoreResponse(ctx, domain.IdempotencyRecord{Scope: "s", Key: "k", Response: []byte(`{}`)}))

	mr.FastForward(2 * time.Minute)
	got, err := cache.GetResponse(ctx, "s", "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIdempotencyCache_Errors(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set("recon:idem:s:bad", "not json"))
	_, err := cache.GetResponse(ctx, "s", "bad")
	assert.Error(t, err)

	mr.Close()
	_, err = cache.GetResponse(ctx, "s", "k")
	assert.Error(t, err)
	assert.Error(t, cache.StoreResponse(ctx, domain.IdempotencyRecord{Scope: "s", Key: "k", Response: []byte(`{}`)}))
}
