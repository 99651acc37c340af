package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "approval_requests_one_pending"}, apperrors.ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: foreignKeyViolation}, apperrors.ErrNotFound},
		{"serialization failure", &pgconn.PgError{Code: serializationFailure}, apperrors.ErrStoreUnavailable},
		{"statement timeout", &pgconn.PgError{Code: queryCanceled}, apperrors.ErrStoreUnavailable},
		{"connection exception", &pgconn.PgError{Code: "08006"}, apperrors.ErrStoreUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), apperrors.ErrStoreUnavailable},
		{"already classified", fmt.Errorf("%w: receipt", apperrors.ErrInvalidTransition), apperrors.ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tc.err, "op"), tc.want)
		})
	}

	assert.Nil(t, translateError(nil, "op"))

	var appErr *apperrors.AppError
	err := translateError(&pgconn.PgError{Code: "42P01"}, "missing table")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.False(t, apperrors.IsRetryable(err))
}

func TestListQuery_Build(t *testing.T) {
	q := newListQuery("SELECT receipt_id FROM payment_receipts", "receipt_id")
	q.where("status = ?", "APPROVED")
	q.where("method = ?", "CASH")

	cursorAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	token := pagination.EncodeCursorToken(cursorAt, "r-9")
	require.NoError(t, q.after(&token))

	query, args := q.build(20)
	assert.Equal(t,
		"SELECT receipt_id FROM payment_receipts WHERE status = $1 AND method = $2 AND (created_at, receipt_id) < ($3, $4) ORDER BY created_at DESC, receipt_id DESC LIMIT $5",
		query)
	require.Len(t, args, 5)
	assert.Equal(t, "APPROVED", args[0])
	assert.True(t, cursorAt.Equal(args[2].(time.Time)))
	assert.Equal(t, "r-9", args[3])
	assert.Equal(t, 21, args[4])
}

func TestListQuery_BadCursor(t *testing.T) {
	q := newListQuery("SELECT 1", "id")
	bad := "not-a-token"
	assert.ErrorIs(t, q.after(&bad), apperrors.ErrValidation)

	empty := ""
	assert.NoError(t, q.after(&empty))
	assert.NoError(t, q.after(nil))
}

func TestTrimPage(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	key := func(id string) (time.Time, string) { return at, id }

	rows, next := trimPage([]string{"c", "b", "a"}, 2, key)
	assert.Equal(t, []string{"c", "b"}, rows)
	require.NotNil(t, next)
	cursor, err := pagination.DecodeCursorToken(*next)
	require.NoError(t, err)
	assert.Equal(t, "b", cursor.ID)

	rows, next = trimPage([]string{"a"}, 2, key)
	assert.Equal(t, []string{"a"}, rows)
	assert.Nil(t, next)
}

func TestGuard_BreakerOpensOnStoreFailures(t *testing.T) {
	base := BaseRepository{Timeout: time.Second}
	WithBreaker(BreakerConfig{MaxFailures: 2, OpenTimeout: time.Minute})(&base)
	ctx := context.Background()

	// Business rejections never trip the breaker.
	for i := 0; i < 5; i++ {
		err := base.guard(ctx, func(context.Context) error {
			return fmt.Errorf("%w: receipt", apperrors.ErrInsufficientFunds)
		})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	}

	unavailable := fmt.Errorf("%w: connection refused", apperrors.ErrStoreUnavailable)
	for i := 0; i < 2; i++ {
		err := base.guard(ctx, func(context.Context) error { return unavailable })
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	}

	called := false
	err := base.guard(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.True(t, apperrors.IsRetryable(err))
}

func TestGuard_AppliesTimeout(t *testing.T) {
	base := BaseRepository{Timeout: 20 * time.Millisecond}
	err := base.guard(context.Background(), func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), deadline, 20*time.Millisecond)
		<-ctx.Done()
		return translateError(ctx.Err(), "slow query")
	})
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavailable))
}
