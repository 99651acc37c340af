package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Option configures the PostgreSQL repositories.
type Option func(*BaseRepository)

// WithStoreTimeout bounds every store operation, including whole transactions.
func WithStoreTimeout(d time.Duration) Option {
	return func(b *BaseRepository) {
		b.Timeout = d
	}
}

// WithBreaker places all store calls behind one circuit breaker.
func WithBreaker(cfg BreakerConfig) Option {
	return func(b *BaseRepository) {
		b.breaker = newStoreBreaker(cfg)
	}
}

// NewRepositoryProvider builds the Ledger Store on a pgx pool. All
// repositories share the pool, the timeout and the circuit breaker.
func NewRepositoryProvider(dbPool *pgxpool.Pool, opts ...Option) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool, Timeout: defaultStoreTimeout}
	for _, opt := range opts {
		opt(&base)
	}

	return portsrepo.RepositoryProvider{
		UnitOfWork:         newPgxUnitOfWork(base),
		ReceiptRepo:        newPgxReceiptRepository(base),
		ApprovalRepo:       newPgxApprovalRepository(base),
		TransferRepo:       newPgxTransferRepository(base),
		AuditRepo:          newPgxAuditRepository(base),
		ReconciliationRepo: newReconciliationRepository(base),
	}
}
