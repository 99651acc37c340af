package pgsql

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// pgxUnitOfWork runs each ledger transition in one READ COMMITTED transaction.
// Entity rows are read with SELECT ... FOR UPDATE, which serializes
// concurrent transitions on the same entity until commit or rollback.
type pgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(base BaseRepository) *pgxUnitOfWork {
	return &pgxUnitOfWork{BaseRepository: base}
}

var _ repositories.UnitOfWork = (*pgxUnitOfWork)(nil)

// WithinTx implements repositories.UnitOfWork.
func (u *pgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.TxRepositories) error) error {
	return u.guard(ctx, func(ctx context.Context) error {
		return u.runTx(ctx, fn)
	})
}

func (u *pgxUnitOfWork) runTx(ctx context.Context, fn func(ctx context.Context, tx repositories.TxRepositories) error) (err error) {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := u.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback ledger transaction", "error", rbErr, "cause", err)
		}
	}()

	if err = fn(ctx, &txRepositories{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// txRepositories binds every transactional repository to one pgx.Tx.
type txRepositories struct {
	tx pgx.Tx
}

var (
	_ repositories.TxRepositories        = (*txRepositories)(nil)
	_ repositories.ReceiptTxRepository   = (*txRepositories)(nil)
	_ repositories.ApprovalTxRepository  = (*txRepositories)(nil)
	_ repositories.TransferTxRepository  = (*txRepositories)(nil)
	_ repositories.AuditWriter           = (*txRepositories)(nil)
	_ repositories.IdempotencyRepository = (*txRepositories)(nil)
)

func (t *txRepositories) Receipts() repositories.ReceiptTxRepository { return t }
func (t *txRepositories) Approvals() repositories.ApprovalTxRepository { return t }
func (t *txRepositories) Transfers() repositories.TransferTxRepository { return t }
func (t *txRepositories) Audit() repositories.AuditWriter { return t }
func (t *txRepositories) Idempotency() repositories.IdempotencyRepository { return t }
