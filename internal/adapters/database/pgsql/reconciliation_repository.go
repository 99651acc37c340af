package pgsql

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// reconciliationRepository implements the ReconciliationRepository interface
type reconciliationRepository struct {
	BaseRepository
}

func newReconciliationRepository(base BaseRepository) repositories.ReconciliationRepository {
	return &reconciliationRepository{BaseRepository: base}
}

// GetReconciliationSnapshot runs both aggregations in one REPEATABLE READ
// read-only transaction, so the totals never mix states from before and
// after a concurrent transition. No rows are locked.
func (r *reconciliationRepository) GetReconciliationSnapshot(ctx context.Context, period domain.Period) (*domain.ReconciliationSnapshot, error) {
	snap := &domain.ReconciliationSnapshot{}
	err := r.guard(ctx, func(ctx context.Context) error {
		tx, err := r.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
		if err != nil {
			return err
		}
		defer func() {
			if rbErr := r.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
				middleware.GetLoggerFromCtx(ctx).Warn("Failed to close reconciliation snapshot", "error", rbErr)
			}
		}()

		if err := tx.QueryRow(ctx, `SELECT now()`).Scan(&snap.AsOf); err != nil {
			return translateError(err, "error reading snapshot time")
		}
		snap.AsOf = snap.AsOf.UTC()

		if snap.Receipts, err = r.receiptAggregates(ctx, tx, period); err != nil {
			return err
		}
		snap.Transfers, err = r.transferAggregates(ctx, tx, period)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *reconciliationRepository) receiptAggregates(ctx context.Context, q querier, period domain.Period) ([]domain.ReceiptAggregate, error) {
	query := `
		SELECT method, status, COALESCE(SUM(amount), 0)::bigint, COUNT(*)
		FROM payment_receipts
		WHERE COALESCE(received_at, created_at) >= $1
			AND COALESCE(received_at, created_at) < $2
		GROUP BY method, status
		ORDER BY method, status
	`
	rows, err := q.Query(ctx, query, period.From, period.To)
	if err != nil {
		return nil, translateError(err, "error querying receipt aggregates")
	}
	defer rows.Close()

	result := []domain.ReceiptAggregate{}
	for rows.Next() {
		var row domain.ReceiptAggregate
		var method, status string
		if err := rows.Scan(&method, &status, &row.Amount, &row.Count); err != nil {
			return nil, translateError(err, "error scanning receipt aggregate")
		}
		row.Method = domain.PaymentMethod(method)
		row.Status = domain.ReceiptStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating receipt aggregates")
	}
	return result, nil
}

func (r *reconciliationRepository) transferAggregates(ctx context.Context, q querier, period domain.Period) ([]domain.TransferAggregate, error) {
	query := `
		SELECT method, COALESCE(SUM(amount), 0)::bigint, COUNT(*)
		FROM treasury_transfers
		WHERE status = $1
			AND confirmed_at >= $2
			AND confirmed_at < $3
		GROUP BY method
		ORDER BY method
	`
	rows, err := q.Query(ctx, query, string(domain.TransferConfirmed), period.From, period.To)
	if err != nil {
		return nil, translateError(err, "error querying transfer aggregates")
	}
	defer rows.Close()

	result := []domain.TransferAggregate{}
	for rows.Next() {
		var row domain.TransferAggregate
		var method string
		if err := rows.Scan(&method, &row.Amount, &row.Count); err != nil {
			return nil, translateError(err, "error scanning transfer aggregate")
		}
		row.Method = domain.TransferMethod(method)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating transfer aggregates")
	}
	return result, nil
}
