package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/models"
	"github.com/SscSPs/payment_recon_app/internal/utils/mapping"
	"github.com/SscSPs/payment_recon_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `transfer_id, source_account, destination_account, method, amount, status, payment_receipt_id,
	planned_at, submitted_at, confirmed_at, canceled_at, source_bank_ref, destination_ref, notes,
	created_at, created_by, last_updated_at, last_updated_by, version`

type pgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(base BaseRepository) repositories.TransferReader {
	return &pgxTransferRepository{BaseRepository: base}
}

func scanTransfer(row pgx.Row) (*domain.TreasuryTransfer, error) {
	var m models.TreasuryTransfer
	err := row.Scan(
		&m.TransferID, &m.SourceAccount, &m.DestinationAccount, &m.Method, &m.Amount, &m.Status, &m.PaymentReceiptID,
		&m.PlannedAt, &m.SubmittedAt, &m.ConfirmedAt, &m.CanceledAt, &m.SourceBankRef, &m.DestinationRef, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
	)
	if err != nil {
		return nil, err
	}
	transfer := mapping.ToDomainTransfer(m)
	return &transfer, nil
}

// FindTransferByID implements repositories.TransferReader.
func (r *pgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	var transfer *domain.TreasuryTransfer
	err := r.guard(ctx, func(ctx context.Context) error {
		row := r.Pool.QueryRow(ctx, `SELECT `+transferColumns+` FROM treasury_transfers WHERE transfer_id = $1`, transferID)
		var err error
		transfer, err = scanTransfer(row)
		return translateError(err, fmt.Sprintf("treasury transfer %s", transferID))
	})
	return transfer, err
}

// ListTransfers implements repositories.TransferReader.
func (r *pgxTransferRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.TreasuryTransfer, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	q := newListQuery(`SELECT `+transferColumns+` FROM treasury_transfers`, "transfer_id")
	if filter.Status != nil {
		q.where("status = ?", string(*filter.Status))
	}
	if filter.PaymentReceiptID != nil {
		q.where("payment_receipt_id = ?", *filter.PaymentReceiptID)
	}
	if err := q.after(nextToken); err != nil {
		return nil, nil, err
	}
	query, args := q.build(limit)

	transfers := make([]domain.TreasuryTransfer, 0, limit+1)
	err := r.guard(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return translateError(err, "error querying treasury transfers")
		}
		defer rows.Close()
		for rows.Next() {
			transfer, err := scanTransfer(rows)
			if err != nil {
				return translateError(err, "error scanning treasury transfer")
			}
			transfers = append(transfers, *transfer)
		}
		return translateError(rows.Err(), "error iterating treasury transfers")
	})
	if err != nil {
		return nil, nil, err
	}

	page, next := trimPage(transfers, limit, func(t domain.TreasuryTransfer) (time.Time, string) { return t.CreatedAt, t.TransferID })
	return page, next, nil
}

// SaveTransfer implements repositories.TransferTxRepository. A funding
// receipt that does not exist violates the foreign key and is reported as
// apperrors.ErrNotFound.
func (t *txRepositories) SaveTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error {
	m := mapping.ToModelTransfer(transfer)
	query := `
		INSERT INTO treasury_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := t.tx.Exec(ctx, query,
		m.TransferID, m.SourceAccount, m.DestinationAccount, m.Method, m.Amount, m.Status, m.PaymentReceiptID,
		m.PlannedAt, m.SubmittedAt, m.ConfirmedAt, m.CanceledAt, m.SourceBankRef, m.DestinationRef, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save treasury transfer %s", m.TransferID))
	}
	return nil
}

// FindTransferByIDForUpdate implements repositories.TransferTxRepository.
func (t *txRepositories) FindTransferByIDForUpdate(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+transferColumns+` FROM treasury_transfers WHERE transfer_id = $1 FOR UPDATE`, transferID)
	transfer, err := scanTransfer(row)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("treasury transfer %s", transferID))
	}
	return transfer, nil
}

// UpdateTransfer implements repositories.TransferTxRepository.
func (t *txRepositories) UpdateTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error {
	m := mapping.ToModelTransfer(transfer)
	query := `
		UPDATE treasury_transfers
		SET status = $2, submitted_at = $3, confirmed_at = $4, canceled_at = $5, source_bank_ref = $6,
			destination_ref = $7, last_updated_at = $8, last_updated_by = $9, version = $10
		WHERE transfer_id = $1;
	`
	tag, err := t.tx.Exec(ctx, query,
		m.TransferID, m.Status, m.SubmittedAt, m.ConfirmedAt, m.CanceledAt, m.SourceBankRef,
		m.DestinationRef, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update treasury transfer %s", m.TransferID))
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, fmt.Sprintf("treasury transfer %s", m.TransferID))
	}
	return nil
}

// SumAllocatedForReceipt implements repositories.TransferTxRepository.
func (t *txRepositories) SumAllocatedForReceipt(ctx context.Context, receiptID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::bigint
		FROM treasury_transfers
		WHERE payment_receipt_id = $1 AND status <> $2;
	`
	var allocated int64
	if err := t.tx.QueryRow(ctx, query, receiptID, string(domain.TransferCanceled)).Scan(&allocated); err != nil {
		return 0, translateError(err, fmt.Sprintf("failed to sum allocations for receipt %s", receiptID))
	}
	return allocated, nil
}
