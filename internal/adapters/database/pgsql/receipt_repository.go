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

const receiptColumns = `receipt_id, method, amount, status, client_name, client_email, description, notes,
	external_ref, received_at, created_at, created_by, last_updated_at, last_updated_by, version`

type pgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(base BaseRepository) repositories.ReceiptReader {
	return &pgxReceiptRepository{BaseRepository: base}
}

func scanReceipt(row pgx.Row) (*domain.PaymentReceipt, error) {
	var m models.PaymentReceipt
	err := row.Scan(
		&m.ReceiptID, &m.Method, &m.Amount, &m.Status, &m.ClientName, &m.ClientEmail, &m.Description, &m.Notes,
		&m.ExternalRef, &m.ReceivedAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
	)
	if err != nil {
		return nil, err
	}
	receipt := mapping.ToDomainReceipt(m)
	return &receipt, nil
}

func selectReceipt(ctx context.Context, q querier, receiptID string, forUpdate bool) (*domain.PaymentReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM payment_receipts WHERE receipt_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	receipt, err := scanReceipt(q.QueryRow(ctx, query, receiptID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("payment receipt %s", receiptID))
	}
	return receipt, nil
}

// FindReceiptByID implements repositories.ReceiptReader.
func (r *pgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	var receipt *domain.PaymentReceipt
	err := r.guard(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = selectReceipt(ctx, r.Pool, receiptID, false)
		return err
	})
	return receipt, err
}

// ListReceipts implements repositories.ReceiptReader.
func (r *pgxReceiptRepository) ListReceipts(ctx context.Context, filter domain.ReceiptFilter, limit int, nextToken *string) ([]domain.PaymentReceipt, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	q := newListQuery(`SELECT `+receiptColumns+` FROM payment_receipts`, "receipt_id")
	if filter.Status != nil {
		q.where("status = ?", string(*filter.Status))
	}
	if filter.Method != nil {
		q.where("method = ?", string(*filter.Method))
	}
	if err := q.after(nextToken); err != nil {
		return nil, nil, err
	}
	query, args := q.build(limit)

	receipts := make([]domain.PaymentReceipt, 0, limit+1)
	err := r.guard(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return translateError(err, "error querying payment receipts")
		}
		defer rows.Close()
		for rows.Next() {
			receipt, err := scanReceipt(rows)
			if err != nil {
				return translateError(err, "error scanning payment receipt")
			}
			receipts = append(receipts, *receipt)
		}
		return translateError(rows.Err(), "error iterating payment receipts")
	})
	if err != nil {
		return nil, nil, err
	}

	page, next := trimPage(receipts, limit, func(p domain.PaymentReceipt) (time.Time, string) { return p.CreatedAt, p.ReceiptID })
	return page, next, nil
}

// SaveReceipt implements repositories.ReceiptTxRepository.
func (t *txRepositories) SaveReceipt(ctx context.Context, receipt domain.PaymentReceipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO payment_receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := t.tx.Exec(ctx, query,
		m.ReceiptID, m.Method, m.Amount, m.Status, m.ClientName, m.ClientEmail, m.Description, m.Notes,
		m.ExternalRef, m.ReceivedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save payment receipt %s", m.ReceiptID))
	}
	return nil
}

// FindReceiptByIDForUpdate implements repositories.ReceiptTxRepository.
func (t *txRepositories) FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	return selectReceipt(ctx, t.tx, receiptID, true)
}

// UpdateReceipt implements repositories.ReceiptTxRepository.
func (t *txRepositories) UpdateReceipt(ctx context.Context, receipt domain.PaymentReceipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		UPDATE payment_receipts
		SET status = $2, received_at = $3, last_updated_at = $4, last_updated_by = $5, version = $6
		WHERE receipt_id = $1;
	`
	tag, err := t.tx.Exec(ctx, query, m.ReceiptID, m.Status, m.ReceivedAt, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update payment receipt %s", m.ReceiptID))
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, fmt.Sprintf("payment receipt %s", m.ReceiptID))
	}
	return nil
}
