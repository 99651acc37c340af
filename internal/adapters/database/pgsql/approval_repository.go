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

const approvalColumns = `request_id, payment_receipt_id, status, assigned_role, requested_at, requested_by,
	decided_at, decided_by, decision_notes, rejection_reason, attachments,
	created_at, created_by, last_updated_at, last_updated_by, version`

type pgxApprovalRepository struct {
	BaseRepository
}

func newPgxApprovalRepository(base BaseRepository) repositories.ApprovalReader {
	return &pgxApprovalRepository{BaseRepository: base}
}

func scanApprovalRequest(row pgx.Row) (*domain.ApprovalRequest, error) {
	var m models.ApprovalRequest
	err := row.Scan(
		&m.RequestID, &m.PaymentReceiptID, &m.Status, &m.AssignedRole, &m.RequestedAt, &m.RequestedBy,
		&m.DecidedAt, &m.DecidedBy, &m.DecisionNotes, &m.RejectionReason, &m.Attachments,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
	)
	if err != nil {
		return nil, err
	}
	request := mapping.ToDomainApprovalRequest(m)
	return &request, nil
}

// FindApprovalRequestByID implements repositories.ApprovalReader.
func (r *pgxApprovalRepository) FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	var request *domain.ApprovalRequest
	err := r.guard(ctx, func(ctx context.Context) error {
		row := r.Pool.QueryRow(ctx, `SELECT `+approvalColumns+` FROM approval_requests WHERE request_id = $1`, requestID)
		var err error
		request, err = scanApprovalRequest(row)
		return translateError(err, fmt.Sprintf("approval request %s", requestID))
	})
	return request, err
}

// ListApprovalRequests implements repositories.ApprovalReader.
func (r *pgxApprovalRepository) ListApprovalRequests(ctx context.Context, filter domain.ApprovalFilter, limit int, nextToken *string) ([]domain.ApprovalRequest, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	q := newListQuery(`SELECT `+approvalColumns+` FROM approval_requests`, "request_id")
	if filter.Status != nil {
		q.where("status = ?", string(*filter.Status))
	}
	if filter.AssignedRole != nil {
		q.where("assigned_role = ?", string(*filter.AssignedRole))
	}
	if filter.PaymentReceiptID != nil {
		q.where("payment_receipt_id = ?", *filter.PaymentReceiptID)
	}
	if err := q.after(nextToken); err != nil {
		return nil, nil, err
	}
	query, args := q.build(limit)

	requests := make([]domain.ApprovalRequest, 0, limit+1)
	err := r.guard(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return translateError(err, "error querying approval requests")
		}
		defer rows.Close()
		for rows.Next() {
			request, err := scanApprovalRequest(rows)
			if err != nil {
				return translateError(err, "error scanning approval request")
			}
			requests = append(requests, *request)
		}
		return translateError(rows.Err(), "error iterating approval requests")
	})
	if err != nil {
		return nil, nil, err
	}

	page, next := trimPage(requests, limit, func(a domain.ApprovalRequest) (time.Time, string) { return a.CreatedAt, a.RequestID })
	return page, next, nil
}

// SaveApprovalRequest implements repositories.ApprovalTxRepository.
// The approval_requests_one_pending index turns a second PENDING request for
// the same receipt into a unique violation, reported as apperrors.ErrConflict.
func (t *txRepositories) SaveApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error {
	m := mapping.ToModelApprovalRequest(request)
	query := `
		INSERT INTO approval_requests (` + approvalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := t.tx.Exec(ctx, query,
		m.RequestID, m.PaymentReceiptID, m.Status, m.AssignedRole, m.RequestedAt, m.RequestedBy,
		m.DecidedAt, m.DecidedBy, m.DecisionNotes, m.RejectionReason, m.Attachments,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save approval request for receipt %s", m.PaymentReceiptID))
	}
	return nil
}

// FindApprovalRequestByIDForUpdate implements repositories.ApprovalTxRepository.
func (t *txRepositories) FindApprovalRequestByIDForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+approvalColumns+` FROM approval_requests WHERE request_id = $1 FOR UPDATE`, requestID)
	request, err := scanApprovalRequest(row)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("approval request %s", requestID))
	}
	return request, nil
}

// FindPendingApprovalByReceiptID implements repositories.ApprovalTxRepository.
func (t *txRepositories) FindPendingApprovalByReceiptID(ctx context.Context, receiptID string) (*domain.ApprovalRequest, error) {
	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE payment_receipt_id = $1 AND status = $2 FOR UPDATE`
	request, err := scanApprovalRequest(t.tx.QueryRow(ctx, query, receiptID, string(domain.ApprovalPending)))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("pending approval request for receipt %s", receiptID))
	}
	return request, nil
}

// UpdateApprovalRequest implements repositories.ApprovalTxRepository.
func (t *txRepositories) UpdateApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error {
	m := mapping.ToModelApprovalRequest(request)
	query := `
		UPDATE approval_requests
		SET status = $2, decided_at = $3, decided_by = $4, decision_notes = $5, rejection_reason = $6,
			attachments = $7, last_updated_at = $8, last_updated_by = $9, version = $10
		WHERE request_id = $1;
	`
	tag, err := t.tx.Exec(ctx, query,
		m.RequestID, m.Status, m.DecidedAt, m.DecidedBy, m.DecisionNotes, m.RejectionReason,
		m.Attachments, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update approval request %s", m.RequestID))
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, fmt.Sprintf("approval request %s", m.RequestID))
	}
	return nil
}
