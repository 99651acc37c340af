package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
)

// stagedTx buffers a transaction's writes. It reads through to the committed
// maps of its store, which are stable because the store admits one writer at
// a time.
type stagedTx struct {
	store *Store

	receipts    map[string]domain.PaymentReceipt
	approvals   map[string]domain.ApprovalRequest
	transfers   map[string]domain.TreasuryTransfer
	audit       map[string][]domain.AuditEntry
	idempotency map[string]domain.IdempotencyRecord
}

func newStagedTx(s *Store) *stagedTx {
	return &stagedTx{
		store:       s,
		receipts:    map[string]domain.PaymentReceipt{},
		approvals:   map[string]domain.ApprovalRequest{},
		transfers:   map[string]domain.TreasuryTransfer{},
		audit:       map[string][]domain.AuditEntry{},
		idempotency: map[string]domain.IdempotencyRecord{},
	}
}

var (
	_ portsrepo.TxRepositories        = (*stagedTx)(nil)
	_ portsrepo.ReceiptTxRepository   = (*stagedTx)(nil)
	_ portsrepo.ApprovalTxRepository  = (*stagedTx)(nil)
	_ portsrepo.TransferTxRepository  = (*stagedTx)(nil)
	_ portsrepo.AuditWriter           = (*stagedTx)(nil)
	_ portsrepo.IdempotencyRepository = (*stagedTx)(nil)
)

func (tx *stagedTx) Receipts() portsrepo.ReceiptTxRepository { return tx }
func (tx *stagedTx) Approvals() portsrepo.ApprovalTxRepository { return tx }
func (tx *stagedTx) Transfers() portsrepo.TransferTxRepository { return tx }
func (tx *stagedTx) Audit() portsrepo.AuditWriter { return tx }
func (tx *stagedTx) Idempotency() portsrepo.IdempotencyRepository { return tx }

// commitLocked merges staged writes into the store. Caller holds store.mu.
func (tx *stagedTx) commitLocked() {
	s := tx.store
	for id, r := range tx.receipts {
		s.receipts[id] = r
	}
	for id, a := range tx.approvals {
		s.approvals[id] = a
	}
	for id, t := range tx.transfers {
		s.transfers[id] = t
	}
	for key, entries := range tx.audit {
		s.audit[key] = append(s.audit[key], entries...)
	}
	for key, rec := range tx.idempotency {
		s.idempotency[key] = rec
	}
}

func (tx *stagedTx) receipt(id string) (domain.PaymentReceipt, bool) {
	if r, ok := tx.receipts[id]; ok {
		return r, true
	}
	r, ok := tx.store.receipts[id]
	return r, ok
}

func (tx *stagedTx) approval(id string) (domain.ApprovalRequest, bool) {
	if a, ok := tx.approvals[id]; ok {
		return a, true
	}
	a, ok := tx.store.approvals[id]
	return a, ok
}

func (tx *stagedTx) transfer(id string) (domain.TreasuryTransfer, bool) {
	if t, ok := tx.transfers[id]; ok {
		return t, true
	}
	t, ok := tx.store.transfers[id]
	return t, ok
}

// SaveReceipt implements portsrepo.ReceiptTxRepository.
func (tx *stagedTx) SaveReceipt(ctx context.Context, receipt domain.PaymentReceipt) error {
	if _, exists := tx.receipt(receipt.ReceiptID); exists {
		return fmt.Errorf("%w: receipt %s already exists", apperrors.ErrConflict, receipt.ReceiptID)
	}
	tx.receipts[receipt.ReceiptID] = *cloneReceipt(receipt)
	return nil
}

// FindReceiptByIDForUpdate implements portsrepo.ReceiptTxRepository.
func (tx *stagedTx) FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	r, ok := tx.receipt(receiptID)
	if !ok {
		return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
	}
	return cloneReceipt(r), nil
}

// UpdateReceipt implements portsrepo.ReceiptTxRepository.
func (tx *stagedTx) UpdateReceipt(ctx context.Context, receipt domain.PaymentReceipt) error {
	current, ok := tx.receipt(receipt.ReceiptID)
	if !ok {
		return fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receipt.ReceiptID)
	}
	// amount and method are fixed at creation
	receipt.Amount = current.Amount
	receipt.Method = current.Method
	tx.receipts[receipt.ReceiptID] = *cloneReceipt(receipt)
	return nil
}

// SaveApprovalRequest implements portsrepo.ApprovalTxRepository.
func (tx *stagedTx) SaveApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error {
	if _, exists := tx.approval(request.RequestID); exists {
		return fmt.Errorf("%w: approval request %s already exists", apperrors.ErrConflict, request.RequestID)
	}
	if request.Status == domain.ApprovalPending {
		if _, err := tx.FindPendingApprovalByReceiptID(ctx, request.PaymentReceiptID); err == nil {
			return fmt.Errorf("%w: receipt %s already has a pending approval request", apperrors.ErrConflict, request.PaymentReceiptID)
		}
	}
	tx.approvals[request.RequestID] = *cloneApproval(request)
	return nil
}

// FindApprovalRequestByIDForUpdate implements portsrepo.ApprovalTxRepository.
func (tx *stagedTx) FindApprovalRequestByIDForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	a, ok := tx.approval(requestID)
	if !ok {
		return nil, fmt.Errorf("%w: approval request %s", apperrors.ErrNotFound, requestID)
	}
	return cloneApproval(a), nil
}

// FindPendingApprovalByReceiptID implements portsrepo.ApprovalTxRepository.
func (tx *stagedTx) FindPendingApprovalByReceiptID(ctx context.Context, receiptID string) (*domain.ApprovalRequest, error) {
	for id, a := range tx.approvals {
		if a.PaymentReceiptID == receiptID && a.Status == domain.ApprovalPending {
			return cloneApproval(tx.approvals[id]), nil
		}
	}
	for id, a := range tx.store.approvals {
		if _, staged := tx.approvals[id]; staged {
			continue
		}
		if a.PaymentReceiptID == receiptID && a.Status == domain.ApprovalPending {
			return cloneApproval(a), nil
		}
	}
	return nil, fmt.Errorf("%w: no pending approval request for receipt %s", apperrors.ErrNotFound, receiptID)
}

// UpdateApprovalRequest implements portsrepo.ApprovalTxRepository.
func (tx *stagedTx) UpdateApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error {
	current, ok := tx.approval(request.RequestID)
	if !ok {
		return fmt.Errorf("%w: approval request %s", apperrors.ErrNotFound, request.RequestID)
	}
	request.PaymentReceiptID = current.PaymentReceiptID
	tx.approvals[request.RequestID] = *cloneApproval(request)
	return nil
}

// SaveTransfer implements portsrepo.TransferTxRepository.
func (tx *stagedTx) SaveTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error {
	if _, exists := tx.transfer(transfer.TransferID); exists {
		return fmt.Errorf("%w: transfer %s already exists", apperrors.ErrConflict, transfer.TransferID)
	}
	if transfer.PaymentReceiptID != nil {
		if _, ok := tx.receipt(*transfer.PaymentReceiptID); !ok {
			return fmt.Errorf("%w: funding receipt %s", apperrors.ErrNotFound, *transfer.PaymentReceiptID)
		}
	}
	tx.transfers[transfer.TransferID] = *cloneTransfer(transfer)
	return nil
}

// FindTransferByIDForUpdate implements portsrepo.TransferTxRepository.
func (tx *stagedTx) FindTransferByIDForUpdate(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	t, ok := tx.transfer(transferID)
	if !ok {
		return nil, fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transferID)
	}
	return cloneTransfer(t), nil
}

// UpdateTransfer implements portsrepo.TransferTxRepository.
func (tx *stagedTx) UpdateTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error {
	current, ok := tx.transfer(transfer.TransferID)
	if !ok {
		return fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transfer.TransferID)
	}
	transfer.Amount = current.Amount
	transfer.PaymentReceiptID = current.PaymentReceiptID
	tx.transfers[transfer.TransferID] = *cloneTransfer(transfer)
	return nil
}

// SumAllocatedForReceipt implements portsrepo.TransferTxRepository.
func (tx *stagedTx) SumAllocatedForReceipt(ctx context.Context, receiptID string) (int64, error) {
	var sum int64
	count := func(t domain.TreasuryTransfer) {
		if t.PaymentReceiptID != nil && *t.PaymentReceiptID == receiptID && t.Status.CountsTowardAllocation() {
			sum += t.Amount
		}
	}
	for _, t := range tx.transfers {
		count(t)
	}
	for id, t := range tx.store.transfers {
		if _, staged := tx.transfers[id]; staged {
			continue
		}
		count(t)
	}
	return sum, nil
}

// AppendAuditEntry implements portsrepo.AuditWriter.
func (tx *stagedTx) AppendAuditEntry(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	key := auditKey(entry.EntityType, entry.EntityID)
	entry.Sequence = int64(len(tx.store.audit[key])+len(tx.audit[key])) + 1
	tx.audit[key] = append(tx.audit[key], entry)
	return entry, nil
}

// ClaimIdempotencyKey implements portsrepo.IdempotencyRepository.
func (tx *stagedTx) ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, error) {
	key := idempotencyKey(record.Scope, record.Key)
	if existing, ok := tx.idempotency[key]; ok {
		return cloneIdempotency(existing), nil
	}
	if existing, ok := tx.store.idempotency[key]; ok {
		return cloneIdempotency(existing), nil
	}
	record.Response = nil
	tx.idempotency[key] = record
	return cloneIdempotency(record), nil
}

// CompleteIdempotencyKey implements portsrepo.IdempotencyRepository.
func (tx *stagedTx) CompleteIdempotencyKey(ctx context.Context, scope, key, resourceID string, response []byte) error {
	k := idempotencyKey(scope, key)
	rec, ok := tx.idempotency[k]
	if !ok {
		if rec, ok = tx.store.idempotency[k]; !ok {
			return fmt.Errorf("%w: idempotency key %s was not claimed", apperrors.ErrNotFound, key)
		}
	}
	rec.ResourceID = resourceID
	rec.Response = append([]byte(nil), response...)
	tx.idempotency[k] = rec
	return nil
}
