package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/utils/pagination"
)

const defaultTimeout = 5 * time.Second

// Store is an in-process Ledger Store. Writers run one at a time through a
// single-slot semaphore and stage their changes; the staged changes are
// merged into the committed state under mu only if the transaction function
// succeeds. Readers take mu for reading and never see a partial transaction.
type Store struct {
	mu      sync.RWMutex
	txSlot  chan struct{}
	timeout time.Duration
	now     func() time.Time

	receipts    map[string]domain.PaymentReceipt
	approvals   map[string]domain.ApprovalRequest
	transfers   map[string]domain.TreasuryTransfer
	audit       map[string][]domain.AuditEntry
	idempotency map[string]domain.IdempotencyRecord
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout bounds how long a transaction may wait for and hold the writer slot.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock overrides the clock used for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty in-memory ledger.
func NewStore(opts ...Option) *Store {
	s := &Store{
		txSlot:      make(chan struct{}, 1),
		timeout:     defaultTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		receipts:    map[string]domain.PaymentReceipt{},
		approvals:   map[string]domain.ApprovalRequest{},
		transfers:   map[string]domain.TreasuryTransfer{},
		audit:       map[string][]domain.AuditEntry{},
		idempotency: map[string]domain.IdempotencyRecord{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:         s,
		ReceiptRepo:        s,
		ApprovalRepo:       s,
		TransferRepo:       s,
		AuditRepo:          s,
		ReconciliationRepo: s,
	}
}

var (
	_ portsrepo.UnitOfWork               = (*Store)(nil)
	_ portsrepo.ReceiptReader            = (*Store)(nil)
	_ portsrepo.ApprovalReader           = (*Store)(nil)
	_ portsrepo.TransferReader           = (*Store)(nil)
	_ portsrepo.AuditReader              = (*Store)(nil)
	_ portsrepo.ReconciliationRepository = (*Store)(nil)
)

// WithinTx implements portsrepo.UnitOfWork.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.txSlot <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: waiting for ledger lock: %v", apperrors.ErrStoreUnavailable, ctx.Err())
	}
	defer func() { <-s.txSlot }()

	tx := newStagedTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: transaction exceeded deadline: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	tx.commitLocked()
	s.mu.Unlock()
	return nil
}

// FindReceiptByID implements portsrepo.ReceiptReader.
func (s *Store) FindReceiptByID(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptID)
	}
	return cloneReceipt(r), nil
}

// ListReceipts implements portsrepo.ReceiptReader.
func (s *Store) ListReceipts(ctx context.Context, filter domain.ReceiptFilter, limit int, nextToken *string) ([]domain.PaymentReceipt, *string, error) {
	cursor, err := decodeCursor(nextToken)
	if err != nil {
		return nil, nil, err
	}

	s.mu.RLock()
	rows := make([]domain.PaymentReceipt, 0, len(s.receipts))
	for _, r := range s.receipts {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.Method != nil && r.Method != *filter.Method {
			continue
		}
		if cursor != nil && !cursor.After(r.CreatedAt, r.ReceiptID) {
			continue
		}
		rows = append(rows, *cloneReceipt(r))
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		return newestFirst(rows[i].CreatedAt, rows[i].ReceiptID, rows[j].CreatedAt, rows[j].ReceiptID)
	})
	rows, next := page(rows, limit, func(r domain.PaymentReceipt) (time.Time, string) { return r.CreatedAt, r.ReceiptID })
	return rows, next, nil
}

// FindApprovalRequestByID implements portsrepo.ApprovalReader.
func (s *Store) FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.approvals[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: approval request %s", apperrors.ErrNotFound, requestID)
	}
	return cloneApproval(a), nil
}

// ListApprovalRequests implements portsrepo.ApprovalReader.
func (s *Store) ListApprovalRequests(ctx context.Context, filter domain.ApprovalFilter, limit int, nextToken *string) ([]domain.ApprovalRequest, *string, error) {
	cursor, err := decodeCursor(nextToken)
	if err != nil {
		return nil, nil, err
	}

	s.mu.RLock()
	rows := make([]domain.ApprovalRequest, 0)
	for _, a := range s.approvals {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.AssignedRole != nil && a.AssignedRole != *filter.AssignedRole {
			continue
		}
		if filter.PaymentReceiptID != nil && a.PaymentReceiptID != *filter.PaymentReceiptID {
			continue
		}
		if cursor != nil && !cursor.After(a.CreatedAt, a.RequestID) {
			continue
		}
		rows = append(rows, *cloneApproval(a))
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		return newestFirst(rows[i].CreatedAt, rows[i].RequestID, rows[j].CreatedAt, rows[j].RequestID)
	})
	rows, next := page(rows, limit, func(a domain.ApprovalRequest) (time.Time, string) { return a.CreatedAt, a.RequestID })
	return rows, next, nil
}

// FindTransferByID implements portsrepo.TransferReader.
func (s *Store) FindTransferByID(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transfers[transferID]
	if !ok {
		return nil, fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transferID)
	}
	return cloneTransfer(t), nil
}

// ListTransfers implements portsrepo.TransferReader.
func (s *Store) ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.TreasuryTransfer, *string, error) {
	cursor, err := decodeCursor(nextToken)
	if err != nil {
		return nil, nil, err
	}

	s.mu.RLock()
	rows := make([]domain.TreasuryTransfer, 0)
	for _, t := range s.transfers {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.PaymentReceiptID != nil && (t.PaymentReceiptID == nil || *t.PaymentReceiptID != *filter.PaymentReceiptID) {
			continue
		}
		if cursor != nil && !cursor.After(t.CreatedAt, t.TransferID) {
			continue
		}
		rows = append(rows, *cloneTransfer(t))
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		return newestFirst(rows[i].CreatedAt, rows[i].TransferID, rows[j].CreatedAt, rows[j].TransferID)
	})
	rows, next := page(rows, limit, func(t domain.TreasuryTransfer) (time.Time, string) { return t.CreatedAt, t.TransferID })
	return rows, next, nil
}

// ListAuditEntries implements portsrepo.AuditReader.
func (s *Store) ListAuditEntries(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.audit[auditKey(entityType, entityID)]
	out := make([]domain.AuditEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// GetReconciliationSnapshot implements portsrepo.ReconciliationRepository.
// The whole aggregation runs under one read lock, so it observes either all
// or none of any transaction.
func (s *Store) GetReconciliationSnapshot(ctx context.Context, period domain.Period) (*domain.ReconciliationSnapshot, error) {
	type receiptGroup struct {
		method domain.PaymentMethod
		status domain.ReceiptStatus
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	receiptTotals := map[receiptGroup]*domain.ReceiptAggregate{}
	for _, r := range s.receipts {
		if !period.Contains(r.ReportingTime()) {
			continue
		}
		key := receiptGroup{r.Method, r.Status}
		agg, ok := receiptTotals[key]
		if !ok {
			agg = &domain.ReceiptAggregate{Method: r.Method, Status: r.Status}
			receiptTotals[key] = agg
		}
		agg.Amount += r.Amount
		agg.Count++
	}

	transferTotals := map[domain.TransferMethod]*domain.TransferAggregate{}
	for _, t := range s.transfers {
		if t.Status != domain.TransferConfirmed || t.ConfirmedAt == nil || !period.Contains(*t.ConfirmedAt) {
			continue
		}
		agg, ok := transferTotals[t.Method]
		if !ok {
			agg = &domain.TransferAggregate{Method: t.Method}
			transferTotals[t.Method] = agg
		}
		agg.Amount += t.Amount
		agg.Count++
	}

	snap := &domain.ReconciliationSnapshot{AsOf: s.now()}
	for _, agg := range receiptTotals {
		snap.Receipts = append(snap.Receipts, *agg)
	}
	for _, agg := range transferTotals {
		snap.Transfers = append(snap.Transfers, *agg)
	}
	return snap, nil
}

func auditKey(entityType domain.EntityType, entityID string) string {
	return string(entityType) + "/" + entityID
}

func idempotencyKey(scope, key string) string {
	return scope + "\x00" + key
}

func newestFirst(ti time.Time, idi string, tj time.Time, idj string) bool {
	if ti.Equal(tj) {
		return idi > idj
	}
	return ti.After(tj)
}

func decodeCursor(nextToken *string) (*pagination.Cursor, error) {
	if nextToken == nil || *nextToken == "" {
		return nil, nil
	}
	c, err := pagination.DecodeCursorToken(*nextToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &c, nil
}

func page[T any](rows []T, limit int, key func(T) (time.Time, string)) ([]T, *string) {
	limit = pagination.NormalizeLimit(limit)
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	createdAt, id := key(rows[len(rows)-1])
	token := pagination.EncodeCursorToken(createdAt, id)
	return rows, &token
}
