package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	base  time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewStore(WithClock(func() time.Time { return s.base }))
	s.ctx = context.Background()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) receipt(id string, method domain.PaymentMethod, amount int64, status domain.ReceiptStatus, createdAt time.Time) domain.PaymentReceipt {
	return domain.PaymentReceipt{
		ReceiptID:   id,
		Method:      method,
		Amount:      amount,
		Status:      status,
		AuditFields: domain.NewAuditFields("ops-1", createdAt),
	}
}

func (s *StoreTestSuite) save(r domain.PaymentReceipt) {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Receipts().SaveReceipt(ctx, r)
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestFailedTransactionLeavesNoTrace() {
	boom := errors.New("boom")
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		s.Require().NoError(tx.Receipts().SaveReceipt(ctx, s.receipt("r1", domain.MethodCash, 100, domain.ReceiptPending, s.base)))
		_, err := tx.Audit().AppendAuditEntry(ctx, domain.AuditEntry{EntityType: domain.EntityReceipt, EntityID: "r1", ToStatus: "PENDING"})
		s.Require().NoError(err)
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.FindReceiptByID(s.ctx, "r1")
	s.ErrorIs(err, apperrors.ErrNotFound)
	entries, err := s.store.ListAuditEntries(s.ctx, domain.EntityReceipt, "r1")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StoreTestSuite) TestWritesVisibleInsideTransaction() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		s.Require().NoError(tx.Receipts().SaveReceipt(ctx, s.receipt("r1", domain.MethodCash, 100, domain.ReceiptPending, s.base)))
		r, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, "r1")
		s.Require().NoError(err)
		r.Status = domain.ReceiptPendingApproval
		return tx.Receipts().UpdateReceipt(ctx, *r)
	})
	s.Require().NoError(err)

	got, err := s.store.FindReceiptByID(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal(domain.ReceiptPendingApproval, got.Status)
}

func (s *StoreTestSuite) TestUpdateReceiptKeepsAmount() {
	s.save(s.receipt("r1", domain.MethodCash, 100, domain.ReceiptPending, s.base))
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		r, err := tx.Receipts().FindReceiptByIDForUpdate(ctx, "r1")
		s.Require().NoError(err)
		r.Amount = 1
		return tx.Receipts().UpdateReceipt(ctx, *r)
	})
	s.Require().NoError(err)
	got, _ := s.store.FindReceiptByID(s.ctx, "r1")
	s.Equal(int64(100), got.Amount)
}

func (s *StoreTestSuite) TestSinglePendingApprovalPerReceipt() {
	s.save(s.receipt("r1", domain.MethodCash, 100, domain.ReceiptPending, s.base))
	pending := func(id string) domain.ApprovalRequest {
		return domain.ApprovalRequest{RequestID: id, PaymentReceiptID: "r1", Status: domain.ApprovalPending, AssignedRole: domain.RoleLegal}
	}

	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Approvals().SaveApprovalRequest(ctx, pending("a1"))
	})
	s.Require().NoError(err)

	err = s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Approvals().SaveApprovalRequest(ctx, pending("a2"))
	})
	s.ErrorIs(err, apperrors.ErrConflict)

	// once decided, a new request may be opened
	err = s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		a, err := tx.Approvals().FindApprovalRequestByIDForUpdate(ctx, "a1")
		s.Require().NoError(err)
		a.Status = domain.ApprovalRejected
		if err := tx.Approvals().UpdateApprovalRequest(ctx, *a); err != nil {
			return err
		}
		_, err = tx.Approvals().FindPendingApprovalByReceiptID(ctx, "r1")
		s.ErrorIs(err, apperrors.ErrNotFound)
		return tx.Approvals().SaveApprovalRequest(ctx, pending("a2"))
	})
	s.NoError(err)
}

func (s *StoreTestSuite) TestAuditSequencePerEntity() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		for _, to := range []string{"PENDING", "PENDING_APPROVAL"} {
			if _, err := tx.Audit().AppendAuditEntry(ctx, domain.AuditEntry{EntityType: domain.EntityReceipt, EntityID: "r1", ToStatus: to}); err != nil {
				return err
			}
		}
		_, err := tx.Audit().AppendAuditEntry(ctx, domain.AuditEntry{EntityType: domain.EntityTransfer, EntityID: "t1", ToStatus: "PLANNED"})
		return err
	})
	s.Require().NoError(err)

	err = s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		e, err := tx.Audit().AppendAuditEntry(ctx, domain.AuditEntry{EntityType: domain.EntityReceipt, EntityID: "r1", ToStatus: "APPROVED"})
		s.Equal(int64(3), e.Sequence)
		return err
	})
	s.Require().NoError(err)

	entries, err := s.store.ListAuditEntries(s.ctx, domain.EntityReceipt, "r1")
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	for i, e := range entries {
		s.Equal(int64(i+1), e.Sequence)
	}
	transferEntries, _ := s.store.ListAuditEntries(s.ctx, domain.EntityTransfer, "t1")
	s.Len(transferEntries, 1)
}

func (s *StoreTestSuite) TestSumAllocatedIgnoresCanceled() {
	s.save(s.receipt("r1", domain.MethodCash, 10000, domain.ReceiptApproved, s.base))
	rid := "r1"
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		for id, st := range map[string]domain.TransferStatus{"t1": domain.TransferPlanned, "t2": domain.TransferCanceled, "t3": domain.TransferConfirmed} {
			if err := tx.Transfers().SaveTransfer(ctx, domain.TreasuryTransfer{TransferID: id, Amount: 1000, Status: st, PaymentReceiptID: &rid}); err != nil {
				return err
			}
		}
		sum, err := tx.Transfers().SumAllocatedForReceipt(ctx, "r1")
		s.Equal(int64(2000), sum)
		return err
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestIdempotencyClaimAndComplete() {
	rec := domain.IdempotencyRecord{Scope: "transfer.submit", Key: "k1", Fingerprint: "fp"}
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		claimed, err := tx.Idempotency().ClaimIdempotencyKey(ctx, rec)
		s.Require().NoError(err)
		s.False(claimed.Completed())
		return tx.Idempotency().CompleteIdempotencyKey(ctx, rec.Scope, rec.Key, "t1", []byte(`{"ok":true}`))
	})
	s.Require().NoError(err)

	err = s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		claimed, err := tx.Idempotency().ClaimIdempotencyKey(ctx, domain.IdempotencyRecord{Scope: "transfer.submit", Key: "k1", Fingerprint: "other"})
		s.Require().NoError(err)
		s.True(claimed.Completed())
		s.Equal("fp", claimed.Fingerprint)
		s.Equal("t1", claimed.ResourceID)
		s.JSONEq(`{"ok":true}`, string(claimed.Response))
		return nil
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestListReceiptsPaginates() {
	for i, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
		s.save(s.receipt(id, domain.MethodCash, 100, domain.ReceiptPending, s.base.Add(time.Duration(i)*time.Minute)))
	}

	page1, next, err := s.store.ListReceipts(s.ctx, domain.ReceiptFilter{}, 2, nil)
	s.Require().NoError(err)
	s.Require().NotNil(next)
	s.Equal([]string{"r5", "r4"}, receiptIDs(page1))

	page2, next, err := s.store.ListReceipts(s.ctx, domain.ReceiptFilter{}, 2, next)
	s.Require().NoError(err)
	s.Require().NotNil(next)
	s.Equal([]string{"r3", "r2"}, receiptIDs(page2))

	page3, next, err := s.store.ListReceipts(s.ctx, domain.ReceiptFilter{}, 2, next)
	s.Require().NoError(err)
	s.Nil(next)
	s.Equal([]string{"r1"}, receiptIDs(page3))

	bad := "%%%"
	_, _, err = s.store.ListReceipts(s.ctx, domain.ReceiptFilter{}, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestListReceiptsFilters() {
	s.save(s.receipt("r1", domain.MethodCash, 100, domain.ReceiptPending, s.base))
	s.save(s.receipt("r2", domain.MethodCard, 100, domain.ReceiptPending, s.base))
	s.save(s.receipt("r3", domain.MethodCash, 100, domain.ReceiptApproved, s.base))

	cash := domain.MethodCash
	pending := domain.ReceiptPending
	rows, _, err := s.store.ListReceipts(s.ctx, domain.ReceiptFilter{Method: &cash, Status: &pending}, 10, nil)
	s.Require().NoError(err)
	s.Equal([]string{"r1"}, receiptIDs(rows))
}

func (s *StoreTestSuite) TestReconciliationSnapshot() {
	inside := s.base
	outside := s.base.Add(-48 * time.Hour)
	received := s.base.Add(time.Hour)

	s.save(s.receipt("r1", domain.MethodCash, 10000, domain.ReceiptApproved, inside))
	s.save(s.receipt("r2", domain.MethodCash, 500, domain.ReceiptPending, inside))
	s.save(s.receipt("r3", domain.MethodCard, 700, domain.ReceiptPending, outside))
	late := s.receipt("r4", domain.MethodCard, 300, domain.ReceiptReceived, outside)
	late.ReceivedAt = &received
	s.save(late)

	confirmed := s.base.Add(2 * time.Hour)
	err := s.store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		if err := tx.Transfers().SaveTransfer(ctx, domain.TreasuryTransfer{TransferID: "t1", Method: domain.TransferWire, Amount: 4000, Status: domain.TransferConfirmed, ConfirmedAt: &confirmed}); err != nil {
			return err
		}
		return tx.Transfers().SaveTransfer(ctx, domain.TreasuryTransfer{TransferID: "t2", Method: domain.TransferACH, Amount: 100, Status: domain.TransferSubmitted})
	})
	s.Require().NoError(err)

	snap, err := s.store.GetReconciliationSnapshot(s.ctx, domain.Period{From: s.base.Add(-time.Hour), To: s.base.Add(24 * time.Hour)})
	s.Require().NoError(err)
	s.Equal(s.base, snap.AsOf)
	s.ElementsMatch([]domain.ReceiptAggregate{
		{Method: domain.MethodCash, Status: domain.ReceiptApproved, Amount: 10000, Count: 1},
		{Method: domain.MethodCash, Status: domain.ReceiptPending, Amount: 500, Count: 1},
		{Method: domain.MethodCard, Status: domain.ReceiptReceived, Amount: 300, Count: 1},
	}, snap.Receipts)
	s.Equal([]domain.TransferAggregate{{Method: domain.TransferWire, Amount: 4000, Count: 1}}, snap.Transfers)
}

func (s *StoreTestSuite) TestLockWaitTimesOut() {
	store := NewStore(WithTimeout(50 * time.Millisecond))
	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		_ = store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	err := store.WithinTx(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error { return nil })
	close(release)
	s.ErrorIs(err, apperrors.ErrStoreUnavailable)
	s.True(apperrors.IsRetryable(err))
}

func receiptIDs(rows []domain.PaymentReceipt) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ReceiptID
	}
	return ids
}
