package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/adapters/database/memory"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/core/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	opsActor     = domain.Actor{ID: "ops-1", Role: domain.RoleOperations}
	legalActor   = domain.Actor{ID: "legal-1", Role: domain.RoleLegal}
	financeActor = domain.Actor{ID: "fin-1", Role: domain.RoleFinance}
	adminActor   = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func newKey() string {
	return uuid.NewString()
}

func strPtr(s string) *string {
	return &s
}

// ledgerSuite wires every service against a fresh in-memory ledger.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	base  time.Time
	store *memory.Store
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.store = memory.NewStore(memory.WithClock(func() time.Time { return s.base }))
	s.repos = memory.NewRepositoryProvider(s.store)
	s.svc = services.NewServiceContainer(s.repos, services.DefaultContainerConfig(), services.WithClock(stepClock(s.base)))
}

func (s *ledgerSuite) recordReceipt(method domain.PaymentMethod, amount int64) *domain.PaymentReceipt {
	receipt, err := s.svc.Receipt.RecordManualReceipt(s.ctx, opsActor, newKey(), dto.RecordReceiptRequest{
		Method: method,
		Amount: amount,
	})
	s.Require().NoError(err)
	return receipt
}

func (s *ledgerSuite) requestApproval(receiptID string) *domain.ApprovalRequest {
	request, err := s.svc.Receipt.RequestApproval(s.ctx, opsActor, newKey(), receiptID, dto.RequestApprovalRequest{})
	s.Require().NoError(err)
	return request
}

// approvedCashReceipt records a CASH receipt and takes it through the approval gate.
func (s *ledgerSuite) approvedCashReceipt(amount int64) *domain.PaymentReceipt {
	receipt := s.recordReceipt(domain.MethodCash, amount)
	request := s.requestApproval(receipt.ReceiptID)
	_, err := s.svc.Approval.Decide(s.ctx, legalActor, newKey(), request.RequestID, dto.DecideApprovalRequest{Outcome: domain.ApprovalApproved})
	s.Require().NoError(err)
	got, err := s.svc.Receipt.GetReceipt(s.ctx, receipt.ReceiptID)
	s.Require().NoError(err)
	s.Require().Equal(domain.ReceiptApproved, got.Status)
	return got
}

func (s *ledgerSuite) auditTrail(entityType domain.EntityType, id string) []domain.AuditEntry {
	entries, err := s.svc.Reconciliation.AuditTrail(s.ctx, entityType, id)
	s.Require().NoError(err)
	return entries
}

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// --- Mock IdempotencyCache ---
type MockIdempotencyCache struct {
	mock.Mock
}

var _ portsrepo.IdempotencyCache = (*MockIdempotencyCache)(nil)

func (m *MockIdempotencyCache) GetResponse(ctx context.Context, scope, key string) (*domain.IdempotencyRecord, error) {
	args := m.Called(ctx, scope, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IdempotencyRecord), args.Error(1)
}

func (m *MockIdempotencyCache) StoreResponse(ctx context.Context, record domain.IdempotencyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock ReconciliationRepository ---
type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) GetReconciliationSnapshot(ctx context.Context, period domain.Period) (*domain.ReconciliationSnapshot, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSnapshot), args.Error(1)
}

// --- Mock AuditReader ---
type MockAuditReader struct {
	mock.Mock
}

var _ portsrepo.AuditReader = (*MockAuditReader)(nil)

func (m *MockAuditReader) ListAuditEntries(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}
