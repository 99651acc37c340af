package handlers_test

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}
func (m *MockReceiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListReceiptsResponse), args.Error(1)
}
func (m *MockReceiptService) RecordManualReceipt(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.RecordReceiptRequest) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, actor, idempotencyKey, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}
func (m *MockReceiptService) RequestApproval(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RequestApprovalRequest) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, actor, idempotencyKey, receiptID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockReceiptService) MarkReceived(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, actor, idempotencyKey, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}
func (m *MockReceiptService) Refund(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RefundReceiptRequest) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, actor, idempotencyKey, receiptID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) GetApprovalRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ListApprovalRequests(ctx context.Context, params dto.ListApprovalRequestsParams) (*dto.ListApprovalRequestsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListApprovalRequestsResponse), args.Error(1)
}
func (m *MockApprovalService) Decide(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.DecideApprovalRequest) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, actor, idempotencyKey, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) AttachEvidence(ctx context.Context, actor domain.Actor, idempotencyKey string, requestID string, req dto.AttachEvidenceRequest) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, actor, idempotencyKey, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) GetTransfer(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryTransfer), args.Error(1)
}
func (m *MockTransferService) ListTransfers(ctx context.Context, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransfersResponse), args.Error(1)
}
func (m *MockTransferService) Plan(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.PlanTransferRequest) (*domain.TreasuryTransfer, error) {
	args := m.Called(ctx, actor, idempotencyKey, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryTransfer), args.Error(1)
}
func (m *MockTransferService) Submit(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.SubmitTransferRequest) (*domain.TreasuryTransfer, error) {
	args := m.Called(ctx, actor, idempotencyKey, transferID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryTransfer), args.Error(1)
}
func (m *MockTransferService) Confirm(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.ConfirmTransferRequest) (*domain.TreasuryTransfer, error) {
	args := m.Called(ctx, actor, idempotencyKey, transferID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryTransfer), args.Error(1)
}
func (m *MockTransferService) Cancel(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.CancelTransferRequest) (*domain.TreasuryTransfer, error) {
	args := m.Called(ctx, actor, idempotencyKey, transferID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryTransfer), args.Error(1)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Totals(ctx context.Context, period domain.Period) (*domain.ReconciliationTotals, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationTotals), args.Error(1)
}
func (m *MockReconciliationService) ByMethod(ctx context.Context, period domain.Period) (*domain.MethodBreakdown, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MethodBreakdown), args.Error(1)
}
func (m *MockReconciliationService) AuditTrail(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)
