package services

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// ReceiptReaderSvc defines read operations for payment receipts
type ReceiptReaderSvc interface {
	// GetReceipt retrieves a specific receipt by its ID.
	GetReceipt(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error)

	// ListReceipts retrieves a paginated list of receipts.
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)
}

// ReceiptWriterSvc defines the receipt transitions. Every call takes the
// client's idempotency key; a replay returns the original result.
type ReceiptWriterSvc interface {
	// RecordManualReceipt creates a PENDING receipt.
	RecordManualReceipt(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.RecordReceiptRequest) (*domain.PaymentReceipt, error)

	// RequestApproval opens an approval request and moves the receipt to PENDING_APPROVAL.
	RequestApproval(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RequestApprovalRequest) (*domain.ApprovalRequest, error)

	// MarkReceived confirms funds are in hand.
	MarkReceived(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string) (*domain.PaymentReceipt, error)

	// Refund moves an APPROVED or RECEIVED receipt to REFUNDED.
	Refund(ctx context.Context, actor domain.Actor, idempotencyKey string, receiptID string, req dto.RefundReceiptRequest) (*domain.PaymentReceipt, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
