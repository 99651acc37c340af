package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// ReceiptReader defines read operations for payment receipts
type ReceiptReader interface {
	// FindReceiptByID retrieves a specific receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error)

	// ListReceipts retrieves receipts newest first using token-based pagination.
	// It returns the receipts, a token for the next page, and an error.
	ListReceipts(ctx context.Context, filter domain.ReceiptFilter, limit int, nextToken *string) ([]domain.PaymentReceipt, *string, error)
}

// ReceiptTxRepository defines receipt operations inside a store transaction
type ReceiptTxRepository interface {
	// SaveReceipt persists a new receipt.
	SaveReceipt(ctx context.Context, receipt domain.PaymentReceipt) error

	// FindReceiptByIDForUpdate selects a receipt and locks it until the transaction ends.
	FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.PaymentReceipt, error)

	// UpdateReceipt writes the mutable fields (status, receivedAt, audit fields) of a locked receipt.
	UpdateReceipt(ctx context.Context, receipt domain.PaymentReceipt) error
}
