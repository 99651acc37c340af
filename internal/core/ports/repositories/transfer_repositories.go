package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// TransferReader defines read operations for treasury transfers
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer.
	FindTransferByID(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error)

	// ListTransfers retrieves transfers newest first using token-based pagination.
	ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.TreasuryTransfer, *string, error)
}

// TransferTxRepository defines transfer operations inside a store transaction
type TransferTxRepository interface {
	// SaveTransfer persists a new transfer.
	SaveTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error

	// FindTransferByIDForUpdate selects a transfer and locks it.
	FindTransferByIDForUpdate(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error)

	// UpdateTransfer writes status, timestamps and references of a locked transfer.
	UpdateTransfer(ctx context.Context, transfer domain.TreasuryTransfer) error

	// SumAllocatedForReceipt sums the amount of non-canceled transfers funded by a receipt.
	// Callers must hold the receipt lock for the result to stay valid.
	SumAllocatedForReceipt(ctx context.Context, receiptID string) (int64, error)
}
