package services

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/dto"
)

// TransferReaderSvc defines read operations for treasury transfers
type TransferReaderSvc interface {
	GetTransfer(ctx context.Context, transferID string) (*domain.TreasuryTransfer, error)
	ListTransfers(ctx context.Context, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}

// TransferWriterSvc defines treasury transfer transitions
type TransferWriterSvc interface {
	// Plan creates a PLANNED transfer, optionally funded by a cleared receipt.
	Plan(ctx context.Context, actor domain.Actor, idempotencyKey string, req dto.PlanTransferRequest) (*domain.TreasuryTransfer, error)

	// Submit moves PLANNED -> SUBMITTED.
	Submit(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.SubmitTransferRequest) (*domain.TreasuryTransfer, error)

	// Confirm moves SUBMITTED -> CONFIRMED.
	Confirm(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.ConfirmTransferRequest) (*domain.TreasuryTransfer, error)

	// Cancel moves PLANNED or SUBMITTED -> CANCELED.
	Cancel(ctx context.Context, actor domain.Actor, idempotencyKey string, transferID string, req dto.CancelTransferRequest) (*domain.TreasuryTransfer, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
