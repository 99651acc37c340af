package dto

import (
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/utils"
)

// PlanTransferRequest defines the data needed to plan a treasury transfer.
type PlanTransferRequest struct {
	SourceAccount      string                `json:"sourceAccount" binding:"required" validate:"required"`
	DestinationAccount string                `json:"destinationAccount" binding:"required" validate:"required"`
	Method             domain.TransferMethod `json:"method" binding:"required,oneof=ACH WIRE" validate:"required,oneof=ACH WIRE"`
	Amount             int64                 `json:"amount" binding:"required,gt=0,lte=1000000000000000" validate:"gt=0,lte=1000000000000000"`
	FundingReceiptID   *string               `json:"fundingReceiptID"` // Optional
	Notes              *string               `json:"notes" binding:"omitempty,max=2000" validate:"omitempty,max=2000"`
}

// SubmitTransferRequest records the bank reference of a submitted transfer.
type SubmitTransferRequest struct {
	BankRef *string `json:"bankRef" binding:"omitempty,max=200" validate:"omitempty,max=200"`
}

// ConfirmTransferRequest records the destination's confirmation reference.
type ConfirmTransferRequest struct {
	DestinationRef *string `json:"destinationRef" binding:"omitempty,max=200" validate:"omitempty,max=200"`
}

// CancelTransferRequest carries the optional cancellation reason.
type CancelTransferRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=1000" validate:"omitempty,max=1000"`
}

// TransferResponse defines the data returned for a treasury transfer.
type TransferResponse struct {
	TransferID         string                `json:"transferID"`
	SourceAccount      string                `json:"sourceAccount"`
	DestinationAccount string                `json:"destinationAccount"`
	Method             domain.TransferMethod `json:"method"`
	Amount             int64                 `json:"amount"`
	AmountDisplay      string                `json:"amountDisplay"`
	Status             domain.TransferStatus `json:"status"`
	PaymentReceiptID   *string               `json:"paymentReceiptID,omitempty"`
	PlannedAt          time.Time             `json:"plannedAt"`
	SubmittedAt        *time.Time            `json:"submittedAt,omitempty"`
	ConfirmedAt        *time.Time            `json:"confirmedAt,omitempty"`
	CanceledAt         *time.Time            `json:"canceledAt,omitempty"`
	SourceBankRef      *string               `json:"sourceBankRef,omitempty"`
	DestinationRef     *string               `json:"destinationRef,omitempty"`
	Notes              *string               `json:"notes,omitempty"`
	Version            int64                 `json:"version"`
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	Status           string  `form:"status" binding:"omitempty,oneof=PLANNED SUBMITTED CONFIRMED CANCELED"`
	PaymentReceiptID string  `form:"paymentReceiptID"`
	Limit            int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken        *string `form:"nextToken"`
}

// ListTransfersResponse wraps a page of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTransferResponse converts a domain.TreasuryTransfer to TransferResponse DTO
func ToTransferResponse(t *domain.TreasuryTransfer) TransferResponse {
	return TransferResponse{
		TransferID:         t.TransferID,
		SourceAccount:      t.SourceAccount,
		DestinationAccount: t.DestinationAccount,
		Method:             t.Method,
		Amount:             t.Amount,
		AmountDisplay:      utils.FormatMinorUnits(t.Amount),
		Status:             t.Status,
		PaymentReceiptID:   t.PaymentReceiptID,
		PlannedAt:          t.PlannedAt,
		SubmittedAt:        t.SubmittedAt,
		ConfirmedAt:        t.ConfirmedAt,
		CanceledAt:         t.CanceledAt,
		SourceBankRef:      t.SourceBankRef,
		DestinationRef:     t.DestinationRef,
		Notes:              t.Notes,
		Version:            t.Version,
	}
}

// ToListTransferResponse converts a slice of transfers to DTOs
func ToListTransferResponse(transfers []domain.TreasuryTransfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
