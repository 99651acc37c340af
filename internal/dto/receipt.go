package dto

import (
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/utils"
)

// MaxAmount is the largest receipt or transfer amount accepted, in minor units.
// It keeps period totals well inside int64 and bigint.
const MaxAmount int64 = 1_000_000_000_000_000

// RecordReceiptRequest defines the data needed to record a manual receipt.
type RecordReceiptRequest struct {
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CARD BANK_ACH BANK_WIRE CHECK OTHER" validate:"required,oneof=CASH CARD BANK_ACH BANK_WIRE CHECK OTHER"`
	Amount      int64                `json:"amount" binding:"required,gt=0,lte=1000000000000000" validate:"gt=0,lte=1000000000000000"` // minor currency units
	ClientName  *string              `json:"clientName" binding:"omitempty,max=200" validate:"omitempty,max=200"`
	ClientEmail *string              `json:"clientEmail" binding:"omitempty,email" validate:"omitempty,email"`
	Description *string              `json:"description" binding:"omitempty,max=1000" validate:"omitempty,max=1000"`
	Notes       *string              `json:"notes" binding:"omitempty,max=2000" validate:"omitempty,max=2000"`
	ExternalRef *string              `json:"externalRef" binding:"omitempty,max=200" validate:"omitempty,max=200"`
}

// RequestApprovalRequest opens a compliance review for a receipt.
type RequestApprovalRequest struct {
	// AssignedRole defaults to LEGAL.
	AssignedRole domain.Role `json:"assignedRole"`
	// DesignateCompliance routes a non-compliance method through review anyway.
	DesignateCompliance bool    `json:"designateCompliance"`
	Notes               *string `json:"notes" binding:"omitempty,max=2000" validate:"omitempty,max=2000"`
}

// RefundReceiptRequest carries the optional refund reason.
type RefundReceiptRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=1000" validate:"omitempty,max=1000"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID     string               `json:"receiptID"`
	Method        domain.PaymentMethod `json:"method"`
	Amount        int64                `json:"amount"`
	AmountDisplay string               `json:"amountDisplay"`
	Status        domain.ReceiptStatus `json:"status"`
	ClientName    *string              `json:"clientName,omitempty"`
	ClientEmail   *string              `json:"clientEmail,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	ExternalRef   *string              `json:"externalRef,omitempty"`
	ReceivedAt    *time.Time           `json:"receivedAt,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
	Version       int64                `json:"version"`
}

// ListReceiptsParams defines query parameters for listing receipts.
type ListReceiptsParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=PENDING PENDING_APPROVAL APPROVED RECEIVED REJECTED REFUNDED"`
	Method    string  `form:"method" binding:"omitempty,oneof=CASH CARD BANK_ACH BANK_WIRE CHECK OTHER"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListReceiptsResponse wraps a page of receipts.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToReceiptResponse converts a domain.PaymentReceipt to ReceiptResponse DTO
func ToReceiptResponse(r *domain.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		Method:        r.Method,
		Amount:        r.Amount,
		AmountDisplay: utils.FormatMinorUnits(r.Amount),
		Status:        r.Status,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		Description:   r.Description,
		Notes:         r.Notes,
		ExternalRef:   r.ExternalRef,
		ReceivedAt:    r.ReceivedAt,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
		Version:       r.Version,
	}
}

// ToListReceiptResponse converts a slice of domain.PaymentReceipt to ReceiptResponse DTOs
func ToListReceiptResponse(receipts []domain.PaymentReceipt) []ReceiptResponse {
	res := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToReceiptResponse(&receipts[i])
	}
	return res
}
