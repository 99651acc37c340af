package dto

import (
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/utils"
)

// ReconciliationPeriodParams defines the query window for dashboard totals.
// Dates are RFC3339 or YYYY-MM-DD; the window is [from, to).
type ReconciliationPeriodParams struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// ReconciliationTotalsResponse is the dashboard summary for a period.
type ReconciliationTotalsResponse struct {
	From                  time.Time `json:"from"`
	To                    time.Time `json:"to"`
	Received              int64     `json:"received"`
	ReceivedDisplay       string    `json:"receivedDisplay"`
	Pending               int64     `json:"pending"`
	PendingDisplay        string    `json:"pendingDisplay"`
	TransferredOut        int64     `json:"transferredOut"`
	TransferredOutDisplay string    `json:"transferredOutDisplay"`
	ReceiptCount          int64     `json:"receiptCount"`
	AsOf                  time.Time `json:"asOf"`
}

// MethodTotalsResponse is one payment-method row of the breakdown.
type MethodTotalsResponse struct {
	Method          domain.PaymentMethod `json:"method"`
	Received        int64                `json:"received"`
	ReceivedDisplay string               `json:"receivedDisplay"`
	Pending         int64                `json:"pending"`
	PendingDisplay  string               `json:"pendingDisplay"`
	ReceiptCount    int64                `json:"receiptCount"`
}

// TransferMethodTotalsResponse is one transfer-rail row of the breakdown.
type TransferMethodTotalsResponse struct {
	Method                domain.TransferMethod `json:"method"`
	TransferredOut        int64                 `json:"transferredOut"`
	TransferredOutDisplay string                `json:"transferredOutDisplay"`
	TransferCount         int64                 `json:"transferCount"`
}

// MethodBreakdownResponse groups reconciliation totals by method.
type MethodBreakdownResponse struct {
	From      time.Time                      `json:"from"`
	To        time.Time                      `json:"to"`
	Receipts  []MethodTotalsResponse         `json:"receipts"`
	Transfers []TransferMethodTotalsResponse `json:"transfers"`
	AsOf      time.Time                      `json:"asOf"`
}

// AuditEntryResponse is one transition of an entity's audit trail.
type AuditEntryResponse struct {
	Sequence   int64       `json:"sequence"`
	ActorID    string      `json:"actorID"`
	ActorRole  domain.Role `json:"actorRole"`
	FromStatus string      `json:"fromStatus"`
	ToStatus   string      `json:"toStatus"`
	Note       *string     `json:"note,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// AuditTrailResponse lists an entity's transitions in order.
type AuditTrailResponse struct {
	EntityType domain.EntityType    `json:"entityType"`
	EntityID   string               `json:"entityID"`
	Entries    []AuditEntryResponse `json:"entries"`
}

// ToReconciliationTotalsResponse converts domain totals to the DTO.
func ToReconciliationTotalsResponse(t *domain.ReconciliationTotals) ReconciliationTotalsResponse {
	return ReconciliationTotalsResponse{
		From:                  t.Period.From,
		To:                    t.Period.To,
		Received:              t.Received,
		ReceivedDisplay:       utils.FormatMinorUnits(t.Received),
		Pending:               t.Pending,
		PendingDisplay:        utils.FormatMinorUnits(t.Pending),
		TransferredOut:        t.TransferredOut,
		TransferredOutDisplay: utils.FormatMinorUnits(t.TransferredOut),
		ReceiptCount:          t.ReceiptCount,
		AsOf:                  t.AsOf,
	}
}

// ToMethodBreakdownResponse converts a domain breakdown to the DTO.
func ToMethodBreakdownResponse(b *domain.MethodBreakdown) MethodBreakdownResponse {
	resp := MethodBreakdownResponse{
		From:      b.Period.From,
		To:        b.Period.To,
		Receipts:  make([]MethodTotalsResponse, len(b.Receipts)),
		Transfers: make([]TransferMethodTotalsResponse, len(b.Transfers)),
		AsOf:      b.AsOf,
	}
	for i, m := range b.Receipts {
		resp.Receipts[i] = MethodTotalsResponse{
			Method:          m.Method,
			Received:        m.Received,
			ReceivedDisplay: utils.FormatMinorUnits(m.Received),
			Pending:         m.Pending,
			PendingDisplay:  utils.FormatMinorUnits(m.Pending),
			ReceiptCount:    m.ReceiptCount,
		}
	}
	for i, m := range b.Transfers {
		resp.Transfers[i] = TransferMethodTotalsResponse{
			Method:                m.Method,
			TransferredOut:        m.TransferredOut,
			TransferredOutDisplay: utils.FormatMinorUnits(m.TransferredOut),
			TransferCount:         m.TransferCount,
		}
	}
	return resp
}

// ToAuditTrailResponse converts audit entries to the DTO.
func ToAuditTrailResponse(entityType domain.EntityType, entityID string, entries []domain.AuditEntry) AuditTrailResponse {
	resp := AuditTrailResponse{
		EntityType: entityType,
		EntityID:   entityID,
		Entries:    make([]AuditEntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = AuditEntryResponse{
			Sequence:   e.Sequence,
			ActorID:    e.ActorID,
			ActorRole:  e.ActorRole,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			Note:       e.Note,
			OccurredAt: e.OccurredAt,
		}
	}
	return resp
}
