package domain

import "time"

// Period is a half-open time window [From, To).
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && t.Before(p.To)
}

// ReceiptAggregate is one aggregation row produced by the store: the summed
// amount and count of receipts sharing a method and status within a period.
type ReceiptAggregate struct {
	Method PaymentMethod
	Status ReceiptStatus
	Amount int64
	Count  int64
}

// TransferAggregate is the confirmed outbound amount per transfer method.
type TransferAggregate struct {
	Method TransferMethod
	Amount int64
	Count  int64
}

// ReconciliationSnapshot is a point-in-time read of both aggregates.
type ReconciliationSnapshot struct {
	Receipts  []ReceiptAggregate
	Transfers []TransferAggregate
	AsOf      time.Time
}

// ReconciliationTotals is the dashboard summary for a period.
type ReconciliationTotals struct {
	Period         Period    `json:"period"`
	Received       int64     `json:"received"`
	Pending        int64     `json:"pending"`
	TransferredOut int64     `json:"transferredOut"`
	ReceiptCount   int64     `json:"receiptCount"`
	AsOf           time.Time `json:"asOf"`
}

// MethodTotals is the received/pending breakdown for a single payment method.
type MethodTotals struct {
	Method       PaymentMethod `json:"method"`
	Received     int64         `json:"received"`
	Pending      int64         `json:"pending"`
	ReceiptCount int64         `json:"receiptCount"`
}

// TransferMethodTotals is the transferred-out breakdown for a transfer rail.
type TransferMethodTotals struct {
	Method         TransferMethod `json:"method"`
	TransferredOut int64          `json:"transferredOut"`
	TransferCount  int64          `json:"transferCount"`
}

// MethodBreakdown groups reconciliation totals by method.
type MethodBreakdown struct {
	Period    Period                 `json:"period"`
	Receipts  []MethodTotals         `json:"receipts"`
	Transfers []TransferMethodTotals `json:"transfers"`
	AsOf      time.Time              `json:"asOf"`
}
