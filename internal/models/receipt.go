package models

import "time"

// PaymentReceipt is the payment_receipts row.
type PaymentReceipt struct {
	ReceiptID   string     `db:"receipt_id"`
	Method      string     `db:"method"`
	Amount      int64      `db:"amount"` // minor units, immutable
	Status      string     `db:"status"`
	ClientName  *string    `db:"client_name"`
	ClientEmail *string    `db:"client_email"`
	Description *string    `db:"description"`
	Notes       *string    `db:"notes"`
	ExternalRef *string    `db:"external_ref"`
	ReceivedAt  *time.Time `db:"received_at"`
	AuditFields
}
