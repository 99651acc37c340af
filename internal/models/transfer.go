package models

import "time"

// TreasuryTransfer is the treasury_transfers row.
type TreasuryTransfer struct {
	TransferID         string     `db:"transfer_id"`
	SourceAccount      string     `db:"source_account"`
	DestinationAccount string     `db:"destination_account"`
	Method             string     `db:"method"`
	Amount             int64      `db:"amount"`
	Status             string     `db:"status"`
	PaymentReceiptID   *string    `db:"payment_receipt_id"`
	PlannedAt          time.Time  `db:"planned_at"`
	SubmittedAt        *time.Time `db:"submitted_at"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	CanceledAt         *time.Time `db:"canceled_at"`
	SourceBankRef      *string    `db:"source_bank_ref"`
	DestinationRef     *string    `db:"destination_ref"`
	Notes              *string    `db:"notes"`
	AuditFields
}
