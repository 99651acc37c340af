package repositories

import "context"

// UnitOfWork runs a group of repository calls as one atomic store transaction.
//
// Implementations must give per-entity serializable isolation: a row read
// through a *ForUpdate method stays locked until fn returns, so the
// read-validate-write sequence of a transition cannot interleave with another
// caller. If fn returns an error nothing it wrote is kept. Store timeouts and
// connectivity failures surface as apperrors.ErrStoreUnavailable.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}

// TxRepositories exposes the repositories bound to a single store transaction.
type TxRepositories interface {
	Receipts() ReceiptTxRepository
	Approvals() ApprovalTxRepository
	Transfers() TransferTxRepository
	Audit() AuditWriter
	Idempotency() IdempotencyRepository
}
