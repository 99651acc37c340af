package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork         UnitOfWork
	ReceiptRepo        ReceiptReader
	ApprovalRepo       ApprovalReader
	TransferRepo       TransferReader
	AuditRepo          AuditReader
	ReconciliationRepo ReconciliationRepository
	IdempotencyCache   IdempotencyCache // optional
}
