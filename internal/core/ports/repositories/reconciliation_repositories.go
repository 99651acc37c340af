package repositories

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// ReconciliationRepository defines aggregation reads for the dashboards
type ReconciliationRepository interface {
	// GetReconciliationSnapshot aggregates receipts and confirmed transfers for
	// a period from a single consistent read.
	GetReconciliationSnapshot(ctx context.Context, period domain.Period) (*domain.ReconciliationSnapshot, error)
}
