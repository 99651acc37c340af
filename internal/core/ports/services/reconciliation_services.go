package services

import (
	"context"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
)

// ReconciliationSvcFacade defines the read-only dashboard queries.
type ReconciliationSvcFacade interface {
	// Totals sums received, pending and transferred-out amounts for a period.
	Totals(ctx context.Context, period domain.Period) (*domain.ReconciliationTotals, error)

	// ByMethod returns the same totals grouped by payment and transfer method.
	ByMethod(ctx context.Context, period domain.Period) (*domain.MethodBreakdown, error)

	// AuditTrail returns an entity's transitions ordered by sequence.
	AuditTrail(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error)
}
