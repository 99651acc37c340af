package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
)

// reconciliationService implements the read-only dashboard queries
type reconciliationService struct {
	BaseService
	reconciliationRepo portsrepo.ReconciliationRepository
	auditRepo          portsrepo.AuditReader
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(repo portsrepo.ReconciliationRepository, auditRepo portsrepo.AuditReader, options ...ServiceOption) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService:        newBaseService(nil, options),
		reconciliationRepo: repo,
		auditRepo:          auditRepo,
	}
}

// Ensure reconciliationService implements the ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Totals sums received, pending and transferred-out amounts for a period
func (s *reconciliationService) Totals(ctx context.Context, period domain.Period) (*domain.ReconciliationTotals, error) {
	snapshot, err := s.snapshot(ctx, period)
	if err != nil {
		return nil, err
	}

	totals := &domain.ReconciliationTotals{Period: period, AsOf: snapshot.AsOf}
	for _, row := range snapshot.Receipts {
		switch {
		case row.Status.IsCleared():
			totals.Received += row.Amount
		case row.Status.IsPending():
			totals.Pending += row.Amount
		}
		totals.ReceiptCount += row.Count
	}
	for _, row := range snapshot.Transfers {
		totals.TransferredOut += row.Amount
	}

	s.LogInfo(ctx, "Reconciliation totals generated",
		slog.String("from", period.From.Format(time.RFC3339)),
		slog.String("to", period.To.Format(time.RFC3339)),
		slog.Int64("received", totals.Received),
		slog.Int64("pending", totals.Pending),
		slog.Int64("transferred_out", totals.TransferredOut))
	return totals, nil
}

// ByMethod returns the totals grouped by payment method and transfer rail.
// Every known method is listed, zero-valued when it saw no activity.
func (s *reconciliationService) ByMethod(ctx context.Context, period domain.Period) (*domain.MethodBreakdown, error) {
	snapshot, err := s.snapshot(ctx, period)
	if err != nil {
		return nil, err
	}

	receiptIdx := make(map[domain.PaymentMethod]int, len(domain.AllPaymentMethods))
	breakdown := &domain.MethodBreakdown{
		Period:    period,
		Receipts:  make([]domain.MethodTotals, 0, len(domain.AllPaymentMethods)),
		Transfers: make([]domain.TransferMethodTotals, 0, len(domain.AllTransferMethods)),
		AsOf:      snapshot.AsOf,
	}
	for i, m := range domain.AllPaymentMethods {
		receiptIdx[m] = i
		breakdown.Receipts = append(breakdown.Receipts, domain.MethodTotals{Method: m})
	}
	transferIdx := make(map[domain.TransferMethod]int, len(domain.AllTransferMethods))
	for i, m := range domain.AllTransferMethods {
		transferIdx[m] = i
		breakdown.Transfers = append(breakdown.Transfers, domain.TransferMethodTotals{Method: m})
	}

	for _, row := range snapshot.Receipts {
		i, ok := receiptIdx[row.Method]
		if !ok {
			continue
		}
		t := &breakdown.Receipts[i]
		switch {
		case row.Status.IsCleared():
			t.Received += row.Amount
		case row.Status.IsPending():
			t.Pending += row.Amount
		}
		t.ReceiptCount += row.Count
	}
	for _, row := range snapshot.Transfers {
		i, ok := transferIdx[row.Method]
		if !ok {
			continue
		}
		breakdown.Transfers[i].TransferredOut += row.Amount
		breakdown.Transfers[i].TransferCount += row.Count
	}

	s.LogInfo(ctx, "Reconciliation breakdown generated",
		slog.String("from", period.From.Format(time.RFC3339)),
		slog.String("to", period.To.Format(time.RFC3339)))
	return breakdown, nil
}

func (s *reconciliationService) snapshot(ctx context.Context, period domain.Period) (*domain.ReconciliationSnapshot, error) {
	if period.From.IsZero() || period.To.IsZero() || !period.From.Before(period.To) {
		return nil, fmt.Errorf("%w: period start must be before its end", apperrors.ErrValidation)
	}
	snapshot, err := s.reconciliationRepo.GetReconciliationSnapshot(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to read reconciliation snapshot",
			slog.String("from", period.From.Format(time.RFC3339)),
			slog.String("to", period.To.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to read reconciliation snapshot: %w", err)
	}
	return snapshot, nil
}

// AuditTrail returns an entity's transitions ordered by sequence
func (s *reconciliationService) AuditTrail(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("%w: unknown entity type %q", apperrors.ErrValidation, entityType)
	}
	entries, err := s.auditRepo.ListAuditEntries(ctx, entityType, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries",
			slog.String("entity_type", string(entityType)),
			slog.String("entity_id", entityID))
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no audit trail for %s %s", apperrors.ErrNotFound, entityType, entityID)
	}
	return entries, nil
}
