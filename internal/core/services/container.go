package services

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
)

// ContainerConfig carries the business rules the services are built with
type ContainerConfig struct {
	Methods       domain.MethodPolicy
	Accounts      domain.AccountRegistry
	OverrideRoles []domain.Role
}

// DefaultContainerConfig returns the rules used when nothing is configured
func DefaultContainerConfig() ContainerConfig {
	return ContainerConfig{
		Methods:       domain.DefaultMethodPolicy(),
		Accounts:      domain.DefaultAccountRegistry(),
		OverrideRoles: []domain.Role{domain.RoleAdmin},
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg ContainerConfig, options ...ServiceOption) *portssvc.ServiceContainer {
	if repos.IdempotencyCache != nil {
		options = append([]ServiceOption{WithIdempotencyCache(repos.IdempotencyCache)}, options...)
	}

	return &portssvc.ServiceContainer{
		Receipt:        NewReceiptService(repos.UnitOfWork, repos.ReceiptRepo, cfg.Methods, options...),
		Approval:       NewApprovalService(repos.UnitOfWork, repos.ApprovalRepo, cfg.OverrideRoles, options...),
		Transfer:       NewTransferService(repos.UnitOfWork, repos.TransferRepo, cfg.Accounts, options...),
		Reconciliation: NewReconciliationService(repos.ReconciliationRepo, repos.AuditRepo, options...),
	}
}
