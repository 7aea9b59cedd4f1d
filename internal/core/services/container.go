package services

import (
	portsrepo "github.com/appfinanceiro/ledger_view_app/internal/core/ports/repositories"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies. The report service consumes the view service's
// filtered output, so the view service is built first. defaultPercent
// seeds the retention percentage of fresh movement drafts.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, defaultPercent string) *portssvc.ServiceContainer {
	view := NewViewService(repos.MovementRepo, repos.SupplierRepo)

	return &portssvc.ServiceContainer{
		View:      view,
		Movement:  NewMovementService(repos.MovementRepo, repos.SupplierRepo, defaultPercent),
		Supplier:  NewSupplierService(repos.SupplierRepo),
		Reporting: NewReportService(view),
	}
}
