package services

import (
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first; the ledger and posting services depend on it.
	container.Account = NewAccountService(repos.AccountRepo)

	container.Ledger = NewLedgerService(repos.VoucherRepo, repos.AccountRepo)
	container.Posting = NewPostingService(container.Ledger, container.Account)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)

	return container
}
