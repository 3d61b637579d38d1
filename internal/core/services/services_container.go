package services

import (
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:  NewClientService(repos.ClientRepo),
		Expense: NewExpenseService(repos.ExpenseRepo),
		Summary: NewSummaryService(repos.ClientRepo, repos.ExpenseRepo),
		Auth:    NewAuthService(cfg, repos.UserRepo),
	}
}
