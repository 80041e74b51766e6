package services

import (
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/pkg/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:       NewLedgerService(repos.AccountRepo, repos.TxnRepo),
		Registration: NewRegistrationService(repos.UserRepo, repos.CodeRepo),
		Access:       NewAccessControlService(cfg.BankOwnerID, repos.AdminRepo),
		Account:      NewAccountService(repos.AccountRepo),
		User:         NewUserService(repos.UserRepo),
	}
}
