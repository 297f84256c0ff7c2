package services

import (
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/platform/config"
	"github.com/go-redis/redis/v8"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	accountSvc := NewAccountService(repos.AccountRepo)
	container.Account = accountSvc
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Agent = NewAgentService(repos.AgentRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.CustomerRepo)
	container.Document = NewDocumentService(
		repos.DocumentRepo,
		repos.CustomerRepo,
		repos.AgentRepo,
		repos.ProjectRepo,
		repos.CurrencyRepo,
	)

	reportingSvc := NewReportingService(repos.ReportingRepo, repos.ProjectRepo, cache)
	container.Reporting = reportingSvc

	// The reporting service doubles as the profit cache invalidator for the
	// submission flow.
	container.Submission = NewSubmissionService(
		repos.DocumentRepo,
		repos.LedgerRepo,
		accountSvc,
		reportingSvc,
	)

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}

// Compile-time checks that the concrete services satisfy their facades.
var (
	_ portssvc.AccountSvcFacade    = (*AccountService)(nil)
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.CustomerSvcFacade   = (*CustomerService)(nil)
	_ portssvc.AgentSvcFacade      = (*AgentService)(nil)
	_ portssvc.ProjectSvcFacade    = (*ProjectService)(nil)
	_ portssvc.DocumentSvcFacade   = (*DocumentService)(nil)
	_ portssvc.SubmissionSvcFacade = (*SubmissionService)(nil)
	_ portssvc.LedgerSvcFacade     = (*LedgerService)(nil)
	_ portssvc.ReportingSvcFacade  = (*ReportingService)(nil)
	_ portssvc.ProfitInvalidator   = (*ReportingService)(nil)
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
	_ portssvc.TokenSvcFacade      = (*TokenService)(nil)
)
