package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	CurrencyRepo  CurrencyRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
	AgentRepo     AgentRepositoryFacade
	ProjectRepo   ProjectRepositoryFacade
	DocumentRepo  DocumentRepositoryFacade
	LedgerRepo    LedgerRepositoryWithTx
	ReportingRepo ReportingRepository
	UserRepo      UserRepositoryFacade
}
