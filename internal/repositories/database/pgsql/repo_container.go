package pgsql

import (
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	agentRepo := newPgxAgentRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		CurrencyRepo:  currencyRepo,
		CustomerRepo:  customerRepo,
		AgentRepo:     agentRepo,
		ProjectRepo:   projectRepo,
		DocumentRepo:  documentRepo,
		LedgerRepo:    ledgerRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
	}
}
