package services

// ServiceContainer holds all service facades needed by the handlers.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Currency   CurrencySvcFacade
	Customer   CustomerSvcFacade
	Agent      AgentSvcFacade
	Project    ProjectSvcFacade
	Document   DocumentSvcFacade
	Submission SubmissionSvcFacade
	Ledger     LedgerSvcFacade
	Reporting  ReportingSvcFacade
	User       UserSvcFacade
	Token      TokenSvcFacade
}
