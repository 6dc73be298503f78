package services

// ServiceContainer holds the service facades the handlers are wired with.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Account   AccountSvcFacade
	Reporting ReportingSvcFacade
}
