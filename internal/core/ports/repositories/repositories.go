package repositories

// RepositoryProvider bundles the repositories the service layer is wired with.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	ReportingRepo   ReportingRepository
}
