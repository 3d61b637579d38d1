package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo  ClientRepositoryFacade
	ExpenseRepo ExpenseRepositoryFacade
	UserRepo    UserRepository
	Health      HealthChecker
	// Close releases the backend connections. Never nil.
	Close func()
}
