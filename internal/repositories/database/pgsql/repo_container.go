package pgsql

import (
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository on a shared pool.
// Close releases the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:  newPgxClientRepository(dbPool),
		ExpenseRepo: newPgxExpenseRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		Health:      &BaseRepository{Pool: dbPool},
		Close:       dbPool.Close,
	}
}
