package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `expense_id, name, price, responsable, date, payment_method, created_at, updated_at`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.Name,
		&e.Price,
		&e.Responsable,
		&e.Date,
		&e.PaymentMethod,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	e.Date = e.Date.UTC()
	return e, err
}

func (r *PgxExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, created_at DESC;`)
	if err != nil {
		return nil, apperrors.Persistence("query expenses", err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, apperrors.Persistence("scan expenses", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := scanExpense(r.Pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1;`, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("find expense "+expenseID, err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) InsertExpense(ctx context.Context, expense domain.Expense) error {
	query := `INSERT INTO expenses (` + expenseColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Name,
		expense.Price,
		expense.Responsable,
		expense.Date,
		expense.PaymentMethod,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return apperrors.Persistence("insert expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpenseByID(ctx context.Context, expenseID string, expense domain.Expense) (int64, error) {
	query := `
		UPDATE expenses SET
			name = $2,
			price = $3,
			responsable = $4,
			date = $5,
			payment_method = $6,
			updated_at = $7
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expenseID,
		expense.Name,
		expense.Price,
		expense.Responsable,
		expense.Date,
		expense.PaymentMethod,
		expense.UpdatedAt,
	)
	if err != nil {
		return 0, apperrors.Persistence("update expense "+expenseID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxExpenseRepository) DeleteExpenseByID(ctx context.Context, expenseID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return 0, apperrors.Persistence("delete expense "+expenseID, err)
	}
	return tag.RowsAffected(), nil
}
