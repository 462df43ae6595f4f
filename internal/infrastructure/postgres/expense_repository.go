package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, property_id, category, amount, date, description, receipt_file`

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(&e.ID, &e.PropertyID, &e.Category, &e.Amount, &e.Date, &e.Description, &e.ReceiptFile)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, property_id, category, amount, date, description, receipt_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PropertyID, e.Category, e.Amount, e.Date, e.Description, e.ReceiptFile,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // propiedad inexistente
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List lista gastos con paginación, por fecha descendente.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

// ListByProperty lista los gastos de una propiedad, por fecha descendente.
func (r *ExpenseRepo) ListByProperty(propertyID string, limit, offset int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses WHERE property_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`,
		propertyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses by property: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func collectExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
