package repository

import "github.com/jhoicas/Propiedades-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
	ListByProperty(propertyID string, limit, offset int) ([]*entity.Expense, error)
}
