package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Propiedades-api/internal/application/dto"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos de propiedades.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	propertyRepo repository.PropertyRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, propertyRepo repository.PropertyRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, propertyRepo: propertyRepo}
}

// Create registra un gasto contra una propiedad.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	fe := domain.FieldErrors{}
	if in.PropertyID == "" {
		fe.Add("property_id", "requerido")
	}
	if in.Category == "" {
		fe.Add("category", "requerido")
	}
	if !in.Amount.IsPositive() {
		fe.Add("amount", "debe ser mayor que cero")
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		fe.Add("date", "formato inválido, se espera YYYY-MM-DD")
	}
	if len(fe) > 0 {
		return nil, fe
	}

	property, err := uc.propertyRepo.GetByID(in.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	expense := &entity.Expense{
		ID:          uuid.New().String(),
		PropertyID:  in.PropertyID,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		ReceiptFile: in.ReceiptFile,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos con paginación; con propertyID filtra por propiedad.
func (uc *ExpenseUseCase) List(propertyID string, limit, offset int) (*dto.ExpenseListResponse, error) {
	var list []*entity.Expense
	var err error
	if propertyID != "" {
		list, err = uc.repo.ListByProperty(propertyID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(dto.DateLayout),
		Description: e.Description,
		ReceiptFile: e.ReceiptFile,
	}
}
