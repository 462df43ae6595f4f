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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, property_id, unit_number, unit_type, rent_amount, deposit_amount, status, water_meter, electricity_meter, created_at`

func scanUnit(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(
		&u.ID, &u.PropertyID, &u.UnitNumber, &u.UnitType, &u.RentAmount, &u.DepositAmount,
		&u.Status, &u.WaterMeter, &u.ElectricityMeter, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste una nueva unidad bajo su propiedad.
func (r *UnitRepo) Create(u *entity.Unit) error {
	query := `
		INSERT INTO units (id, property_id, unit_number, unit_type, rent_amount, deposit_amount, status, water_meter, electricity_meter, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.PropertyID, u.UnitNumber, u.UnitType, u.RentAmount, u.DepositAmount,
		u.Status, u.WaterMeter, u.ElectricityMeter, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // unit_number repetido en la propiedad
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // propiedad inexistente
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, err := scanUnit(r.q.QueryRow(context.Background(),
		`SELECT `+unitColumns+` FROM units WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// ListByProperty lista todas las unidades de una propiedad, por número.
func (r *UnitRepo) ListByProperty(propertyID string) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+unitColumns+` FROM units WHERE property_id = $1 ORDER BY unit_number`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list units by property: %w", err)
	}
	defer rows.Close()
	return collectUnits(rows)
}

// List lista unidades con paginación.
func (r *UnitRepo) List(limit, offset int) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+unitColumns+` FROM units ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	return collectUnits(rows)
}

func collectUnits(rows pgx.Rows) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de la unidad.
func (r *UnitRepo) Update(u *entity.Unit) error {
	query := `
		UPDATE units SET unit_number = $2, unit_type = $3, rent_amount = $4, deposit_amount = $5,
			status = $6, water_meter = $7, electricity_meter = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.UnitNumber, u.UnitType, u.RentAmount, u.DepositAmount,
		u.Status, u.WaterMeter, u.ElectricityMeter,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la unidad.
func (r *UnitRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE units SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update unit status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
