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

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación de PropertyRepository (usable con pool o tx).
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// Create persiste una nueva propiedad.
func (r *PropertyRepo) Create(p *entity.Property) error {
	query := `
		INSERT INTO properties (id, name, address, description, owner_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Address, p.Description, p.OwnerID, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // owner inexistente
		}
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad por ID.
func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `
		SELECT id, name, address, description, owner_id, status, created_at, updated_at
		FROM properties WHERE id = $1`
	var p entity.Property
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Address, &p.Description, &p.OwnerID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// List lista propiedades con paginación, ordenadas por nombre.
func (r *PropertyRepo) List(limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT id, name, address, description, owner_id, status, created_at, updated_at
		FROM properties ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Description, &p.OwnerID, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de la propiedad.
func (r *PropertyRepo) Update(p *entity.Property) error {
	query := `
		UPDATE properties SET name = $2, address = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Address, p.Description, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// Delete elimina la propiedad; las unidades caen en cascada por FK.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
