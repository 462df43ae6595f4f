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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación de TenantRepository (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

const tenantColumns = `id, first_name, last_name, id_passport_number, phone, email, emergency_contact, status, notes, rent_due_date, balance, created_at`

func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	err := row.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.IDPassportNumber, &t.Phone, &t.Email,
		&t.EmergencyContact, &t.Status, &t.Notes, &t.RentDueDate, &t.Balance, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo inquilino.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, first_name, last_name, id_passport_number, phone, email, emergency_contact, status, notes, rent_due_date, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.FirstName, t.LastName, t.IDPassportNumber, t.Phone, t.Email,
		t.EmergencyContact, t.Status, t.Notes, t.RentDueDate, t.Balance, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // id_passport_number repetido
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un inquilino por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, err := scanTenant(r.q.QueryRow(context.Background(),
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// GetByIDPassport busca por número de cédula/pasaporte (único).
func (r *TenantRepo) GetByIDPassport(number string) (*entity.Tenant, error) {
	t, err := scanTenant(r.q.QueryRow(context.Background(),
		`SELECT `+tenantColumns+` FROM tenants WHERE id_passport_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by passport: %w", err)
	}
	return t, nil
}

// List lista inquilinos con paginación, por apellido y nombre.
func (r *TenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+tenantColumns+` FROM tenants ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del inquilino.
func (r *TenantRepo) Update(t *entity.Tenant) error {
	query := `
		UPDATE tenants SET first_name = $2, last_name = $3, id_passport_number = $4, phone = $5,
			email = $6, emergency_contact = $7, status = $8, notes = $9, rent_due_date = $10, balance = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.FirstName, t.LastName, t.IDPassportNumber, t.Phone, t.Email,
		t.EmergencyContact, t.Status, t.Notes, t.RentDueDate, t.Balance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}
