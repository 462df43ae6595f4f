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

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, unit_id, tenant_id, category, description, priority, status, assigned_technician, created_at, updated_at`

func scanTicket(row pgx.Row) (*entity.MaintenanceTicket, error) {
	var t entity.MaintenanceTicket
	err := row.Scan(
		&t.ID, &t.UnitID, &t.TenantID, &t.Category, &t.Description, &t.Priority,
		&t.Status, &t.AssignedTechnician, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(t *entity.MaintenanceTicket) error {
	query := `
		INSERT INTO maintenance_tickets (id, unit_id, tenant_id, category, description, priority, status, assigned_technician, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UnitID, t.TenantID, t.Category, t.Description, t.Priority,
		t.Status, t.AssignedTechnician, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // unidad o inquilino inexistente
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *TicketRepo) GetByID(id string) (*entity.MaintenanceTicket, error) {
	t, err := scanTicket(r.q.QueryRow(context.Background(),
		`SELECT `+ticketColumns+` FROM maintenance_tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// List lista tickets con paginación, más recientes primero.
func (r *TicketRepo) List(limit, offset int) ([]*entity.MaintenanceTicket, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+ticketColumns+` FROM maintenance_tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del ticket (estado, prioridad, técnico).
func (r *TicketRepo) Update(t *entity.MaintenanceTicket) error {
	query := `
		UPDATE maintenance_tickets SET category = $2, description = $3, priority = $4, status = $5,
			assigned_technician = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Category, t.Description, t.Priority, t.Status, t.AssignedTechnician, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}
