package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

// VisitorRepo implementación de VisitorRepository (usable con pool o tx).
type VisitorRepo struct {
	q Querier
}

// NewVisitorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitorRepository(q Querier) *VisitorRepo {
	return &VisitorRepo{q: q}
}

const visitorColumns = `id, name, phone, id_number, unit_id, vehicle_plate, entry_time, exit_time, security_guard_name`

func scanVisitor(row pgx.Row) (*entity.Visitor, error) {
	var v entity.Visitor
	err := row.Scan(
		&v.ID, &v.Name, &v.Phone, &v.IDNumber, &v.UnitID, &v.VehiclePlate,
		&v.EntryTime, &v.ExitTime, &v.SecurityGuardName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create registra la entrada de un visitante.
func (r *VisitorRepo) Create(v *entity.Visitor) error {
	query := `
		INSERT INTO visitors (id, name, phone, id_number, unit_id, vehicle_plate, entry_time, exit_time, security_guard_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.Phone, v.IDNumber, v.UnitID, v.VehiclePlate,
		v.EntryTime, v.ExitTime, v.SecurityGuardName,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // unidad inexistente
		}
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de visita por ID.
func (r *VisitorRepo) GetByID(id string) (*entity.Visitor, error) {
	v, err := scanVisitor(r.q.QueryRow(context.Background(),
		`SELECT `+visitorColumns+` FROM visitors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visitor: %w", err)
	}
	return v, nil
}

// List lista visitas con paginación, por hora de entrada descendente.
func (r *VisitorRepo) List(limit, offset int) ([]*entity.Visitor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+visitorColumns+` FROM visitors ORDER BY entry_time DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// SetExitTime registra la salida del visitante.
func (r *VisitorRepo) SetExitTime(id string, exitTime time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE visitors SET exit_time = $2 WHERE id = $1`, id, exitTime)
	if err != nil {
		return fmt.Errorf("set visitor exit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
