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

var _ repository.LeaseRepository = (*LeaseRepo)(nil)

// LeaseRepo implementación de LeaseRepository (usable con pool o tx).
type LeaseRepo struct {
	q Querier
}

// NewLeaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeaseRepository(q Querier) *LeaseRepo {
	return &LeaseRepo{q: q}
}

const leaseColumns = `id, tenant_id, unit_id, start_date, end_date, monthly_rent, deposit_amount, payment_frequency, agreement_file, status, created_at`

func scanLease(row pgx.Row) (*entity.Lease, error) {
	var l entity.Lease
	err := row.Scan(
		&l.ID, &l.TenantID, &l.UnitID, &l.StartDate, &l.EndDate, &l.MonthlyRent,
		&l.DepositAmount, &l.PaymentFrequency, &l.AgreementFile, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un nuevo contrato.
func (r *LeaseRepo) Create(l *entity.Lease) error {
	query := `
		INSERT INTO leases (id, tenant_id, unit_id, start_date, end_date, monthly_rent, deposit_amount, payment_frequency, agreement_file, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.TenantID, l.UnitID, l.StartDate, l.EndDate, l.MonthlyRent,
		l.DepositAmount, l.PaymentFrequency, l.AgreementFile, l.Status, l.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // inquilino o unidad inexistente
		}
		return fmt.Errorf("insert lease: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *LeaseRepo) GetByID(id string) (*entity.Lease, error) {
	l, err := scanLease(r.q.QueryRow(context.Background(),
		`SELECT `+leaseColumns+` FROM leases WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lease: %w", err)
	}
	return l, nil
}

// List lista contratos con paginación, más recientes primero.
func (r *LeaseRepo) List(limit, offset int) ([]*entity.Lease, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+leaseColumns+` FROM leases ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del contrato (el estado es manual).
func (r *LeaseRepo) Update(l *entity.Lease) error {
	query := `
		UPDATE leases SET start_date = $2, end_date = $3, monthly_rent = $4, deposit_amount = $5,
			payment_frequency = $6, agreement_file = $7, status = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.StartDate, l.EndDate, l.MonthlyRent, l.DepositAmount,
		l.PaymentFrequency, l.AgreementFile, l.Status,
	)
	if err != nil {
		return fmt.Errorf("update lease: %w", err)
	}
	return nil
}

// GetActiveByTenant devuelve el contrato activo más reciente del inquilino, o nil.
func (r *LeaseRepo) GetActiveByTenant(tenantID string) (*entity.Lease, error) {
	l, err := scanLease(r.q.QueryRow(context.Background(),
		`SELECT `+leaseColumns+` FROM leases WHERE tenant_id = $1 AND status = 'active' ORDER BY created_at DESC LIMIT 1`, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active lease: %w", err)
	}
	return l, nil
}
