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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository. Los pagos son inmutables:
// solo inserciones y lecturas.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, tenant_id, lease_id, amount, date, method, receipt_number, notes`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.TenantID, &p.LeaseID, &p.Amount, &p.Date, &p.Method, &p.ReceiptNumber, &p.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, lease_id, amount, date, method, receipt_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.LeaseID, p.Amount, p.Date, p.Method, p.ReceiptNumber, p.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // receipt_number repetido
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // inquilino o contrato inexistente
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List lista pagos con paginación, por fecha descendente.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+paymentColumns+` FROM payments ORDER BY date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListByTenant lista los pagos de un inquilino, por fecha descendente.
func (r *PaymentRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments by tenant: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
