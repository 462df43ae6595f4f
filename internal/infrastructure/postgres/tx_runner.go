package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.LeaseTxRunner.
var _ usecase.LeaseTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Se usa para crear el contrato y marcar la unidad como
// ocupada en una sola escritura atómica: no puede quedar un contrato activo
// contra una unidad no ocupada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leaseRepo := NewLeaseRepository(tx)
	unitRepo := NewUnitRepository(tx)

	if err := fn(leaseRepo, unitRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
