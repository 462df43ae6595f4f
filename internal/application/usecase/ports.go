// Package usecase contiene los casos de uso CRUD de la aplicación.
package usecase

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// LeaseTxRunner ejecuta un callback con repositorios atados a una misma
// transacción. Crear el contrato y marcar la unidad como ocupada tienen que
// confirmarse juntos o no confirmarse.
type LeaseTxRunner interface {
	Run(ctx context.Context, fn func(
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
	) error) error
}

// ReceiptPDFGenerator genera el recibo PDF de un pago. lease puede ser nil
// cuando el pago no está atado a un contrato.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, payment *entity.Payment, tenant *entity.Tenant, lease *entity.Lease) ([]byte, error)
}
