// Package pdf implementa la generación del recibo de pago de renta.
//
// Layout de la página A4 (ocupa la mitad superior):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sistema  │  N° Recibo + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECIBIDO DE: inquilino + documento + contacto              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Concepto | Método | Monto                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL RECIBIDO + notas                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles para los métodos de pago.
var methodLabels = map[string]string{
	entity.PaymentMethodCash:  "Efectivo",
	entity.PaymentMethodBank:  "Transferencia bancaria",
	entity.PaymentMethodMpesa: "M-Pesa",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo de pago y devuelve sus bytes.
// lease puede ser nil: el pago no siempre está atado a un contrato.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment *entity.Payment,
	tenant *entity.Tenant,
	lease *entity.Lease,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago "+payment.ReceiptNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tenantRow(tenant))
	if lease != nil {
		m.AddRows(leaseRow(lease))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(payment))
	if payment.Notes != "" {
		m.AddRows(notesRow(payment.Notes))
	}
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y N° Recibo + Fecha (der).
func headerRow(payment *entity.Payment) core.Row {
	fecha := payment.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("RECIBO DE PAGO DE RENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Administración de propiedades", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO N°", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(payment.ReceiptNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tenantRow: datos del inquilino que paga.
func tenantRow(tenant *entity.Tenant) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECIBIDO DE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(tenant.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Tel: %s   |   Email: %s",
				tenant.IDPassportNumber,
				nonEmpty(tenant.Phone, "—"),
				nonEmpty(tenant.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// leaseRow: referencia al contrato cuando el pago está atado a uno.
func leaseRow(lease *entity.Lease) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("CONTRATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Unidad: %s   |   Vigencia: %s a %s   |   Renta mensual: $%s",
				lease.UnitID,
				lease.StartDate.Format("02/01/2006"),
				lease.EndDate.Format("02/01/2006"),
				formatMoney(lease.MonthlyRent.StringFixed(0)),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// detailHeaderRow: cabecera de la línea de detalle.
func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 6, align.Left),
		h("Método de pago", 3, align.Center),
		h("Monto", 3, align.Right),
	)
}

// detailRow: la única línea del recibo.
func detailRow(payment *entity.Payment) core.Row {
	method := methodLabels[payment.Method]
	if method == "" {
		method = payment.Method
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(
			"Pago de renta "+payment.Date.Format("January 2006"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			method,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			"$"+formatMoney(payment.Amount.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total recibido, alineado a la derecha.
func totalRow(payment *entity.Payment) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL RECIBIDO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(payment.Amount.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// notesRow: observaciones libres del pago.
func notesRow(notes string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Notas: "+notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
	))
}

// footerRow: leyenda de cierre.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo es constancia del pago registrado. Consérvelo como soporte.",
			props.Text{Size: 6.5, Color: colorGray, Top: 4},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
