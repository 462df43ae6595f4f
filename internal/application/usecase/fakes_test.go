package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Propiedades-api/internal/domain"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Guardan por ID y replican
// la semántica de los adaptadores reales (nil cuando no existe, ErrDuplicate
// en las claves únicas).

var errRepoFailure = errors.New("fallo simulado del repositorio")

// ── Tenants ───────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*entity.Tenant{}}
}

func (f *fakeTenantRepo) Create(t *entity.Tenant) error {
	for _, existing := range f.tenants {
		if existing.IDPassportNumber == t.IDPassportNumber {
			return domain.ErrDuplicate
		}
	}
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) GetByIDPassport(number string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.IDPassportNumber == number {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	var list []*entity.Tenant
	for _, t := range f.tenants {
		list = append(list, t)
	}
	return list, nil
}

func (f *fakeTenantRepo) Update(t *entity.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}

// ── Units ─────────────────────────────────────────────────────────────────────

type fakeUnitRepo struct {
	units map[string]*entity.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: map[string]*entity.Unit{}}
}

func (f *fakeUnitRepo) Create(u *entity.Unit) error {
	f.units[u.ID] = u
	return nil
}

func (f *fakeUnitRepo) GetByID(id string) (*entity.Unit, error) {
	return f.units[id], nil
}

func (f *fakeUnitRepo) ListByProperty(propertyID string) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for _, u := range f.units {
		if u.PropertyID == propertyID {
			list = append(list, u)
		}
	}
	return list, nil
}

func (f *fakeUnitRepo) List(limit, offset int) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for _, u := range f.units {
		list = append(list, u)
	}
	return list, nil
}

func (f *fakeUnitRepo) Update(u *entity.Unit) error {
	f.units[u.ID] = u
	return nil
}

func (f *fakeUnitRepo) UpdateStatus(id, status string) error {
	u, ok := f.units[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Status = status
	return nil
}

// ── Leases ────────────────────────────────────────────────────────────────────

type fakeLeaseRepo struct {
	leases     map[string]*entity.Lease
	failCreate bool
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: map[string]*entity.Lease{}}
}

func (f *fakeLeaseRepo) Create(l *entity.Lease) error {
	if f.failCreate {
		return errRepoFailure
	}
	f.leases[l.ID] = l
	return nil
}

func (f *fakeLeaseRepo) GetByID(id string) (*entity.Lease, error) {
	return f.leases[id], nil
}

func (f *fakeLeaseRepo) List(limit, offset int) ([]*entity.Lease, error) {
	var list []*entity.Lease
	for _, l := range f.leases {
		list = append(list, l)
	}
	return list, nil
}

func (f *fakeLeaseRepo) Update(l *entity.Lease) error {
	f.leases[l.ID] = l
	return nil
}

func (f *fakeLeaseRepo) GetActiveByTenant(tenantID string) (*entity.Lease, error) {
	var latest *entity.Lease
	for _, l := range f.leases {
		if l.TenantID != tenantID || l.Status != entity.LeaseStatusActive {
			continue
		}
		if latest == nil || l.CreatedAt.After(latest.CreatedAt) {
			latest = l
		}
	}
	return latest, nil
}

// ── Payments ──────────────────────────────────────────────────────────────────

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	for _, existing := range f.payments {
		if existing.ReceiptNumber == p.ReceiptNumber {
			return domain.ErrDuplicate
		}
	}
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for _, p := range f.payments {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakePaymentRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			list = append(list, p)
		}
	}
	return list, nil
}

// ── Visitors ──────────────────────────────────────────────────────────────────

type fakeVisitorRepo struct {
	visitors map[string]*entity.Visitor
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{visitors: map[string]*entity.Visitor{}}
}

func (f *fakeVisitorRepo) Create(v *entity.Visitor) error {
	f.visitors[v.ID] = v
	return nil
}

func (f *fakeVisitorRepo) GetByID(id string) (*entity.Visitor, error) {
	return f.visitors[id], nil
}

func (f *fakeVisitorRepo) List(limit, offset int) ([]*entity.Visitor, error) {
	var list []*entity.Visitor
	for _, v := range f.visitors {
		list = append(list, v)
	}
	return list, nil
}

func (f *fakeVisitorRepo) SetExitTime(id string, exitTime time.Time) error {
	v, ok := f.visitors[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.ExitTime = &exitTime
	return nil
}

// ── Tx runner ─────────────────────────────────────────────────────────────────

// fakeTxRunner entrega los mismos fakes al callback. Registra si el callback
// terminó con error para poder verificar el orden de las escrituras.
type fakeTxRunner struct {
	leaseRepo repository.LeaseRepository
	unitRepo  repository.UnitRepository
	runs      int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
) error) error {
	f.runs++
	return fn(f.leaseRepo, f.unitRepo)
}

// ── PDF ───────────────────────────────────────────────────────────────────────

type fakeReceiptGenerator struct {
	calls int
}

func (f *fakeReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment *entity.Payment,
	tenant *entity.Tenant,
	lease *entity.Lease,
) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.7 " + payment.ReceiptNumber), nil
}
