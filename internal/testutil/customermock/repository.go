package customermock

import (
	"context"

	domain "loan-application-api/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset functions succeed. Create and CreatePropertyFirm then hand out
// sequential IDs so children can be checked against their parent.
// Calls records the table of every call in order.
type Repo struct {
	CreateFn                func(ctx context.Context, d *domain.Details) error
	CreateBankDetailFn      func(ctx context.Context, b *domain.BankDetail) error
	CreatePropertyFirmFn    func(ctx context.Context, p *domain.PropertyFirm) error
	CreateFirmDetailFn      func(ctx context.Context, f *domain.FirmDetail) error
	CreatePolicyFn          func(ctx context.Context, p *domain.PolicyDetail) error
	CreateGuarantorFn       func(ctx context.Context, g *domain.GuarantorDetail) error
	CreateDirectorPartnerFn func(ctx context.Context, d *domain.DirectorPartner) error
	CreateIncomeReturnFn    func(ctx context.Context, r *domain.IncomeReturn) error
	CreatePurchaseSaleFn    func(ctx context.Context, p *domain.PurchaseSale) error
	CreateSharesAddFn       func(ctx context.Context, s *domain.SharesAdd) error

	Calls []string

	next uint64
}

func (m *Repo) id() uint64 {
	m.next++
	return m.next
}

func (m *Repo) Create(ctx context.Context, d *domain.Details) error {
	m.Calls = append(m.Calls, d.TableName())
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	d.ID = m.id()
	return nil
}

func (m *Repo) CreateBankDetail(ctx context.Context, b *domain.BankDetail) error {
	m.Calls = append(m.Calls, b.TableName())
	if m.CreateBankDetailFn != nil {
		return m.CreateBankDetailFn(ctx, b)
	}
	return nil
}

func (m *Repo) CreatePropertyFirm(ctx context.Context, p *domain.PropertyFirm) error {
	m.Calls = append(m.Calls, p.TableName())
	if m.CreatePropertyFirmFn != nil {
		return m.CreatePropertyFirmFn(ctx, p)
	}
	p.ID = m.id()
	return nil
}

func (m *Repo) CreateFirmDetail(ctx context.Context, f *domain.FirmDetail) error {
	m.Calls = append(m.Calls, f.TableName())
	if m.CreateFirmDetailFn != nil {
		return m.CreateFirmDetailFn(ctx, f)
	}
	return nil
}

func (m *Repo) CreatePolicy(ctx context.Context, p *domain.PolicyDetail) error {
	m.Calls = append(m.Calls, p.TableName())
	if m.CreatePolicyFn != nil {
		return m.CreatePolicyFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateGuarantor(ctx context.Context, g *domain.GuarantorDetail) error {
	m.Calls = append(m.Calls, g.TableName())
	if m.CreateGuarantorFn != nil {
		return m.CreateGuarantorFn(ctx, g)
	}
	return nil
}

func (m *Repo) CreateDirectorPartner(ctx context.Context, d *domain.DirectorPartner) error {
	m.Calls = append(m.Calls, d.TableName())
	if m.CreateDirectorPartnerFn != nil {
		return m.CreateDirectorPartnerFn(ctx, d)
	}
	return nil
}

func (m *Repo) CreateIncomeReturn(ctx context.Context, r *domain.IncomeReturn) error {
	m.Calls = append(m.Calls, r.TableName())
	if m.CreateIncomeReturnFn != nil {
		return m.CreateIncomeReturnFn(ctx, r)
	}
	return nil
}

func (m *Repo) CreatePurchaseSale(ctx context.Context, p *domain.PurchaseSale) error {
	m.Calls = append(m.Calls, p.TableName())
	if m.CreatePurchaseSaleFn != nil {
		return m.CreatePurchaseSaleFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateSharesAdd(ctx context.Context, s *domain.SharesAdd) error {
	m.Calls = append(m.Calls, s.TableName())
	if m.CreateSharesAddFn != nil {
		return m.CreateSharesAddFn(ctx, s)
	}
	return nil
}
