package mysql

import (
	"context"

	"loan-application-api/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, d *customer.Details) error {
	return insert(ctx, r.db, d.TableName(), d)
}

func (r *CustomerRepository) CreateBankDetail(ctx context.Context, b *customer.BankDetail) error {
	return insert(ctx, r.db, b.TableName(), b)
}

func (r *CustomerRepository) CreatePropertyFirm(ctx context.Context, p *customer.PropertyFirm) error {
	return insert(ctx, r.db, p.TableName(), p)
}

func (r *CustomerRepository) CreateFirmDetail(ctx context.Context, f *customer.FirmDetail) error {
	return insert(ctx, r.db, f.TableName(), f)
}

func (r *CustomerRepository) CreatePolicy(ctx context.Context, p *customer.PolicyDetail) error {
	return insert(ctx, r.db, p.TableName(), p)
}

func (r *CustomerRepository) CreateGuarantor(ctx context.Context, g *customer.GuarantorDetail) error {
	return insert(ctx, r.db, g.TableName(), g)
}

func (r *CustomerRepository) CreateDirectorPartner(ctx context.Context, d *customer.DirectorPartner) error {
	return insert(ctx, r.db, d.TableName(), d)
}

func (r *CustomerRepository) CreateIncomeReturn(ctx context.Context, ir *customer.IncomeReturn) error {
	return insert(ctx, r.db, ir.TableName(), ir)
}

func (r *CustomerRepository) CreatePurchaseSale(ctx context.Context, p *customer.PurchaseSale) error {
	return insert(ctx, r.db, p.TableName(), p)
}

func (r *CustomerRepository) CreateSharesAdd(ctx context.Context, s *customer.SharesAdd) error {
	return insert(ctx, r.db, s.TableName(), s)
}
