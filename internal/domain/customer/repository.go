package customer

import "context"

// Repository writes the customer row and everything keyed by customer_id.
// Every Create sets the generated ID on its argument.
type Repository interface {
	Create(ctx context.Context, d *Details) error
	CreateBankDetail(ctx context.Context, b *BankDetail) error
	CreatePropertyFirm(ctx context.Context, p *PropertyFirm) error
	CreateFirmDetail(ctx context.Context, f *FirmDetail) error
	CreatePolicy(ctx context.Context, p *PolicyDetail) error
	CreateGuarantor(ctx context.Context, g *GuarantorDetail) error
	CreateDirectorPartner(ctx context.Context, d *DirectorPartner) error
	CreateIncomeReturn(ctx context.Context, r *IncomeReturn) error
	CreatePurchaseSale(ctx context.Context, p *PurchaseSale) error
	CreateSharesAdd(ctx context.Context, s *SharesAdd) error
}
