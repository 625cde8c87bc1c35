package submission

import (
	"context"
	"fmt"

	"loan-application-api/internal/domain/uow"
)

// firstAccountOnly: bank_details holds one account per customer, so only
// bankDetails.accounts[0] is stored and the rest are dropped.
const firstAccountOnly = 1

// keys are the generated identifiers later steps hang their rows off.
// They only ever come from inserts in the current transaction.
type keys struct {
	applicationID uint64
	customerID    uint64
	propertyID    uint64
}

// step inserts one row. index is the position in its input list, or -1 for
// single-row sections.
type step struct {
	table string
	index int
	run   func(ctx context.Context, r uow.Repos, k *keys) error
}

func (s step) String() string {
	if s.index < 0 {
		return s.table
	}
	return fmt.Sprintf("%s[%d]", s.table, s.index)
}

// plan lists the inserts for doc in execution order. Parents come before
// their children, list sections keep input order, and nothing below the
// root is planned without a customer section.
func plan(doc Document) []step {
	na := doc.NewApplication
	steps := []step{{table: "new_application", index: -1, run: func(ctx context.Context, r uow.Repos, k *keys) error {
		row := na.toEntity()
		if err := r.Applications.Create(ctx, row); err != nil {
			return err
		}
		k.applicationID = row.ID
		return nil
	}}}

	if doc.CustomerDetails == nil || !doc.CustomerDetails.Present() {
		return steps
	}
	cd := doc.CustomerDetails
	steps = append(steps, step{table: "customer_details", index: -1, run: func(ctx context.Context, r uow.Repos, k *keys) error {
		row := cd.toEntity(k.applicationID)
		if err := r.Customers.Create(ctx, row); err != nil {
			return err
		}
		k.customerID = row.ID
		return nil
	}})

	if b := doc.BankDetails; b != nil && len(b.Accounts) > 0 && b.Accounts[0].Present() {
		acc := &b.Accounts[0]
		steps = append(steps, step{table: "bank_details", index: -1, run: func(ctx context.Context, r uow.Repos, k *keys) error {
			return r.Customers.CreateBankDetail(ctx, acc.toEntity(k.customerID))
		}})
	}

	if p := doc.PropertyFirm; p != nil && p.Present() {
		steps = append(steps, step{table: "property_firm", index: -1, run: func(ctx context.Context, r uow.Repos, k *keys) error {
			row := p.toEntity(k.customerID)
			if err := r.Customers.CreatePropertyFirm(ctx, row); err != nil {
				return err
			}
			k.propertyID = row.ID
			return nil
		}})
		for i := range p.FirmDetails {
			in := &p.FirmDetails[i]
			steps = append(steps, step{table: "firm_details", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreateFirmDetail(ctx, in.toEntity(k.propertyID))
			}})
		}
	}

	if pd := doc.PolicyDetails; pd != nil {
		for i := range pd.Policies {
			in := &pd.Policies[i]
			steps = append(steps, step{table: "policy_details", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreatePolicy(ctx, in.toEntity(k.customerID))
			}})
		}
	}

	if g := doc.GuarantorDetails; g != nil {
		for i := range g.Guarantors {
			in := &g.Guarantors[i]
			steps = append(steps, step{table: "guarantor_details", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreateGuarantor(ctx, in.toEntity(k.customerID))
			}})
		}
	}

	if dp := doc.DirectorPartner; dp != nil {
		kind := dp.Type.Ptr()
		for i := range dp.Rows {
			in := &dp.Rows[i]
			steps = append(steps, step{table: "directors_partners", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreateDirectorPartner(ctx, in.toEntity(k.customerID, kind))
			}})
		}
	}

	if ir := doc.IncomeReturns; ir != nil {
		for i := range ir.ITReturns {
			in := &ir.ITReturns[i]
			steps = append(steps, step{table: "income_returns", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreateIncomeReturn(ctx, in.toEntity(k.customerID))
			}})
		}
		for i := range ir.PurchaseSale3Years {
			in := &ir.PurchaseSale3Years[i]
			steps = append(steps, step{table: "purchase_sales", index: i, run: func(ctx context.Context, r uow.Repos, k *keys) error {
				return r.Customers.CreatePurchaseSale(ctx, in.toEntity(k.customerID))
			}})
		}
	}

	if s := doc.SharesAdd; s != nil && s.Present() {
		steps = append(steps, step{table: "shares_add", index: -1, run: func(ctx context.Context, r uow.Repos, k *keys) error {
			return r.Customers.CreateSharesAdd(ctx, s.toEntity(k.customerID))
		}})
	}
	return steps
}

// rowsPerTable counts planned rows by table.
func rowsPerTable(steps []step) map[string]int {
	out := make(map[string]int)
	for _, s := range steps {
		out[s.table]++
	}
	return out
}
