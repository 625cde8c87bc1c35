package customermock

import (
	"context"
	"errors"
	"reflect"
	"testing"

	domain "loan-application-api/internal/domain/customer"
)

func TestRepo_Defaults_AssignParentIDs(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	d := &domain.Details{}
	if err := m.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	p := &domain.PropertyFirm{CustomerID: d.ID}
	if err := m.CreatePropertyFirm(ctx, p); err != nil {
		t.Fatalf("CreatePropertyFirm: %v", err)
	}
	if d.ID != 1 || p.ID != 2 {
		t.Fatalf("ids: want 1,2 got %d,%d", d.ID, p.ID)
	}
	if err := m.CreateFirmDetail(ctx, &domain.FirmDetail{PropertyID: p.ID}); err != nil {
		t.Fatalf("CreateFirmDetail: %v", err)
	}

	want := []string{"customer_details", "property_firm", "firm_details"}
	if !reflect.DeepEqual(m.Calls, want) {
		t.Fatalf("Calls: want %v, got %v", want, m.Calls)
	}
}

func TestRepo_UsesProvidedFuncs(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	m := &Repo{
		CreateGuarantorFn: func(context.Context, *domain.GuarantorDetail) error { return boom },
		CreateSharesAddFn: func(context.Context, *domain.SharesAdd) error { return boom },
	}
	if err := m.CreateGuarantor(ctx, &domain.GuarantorDetail{}); !errors.Is(err, boom) {
		t.Fatalf("CreateGuarantor: want %v, got %v", boom, err)
	}
	if err := m.CreateSharesAdd(ctx, &domain.SharesAdd{}); !errors.Is(err, boom) {
		t.Fatalf("CreateSharesAdd: want %v, got %v", boom, err)
	}
	if err := m.CreatePolicy(ctx, &domain.PolicyDetail{}); err != nil {
		t.Fatalf("CreatePolicy default: want nil, got %v", err)
	}
	if len(m.Calls) != 3 {
		t.Fatalf("Calls: want 3 recorded, got %v", m.Calls)
	}
}
