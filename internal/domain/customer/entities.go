package customer

import "github.com/shopspring/decimal"

// Details is the customer_details row. Its ID (customer_id) is the parent
// key of every dependent row below.
type Details struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	ApplicationID uint64  `gorm:"column:application_id;not null;index"`
	Dob           *string `gorm:"column:dob"`
	ContactNo     *string `gorm:"column:contact_no"`
	Email         *string `gorm:"column:email"`
	Address       *string `gorm:"column:address"`
	City          *string `gorm:"column:city"`
	State         *string `gorm:"column:state"`
	Pin           *string `gorm:"column:pin"`
}

func (Details) TableName() string { return "customer_details" }

type BankDetail struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID  uint64  `gorm:"column:customer_id;not null;index"`
	BankName    *string `gorm:"column:bank_name"`
	BranchName  *string `gorm:"column:branch_name"`
	AccountNo   *string `gorm:"column:account_no"`
	IfscCode    *string `gorm:"column:ifsc_code"`
	AccountType *string `gorm:"column:account_type"`
}

func (BankDetail) TableName() string { return "bank_details" }

// PropertyFirm's ID (property_id) is the parent key of FirmDetail rows.
type PropertyFirm struct {
	ID                      uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID              uint64  `gorm:"column:customer_id;not null;index"`
	PersonalAssetsOwned     *string `gorm:"column:personal_assets_owned"`
	PersonalAssetsMortgaged *string `gorm:"column:personal_assets_mortgaged"`
	OtherAssetsShares       *string `gorm:"column:other_assets_shares"`
}

func (PropertyFirm) TableName() string { return "property_firm" }

type FirmDetail struct {
	ID         uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	PropertyID uint64  `gorm:"column:property_id;not null;index"`
	Name       *string `gorm:"column:name"`
	Business   *string `gorm:"column:business"`
	Relation   *string `gorm:"column:relation"`
	BankName   *string `gorm:"column:bank_name"`
}

func (FirmDetail) TableName() string { return "firm_details" }

type PolicyDetail struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID  uint64          `gorm:"column:customer_id;not null;index"`
	CompanyName *string         `gorm:"column:company_name"`
	PolicyNo    *string         `gorm:"column:policy_no"`
	Period      *string         `gorm:"column:period"`
	TotalPaid   decimal.Decimal `gorm:"column:total_paid;type:decimal(18,2);not null"`
}

func (PolicyDetail) TableName() string { return "policy_details" }

type GuarantorDetail struct {
	ID         uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID uint64          `gorm:"column:customer_id;not null;index"`
	Branch     *string         `gorm:"column:branch"`
	Name       *string         `gorm:"column:name"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null"`
	Institute  *string         `gorm:"column:institute"`
}

func (GuarantorDetail) TableName() string { return "guarantor_details" }

// DirectorPartner carries the section-level type on every row.
type DirectorPartner struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    uint64          `gorm:"column:customer_id;not null;index"`
	Type          *string         `gorm:"column:type"`
	Name          *string         `gorm:"column:name"`
	Dob           *string         `gorm:"column:dob"`
	Share         decimal.Decimal `gorm:"column:share;type:decimal(9,2);not null"`
	Qualification *string         `gorm:"column:qualification"`
}

func (DirectorPartner) TableName() string { return "directors_partners" }

type IncomeReturn struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID     uint64          `gorm:"column:customer_id;not null;index"`
	AccountingYear *string         `gorm:"column:accounting_year"`
	AyYear         *string         `gorm:"column:ay_year"`
	TaxableIncome  decimal.Decimal `gorm:"column:taxable_income;type:decimal(18,2);not null"`
}

func (IncomeReturn) TableName() string { return "income_returns" }

type PurchaseSale struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID    uint64          `gorm:"column:customer_id;not null;index"`
	FinancialYear *string         `gorm:"column:financial_year"`
	PurchaseRs    decimal.Decimal `gorm:"column:purchase_rs;type:decimal(18,2);not null"`
	SalesRs       decimal.Decimal `gorm:"column:sales_rs;type:decimal(18,2);not null"`
}

func (PurchaseSale) TableName() string { return "purchase_sales" }

type SharesAdd struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID      uint64          `gorm:"column:customer_id;not null;index"`
	ApplicationType *string         `gorm:"column:application_type"`
	MemberRefNo     *string         `gorm:"column:member_ref_no"`
	ApplicationNo   *string         `gorm:"column:application_no"`
	NoOfShares      int64           `gorm:"column:no_of_shares;not null"`
	ShareValue      decimal.Decimal `gorm:"column:share_value;type:decimal(18,2);not null"`
	SavingAccNo     *string         `gorm:"column:saving_acc_no"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(18,2);not null"`
	Remark          *string         `gorm:"column:remark"`
	PaymentMode     *string         `gorm:"column:payment_mode"`
}

func (SharesAdd) TableName() string { return "shares_add" }
