package application

import "github.com/shopspring/decimal"

// NewApplication is the root row of a submission. Its ID is the
// application_id every other row hangs off.
//
// Nullable text columns are pointers: a nil pointer is written as NULL.
type NewApplication struct {
	ID                          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	Branch                      *string         `gorm:"column:branch"`
	CustNo                      *string         `gorm:"column:cust_no"`
	CustName                    *string         `gorm:"column:cust_name"`
	ApplicationSaleDate         *string         `gorm:"column:application_sale_date"`
	AppNo                       *string         `gorm:"column:app_no"`
	BranchInwardNo              *string         `gorm:"column:branch_inward_no"`
	BranchInwardDate            *string         `gorm:"column:branch_inward_date"`
	TypeOfLoan                  *string         `gorm:"column:type_of_loan"`
	AmountOfLoan                decimal.Decimal `gorm:"column:amount_of_loan;type:decimal(18,2);not null"`
	PeriodOfRepayment           int64           `gorm:"column:period_of_repayment;not null"`
	Security                    *string         `gorm:"column:security"`
	CollateralSecurity          *string         `gorm:"column:collateral_security"`
	PurposeOfLoan               *string         `gorm:"column:purpose_of_loan"`
	LoanBoardResolutionNo       *string         `gorm:"column:loan_board_resolution_no"`
	LoanBoardDate               *string         `gorm:"column:loan_board_date"`
	DirectorBoardResolutionNo   *string         `gorm:"column:director_board_resolution_no"`
	DirectorBoardDate           *string         `gorm:"column:director_board_date"`
	LoanFormSubmittedDateBranch *string         `gorm:"column:loan_form_submitted_date_branch"`
	LoanFormSubmittedDateHead   *string         `gorm:"column:loan_form_submitted_date_head"`
	OfficerBoardResolutionNo    *string         `gorm:"column:officer_board_resolution_no"`
}

func (NewApplication) TableName() string { return "new_application" }
