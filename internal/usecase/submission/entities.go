package submission

import (
	"encoding/json"

	"loan-application-api/pkg/coerce"

	"github.com/tidwall/gjson"
)

// Document is the nested form the front-end posts to /api/submit-loan.
// Sections of the wrong JSON shape decode as absent or empty; only
// malformed JSON is a decode error.
type Document struct {
	NewApplication   *NewApplicationInput  `json:"newApplication" validate:"required"`
	CustomerDetails  *CustomerDetailsInput `json:"customerDetails"`
	BankDetails      *BankDetailsInput     `json:"bankDetails"`
	PropertyFirm     *PropertyFirmInput    `json:"propertyFirm"`
	PolicyDetails    *PolicyDetailsInput   `json:"policyDetails"`
	GuarantorDetails *GuarantorsInput      `json:"guarantorDetails"`
	DirectorPartner  *DirectorPartnerInput `json:"directorPartner"`
	IncomeReturns    *IncomeReturnsInput   `json:"incomeReturns"`
	SharesAdd        *SharesAddInput       `json:"sharesAdd"`
}

func (d *Document) UnmarshalJSON(b []byte) error {
	type plain Document
	_, err := decodeObject(b, (*plain)(d))
	return err
}

type NewApplicationInput struct {
	Branch                      coerce.Text   `json:"branch"`
	CustNo                      coerce.Text   `json:"custNo" validate:"required"`
	CustName                    coerce.Text   `json:"custName" validate:"required"`
	ApplicationSaleDate         coerce.Text   `json:"applicationSaleDate"`
	AppNo                       coerce.Text   `json:"appNo" validate:"required"`
	BranchInwardNo              coerce.Text   `json:"branchInwardNo"`
	BranchInwardDate            coerce.Text   `json:"branchInwardDate"`
	TypeOfLoan                  coerce.Text   `json:"typeOfLoan"`
	AmountOfLoan                coerce.Number `json:"amountOfLoan"`
	PeriodOfRepayment           coerce.Number `json:"periodOfRepayment"`
	Security                    coerce.Text   `json:"security"`
	CollateralSecurity          coerce.Text   `json:"collateralSecurity"`
	PurposeOfLoan               coerce.Text   `json:"purposeOfLoan"`
	LoanBoardResolutionNo       coerce.Text   `json:"loanBoardResolutionNo"`
	LoanBoardDate               coerce.Text   `json:"loanBoardDate"`
	DirectorBoardResolutionNo   coerce.Text   `json:"directorBoardResolutionNo"`
	DirectorBoardDate           coerce.Text   `json:"directorBoardDate"`
	LoanFormSubmittedDateBranch coerce.Text   `json:"loanFormSubmittedDateBranch"`
	LoanFormSubmittedDateHead   coerce.Text   `json:"loanFormSubmittedDateHead"`
	OfficerBoardResolutionNo    coerce.Text   `json:"officerBoardResolutionNo"`
}

func (in *NewApplicationInput) UnmarshalJSON(b []byte) error {
	type plain NewApplicationInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

// section counts the keys of a single-row object section. An object with no
// keys is treated like an absent section.
type section struct{ keys int }

func (s section) Present() bool { return s.keys > 0 }

// decodeObject fills v from b when b is a JSON object and returns its key
// count. Any other JSON value leaves v untouched and counts as 0 keys.
func decodeObject(b []byte, v any) (int, error) {
	r := gjson.ParseBytes(b)
	if !r.IsObject() {
		return 0, nil
	}
	n := 0
	r.ForEach(func(_, _ gjson.Result) bool { n++; return true })
	return n, json.Unmarshal(b, v)
}

// list is a list section. A value that is not an array decodes to an empty
// list, and elements that are not objects (null included) are skipped.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	r := gjson.ParseBytes(b)
	if !r.IsArray() {
		return nil
	}
	var err error
	r.ForEach(func(_, el gjson.Result) bool {
		if !el.IsObject() {
			return true
		}
		var v T
		if err = json.Unmarshal([]byte(el.Raw), &v); err != nil {
			return false
		}
		*l = append(*l, v)
		return true
	})
	return err
}

type CustomerDetailsInput struct {
	section
	Dob       coerce.Text `json:"dob"`
	Mobile    coerce.Text `json:"mobile"`
	ContactNo coerce.Text `json:"contactNo"`
	Email     coerce.Text `json:"email"`
	Address   coerce.Text `json:"address"`
	City      coerce.Text `json:"city"`
	State     coerce.Text `json:"state"`
	Pin       coerce.Text `json:"pin"`
}

func (c *CustomerDetailsInput) UnmarshalJSON(b []byte) error {
	type plain CustomerDetailsInput
	n, err := decodeObject(b, (*plain)(c))
	c.keys = n
	return err
}

type BankDetailsInput struct {
	Accounts list[BankAccountInput] `json:"accounts"`
}

func (in *BankDetailsInput) UnmarshalJSON(b []byte) error {
	type plain BankDetailsInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

type BankAccountInput struct {
	section
	BankName    coerce.Text `json:"bankName"`
	Branch      coerce.Text `json:"branch"`
	AccountNo   coerce.Text `json:"accountNo"`
	IfscCode    coerce.Text `json:"ifscCode"`
	Type        coerce.Text `json:"type"`
	AccountType coerce.Text `json:"accountType"`
}

func (a *BankAccountInput) UnmarshalJSON(b []byte) error {
	type plain BankAccountInput
	n, err := decodeObject(b, (*plain)(a))
	a.keys = n
	return err
}

type PropertyFirmInput struct {
	section
	PersonalAssetsOwned     coerce.Text           `json:"personalAssetsOwned"`
	PersonalAssetsMortgaged coerce.Text           `json:"personalAssetsMortgaged"`
	OtherAssetsShares       coerce.Text           `json:"otherAssetsShares"`
	FirmDetails             list[FirmDetailInput] `json:"firmDetails"`
}

func (p *PropertyFirmInput) UnmarshalJSON(b []byte) error {
	type plain PropertyFirmInput
	n, err := decodeObject(b, (*plain)(p))
	p.keys = n
	return err
}

type FirmDetailInput struct {
	Name     coerce.Text `json:"name"`
	Business coerce.Text `json:"business"`
	Relation coerce.Text `json:"relation"`
	BankName coerce.Text `json:"bankName"`
}

type PolicyDetailsInput struct {
	Policies list[PolicyInput] `json:"policies"`
}

func (in *PolicyDetailsInput) UnmarshalJSON(b []byte) error {
	type plain PolicyDetailsInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

type PolicyInput struct {
	CompanyName coerce.Text   `json:"companyName"`
	PolicyNo    coerce.Text   `json:"policyNo"`
	Period      coerce.Text   `json:"period"`
	TotalPaid   coerce.Number `json:"totalPaid"`
}

type GuarantorsInput struct {
	Guarantors list[GuarantorInput] `json:"guarantors"`
}

func (in *GuarantorsInput) UnmarshalJSON(b []byte) error {
	type plain GuarantorsInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

type GuarantorInput struct {
	Branch    coerce.Text   `json:"branch"`
	Name      coerce.Text   `json:"name"`
	Whom      coerce.Text   `json:"whom"`
	Amount    coerce.Number `json:"amount"`
	Institute coerce.Text   `json:"institute"`
}

// DirectorPartnerInput: Type applies to every row.
type DirectorPartnerInput struct {
	Type coerce.Text                   `json:"type"`
	Rows list[DirectorPartnerRowInput] `json:"rows"`
}

func (in *DirectorPartnerInput) UnmarshalJSON(b []byte) error {
	type plain DirectorPartnerInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

type DirectorPartnerRowInput struct {
	Name          coerce.Text   `json:"name"`
	Dob           coerce.Text   `json:"dob"`
	Share         coerce.Number `json:"share"`
	Qualification coerce.Text   `json:"qualification"`
}

type IncomeReturnsInput struct {
	ITReturns          list[ITReturnInput]     `json:"itReturns"`
	PurchaseSale3Years list[PurchaseSaleInput] `json:"purchaseSale3Years"`
}

func (in *IncomeReturnsInput) UnmarshalJSON(b []byte) error {
	type plain IncomeReturnsInput
	_, err := decodeObject(b, (*plain)(in))
	return err
}

type ITReturnInput struct {
	AccountingYear coerce.Text   `json:"accountingYear"`
	AyYear         coerce.Text   `json:"ayYear"`
	TaxableIncome  coerce.Number `json:"taxableIncome"`
}

type PurchaseSaleInput struct {
	FinancialYear coerce.Text   `json:"financialYear"`
	PurchaseRs    coerce.Number `json:"purchaseRs"`
	SalesRs       coerce.Number `json:"salesRs"`
}

type SharesAddInput struct {
	section
	ApplicationType coerce.Text   `json:"applicationType"`
	MemberRefNo     coerce.Text   `json:"memberRefNo"`
	ApplicationNo   coerce.Text   `json:"applicationNo"`
	NoOfShares      coerce.Number `json:"noOfShares"`
	ShareValue      coerce.Number `json:"shareValue"`
	SavingAccNo     coerce.Text   `json:"savingAccNo"`
	TotalAmount     coerce.Number `json:"totalAmount"`
	Remark          coerce.Text   `json:"remark"`
	PaymentMode     coerce.Text   `json:"paymentMode"`
}

func (s *SharesAddInput) UnmarshalJSON(b []byte) error {
	type plain SharesAddInput
	n, err := decodeObject(b, (*plain)(s))
	s.keys = n
	return err
}

type SubmitResult struct {
	ApplicationID uint64 `json:"application_id"`
}
