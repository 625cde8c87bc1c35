package submission

import (
	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/domain/customer"
)

func (in *NewApplicationInput) toEntity() *application.NewApplication {
	return &application.NewApplication{
		Branch:                      in.Branch.Ptr(),
		CustNo:                      in.CustNo.Ptr(),
		CustName:                    in.CustName.Ptr(),
		ApplicationSaleDate:         in.ApplicationSaleDate.Ptr(),
		AppNo:                       in.AppNo.Ptr(),
		BranchInwardNo:              in.BranchInwardNo.Ptr(),
		BranchInwardDate:            in.BranchInwardDate.Ptr(),
		TypeOfLoan:                  in.TypeOfLoan.Ptr(),
		AmountOfLoan:                in.AmountOfLoan.Decimal(),
		PeriodOfRepayment:           in.PeriodOfRepayment.Int(),
		Security:                    in.Security.Ptr(),
		CollateralSecurity:          in.CollateralSecurity.Ptr(),
		PurposeOfLoan:               in.PurposeOfLoan.Ptr(),
		LoanBoardResolutionNo:       in.LoanBoardResolutionNo.Ptr(),
		LoanBoardDate:               in.LoanBoardDate.Ptr(),
		DirectorBoardResolutionNo:   in.DirectorBoardResolutionNo.Ptr(),
		DirectorBoardDate:           in.DirectorBoardDate.Ptr(),
		LoanFormSubmittedDateBranch: in.LoanFormSubmittedDateBranch.Ptr(),
		LoanFormSubmittedDateHead:   in.LoanFormSubmittedDateHead.Ptr(),
		OfficerBoardResolutionNo:    in.OfficerBoardResolutionNo.Ptr(),
	}
}

func (in *CustomerDetailsInput) toEntity(applicationID uint64) *customer.Details {
	return &customer.Details{
		ApplicationID: applicationID,
		Dob:           in.Dob.Ptr(),
		ContactNo:     in.Mobile.Or(in.ContactNo).Ptr(),
		Email:         in.Email.Ptr(),
		Address:       in.Address.Ptr(),
		City:          in.City.Ptr(),
		State:         in.State.Ptr(),
		Pin:           in.Pin.Ptr(),
	}
}

func (in *BankAccountInput) toEntity(customerID uint64) *customer.BankDetail {
	return &customer.BankDetail{
		CustomerID:  customerID,
		BankName:    in.BankName.Ptr(),
		BranchName:  in.Branch.Ptr(),
		AccountNo:   in.AccountNo.Ptr(),
		IfscCode:    in.IfscCode.Ptr(),
		AccountType: in.Type.Or(in.AccountType).Ptr(),
	}
}

func (in *PropertyFirmInput) toEntity(customerID uint64) *customer.PropertyFirm {
	return &customer.PropertyFirm{
		CustomerID:              customerID,
		PersonalAssetsOwned:     in.PersonalAssetsOwned.Ptr(),
		PersonalAssetsMortgaged: in.PersonalAssetsMortgaged.Ptr(),
		OtherAssetsShares:       in.OtherAssetsShares.Ptr(),
	}
}

func (in *FirmDetailInput) toEntity(propertyID uint64) *customer.FirmDetail {
	return &customer.FirmDetail{
		PropertyID: propertyID,
		Name:       in.Name.Ptr(),
		Business:   in.Business.Ptr(),
		Relation:   in.Relation.Ptr(),
		BankName:   in.BankName.Ptr(),
	}
}

func (in *PolicyInput) toEntity(customerID uint64) *customer.PolicyDetail {
	return &customer.PolicyDetail{
		CustomerID:  customerID,
		CompanyName: in.CompanyName.Ptr(),
		PolicyNo:    in.PolicyNo.Ptr(),
		Period:      in.Period.Ptr(),
		TotalPaid:   in.TotalPaid.Decimal(),
	}
}

func (in *GuarantorInput) toEntity(customerID uint64) *customer.GuarantorDetail {
	return &customer.GuarantorDetail{
		CustomerID: customerID,
		Branch:     in.Branch.Ptr(),
		Name:       in.Name.Or(in.Whom).Ptr(),
		Amount:     in.Amount.Decimal(),
		Institute:  in.Institute.Ptr(),
	}
}

func (in *DirectorPartnerRowInput) toEntity(customerID uint64, kind *string) *customer.DirectorPartner {
	return &customer.DirectorPartner{
		CustomerID:    customerID,
		Type:          kind,
		Name:          in.Name.Ptr(),
		Dob:           in.Dob.Ptr(),
		Share:         in.Share.Decimal(),
		Qualification: in.Qualification.Ptr(),
	}
}

func (in *ITReturnInput) toEntity(customerID uint64) *customer.IncomeReturn {
	return &customer.IncomeReturn{
		CustomerID:     customerID,
		AccountingYear: in.AccountingYear.Ptr(),
		AyYear:         in.AyYear.Ptr(),
		TaxableIncome:  in.TaxableIncome.Decimal(),
	}
}

func (in *PurchaseSaleInput) toEntity(customerID uint64) *customer.PurchaseSale {
	return &customer.PurchaseSale{
		CustomerID:    customerID,
		FinancialYear: in.FinancialYear.Ptr(),
		PurchaseRs:    in.PurchaseRs.Decimal(),
		SalesRs:       in.SalesRs.Decimal(),
	}
}

func (in *SharesAddInput) toEntity(customerID uint64) *customer.SharesAdd {
	return &customer.SharesAdd{
		CustomerID:      customerID,
		ApplicationType: in.ApplicationType.Ptr(),
		MemberRefNo:     in.MemberRefNo.Ptr(),
		ApplicationNo:   in.ApplicationNo.Ptr(),
		NoOfShares:      in.NoOfShares.Int(),
		ShareValue:      in.ShareValue.Decimal(),
		SavingAccNo:     in.SavingAccNo.Ptr(),
		TotalAmount:     in.TotalAmount.Decimal(),
		Remark:          in.Remark.Ptr(),
		PaymentMode:     in.PaymentMode.Ptr(),
	}
}
