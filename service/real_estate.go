package service

import (
	"math"

	"invest-agent/domain"
)

// AnalyzeRealEstate resolves the request and runs the profitability analysis.
func AnalyzeRealEstate(input domain.RealEstateRequest) (domain.RealEstateResult, error) {
	resolved, err := ResolveRealEstateRequest(input)
	if err != nil {
		return domain.RealEstateResult{}, err
	}
	return resolved.Analyze(), nil
}

// Analyze derives acquisition, financing, tax, yield and cash flow figures
// for the scenario. Nothing is rounded; ratios over a zero denominator are
// returned as the resulting Inf or NaN.
func (r ResolvedRealEstate) Analyze() domain.RealEstateResult {
	in := r.Request
	price := in.PurchasePrice

	// Coste de adquisición
	itpAmount := price * (r.ITPRate / 100)
	totalAcquisitionCost := price + itpAmount + in.NotaryCost + in.RegistryCost +
		in.RenovationCost + in.AgencyCommission + in.MortgageManagementCost + in.MortgageAppraisalCost

	annualGrossRentalIncome := in.MonthlyRentalIncome * MonthsPerYear

	// Financiación
	loanAmount := price * in.LoanToValueRatio
	downPayment := price - loanAmount

	monthlyRate := r.AnnualInterestRate / 100 / MonthsPerYear
	periods := in.LoanTermYears * MonthsPerYear
	monthlyPayment := MonthlyPayment(loanAmount, monthlyRate, periods)
	annualPayment := monthlyPayment * MonthsPerYear
	firstYearInterest := FirstYearInterest(loanAmount, monthlyRate, monthlyPayment)

	maintenance := r.MaintenanceCost.Value
	vacancy := r.VacancyAllowance.Value

	totalOperatingExpenses := in.HomeownersAssociationFee +
		maintenance +
		in.PropertyInsurance +
		r.MortgageLifeInsurance +
		r.RentalProtectionInsurance.Value +
		in.PropertyTaxIBI +
		firstYearInterest +
		vacancy

	netOperatingIncome := annualGrossRentalIncome - totalOperatingExpenses

	// IRPF sobre el rendimiento neto; las pérdidas no tributan
	depreciation := DepreciationRate * price
	taxableRentalIncome := netOperatingIncome - depreciation
	incomeTax := math.Max(0, taxableRentalIncome) * r.IRPFTax.Value
	netIncomeAfterTaxes := netOperatingIncome - incomeTax

	grossYield := annualGrossRentalIncome / totalAcquisitionCost
	netYieldConservative := netIncomeAfterTaxes / totalAcquisitionCost
	netYieldOptimistic := (netIncomeAfterTaxes + vacancy + maintenance) / totalAcquisitionCost

	annualPrincipal := annualPayment - firstYearInterest
	cashFlowConservative := netIncomeAfterTaxes - annualPrincipal
	cashFlowOptimistic := cashFlowConservative + vacancy + maintenance

	totalUpfrontCost := totalAcquisitionCost - loanAmount
	roceConservative := cashFlowConservative / totalUpfrontCost
	roceOptimistic := cashFlowOptimistic / totalUpfrontCost

	return domain.RealEstateResult{
		Acquisition: domain.AcquisitionAnalysis{
			PurchasePrice:        price,
			ITPTaxAmount:         itpAmount,
			TotalAcquisitionCost: totalAcquisitionCost,
			DownPayment:          downPayment,
			MortgageLoanAmount:   loanAmount,
		},
		Income: domain.IncomeAndExpenses{
			AnnualGrossRentalIncome:      annualGrossRentalIncome,
			FirstYearInterestExpense:     firstYearInterest,
			TotalAnnualOperatingExpenses: totalOperatingExpenses,
			NetOperatingIncome:           netOperatingIncome,
			IncomeTaxOnRental:            incomeTax,
			NetIncomeAfterTaxes:          netIncomeAfterTaxes,
		},
		Mortgage: domain.MortgageFinancing{
			MonthlyMortgagePayment:   monthlyPayment,
			AnnualMortgagePayment:    annualPayment,
			FirstYearInterestExpense: firstYearInterest,
			AnnualPrincipalPayment:   annualPrincipal,
		},
		Profitability: domain.ProfitabilityMetrics{
			GrossRentalYield:           grossYield,
			NetRentalYieldConservative: netYieldConservative,
			NetRentalYieldOptimistic:   netYieldOptimistic,
			AnnualCashFlowConservative: cashFlowConservative,
			AnnualCashFlowOptimistic:   cashFlowOptimistic,
			ROCEConservative:           roceConservative,
			ROCEOptimistic:             roceOptimistic,
		},
		CashFlow: domain.CashFlowAnalysis{
			AnnualCashFlowConservative: cashFlowConservative,
			AnnualCashFlowOptimistic:   cashFlowOptimistic,
		},
	}
}
