// Package report formats calculator output for people: currency rounding and
// plain-text tables. The calculators themselves never round.
package report

import (
	"math"

	"github.com/shopspring/decimal"

	"invest-agent/domain"
)

// Round rounds v to places decimals, half away from zero. Inf and NaN are
// returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundCompoundInterest returns a copy of result with every amount rounded.
func RoundCompoundInterest(result domain.CompoundInterestResult, places int32) domain.CompoundInterestResult {
	years := make([]domain.YearSummary, len(result.Years))
	for i, y := range result.Years {
		years[i] = domain.YearSummary{
			Year:           y.Year,
			InitialBalance: Round(y.InitialBalance, places),
			TotalDeposit:   Round(y.TotalDeposit, places),
			TotalInterest:  Round(y.TotalInterest, places),
			Balance:        Round(y.Balance, places),
		}
	}
	return domain.CompoundInterestResult{Years: years}
}

// RoundRealEstate returns a copy of result with monetary fields rounded to
// places decimals. Yields and ROCE are ratios and keep places+2 decimals so
// that they still read as percentages with the same precision.
func RoundRealEstate(result domain.RealEstateResult, places int32) domain.RealEstateResult {
	out := result
	money := []*float64{
		&out.Acquisition.PurchasePrice,
		&out.Acquisition.ITPTaxAmount,
		&out.Acquisition.TotalAcquisitionCost,
		&out.Acquisition.DownPayment,
		&out.Acquisition.MortgageLoanAmount,
		&out.Income.AnnualGrossRentalIncome,
		&out.Income.FirstYearInterestExpense,
		&out.Income.TotalAnnualOperatingExpenses,
		&out.Income.NetOperatingIncome,
		&out.Income.IncomeTaxOnRental,
		&out.Income.NetIncomeAfterTaxes,
		&out.Mortgage.MonthlyMortgagePayment,
		&out.Mortgage.AnnualMortgagePayment,
		&out.Mortgage.FirstYearInterestExpense,
		&out.Mortgage.AnnualPrincipalPayment,
		&out.Profitability.AnnualCashFlowConservative,
		&out.Profitability.AnnualCashFlowOptimistic,
		&out.CashFlow.AnnualCashFlowConservative,
		&out.CashFlow.AnnualCashFlowOptimistic,
	}
	for _, v := range money {
		*v = Round(*v, places)
	}

	ratios := []*float64{
		&out.Profitability.GrossRentalYield,
		&out.Profitability.NetRentalYieldConservative,
		&out.Profitability.NetRentalYieldOptimistic,
		&out.Profitability.ROCEConservative,
		&out.Profitability.ROCEOptimistic,
	}
	for _, v := range ratios {
		*v = Round(*v, places+2)
	}
	return out
}
