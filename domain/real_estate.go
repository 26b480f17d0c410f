package domain

type AutonomousCommunity string

type MortgageType string

const (
	MortgageFixed    MortgageType = "fixed"
	MortgageVariable MortgageType = "variable"
)

// RealEstateRequest describes one buy-to-let scenario. Pointer fields are
// optional; nil means "derive it" (or zero for the insurance premiums).
type RealEstateRequest struct {
	// Acquisition
	PurchasePrice          float64             `json:"purchase_price"`
	AutonomousCommunity    AutonomousCommunity `json:"autonomous_community"`
	NotaryCost             float64             `json:"notary_cost"`
	RegistryCost           float64             `json:"registry_cost"`
	RenovationCost         float64             `json:"renovation_cost"`
	AgencyCommission       float64             `json:"agency_commission"`
	MortgageManagementCost float64             `json:"mortgage_management_cost"`
	MortgageAppraisalCost  float64             `json:"mortgage_appraisal_cost"`

	// Income
	MonthlyRentalIncome float64 `json:"monthly_rental_income"`

	// Annual operating costs
	HomeownersAssociationFee     float64  `json:"homeowners_association_fee"`
	PropertyInsurance            float64  `json:"property_insurance"`
	MortgageLifeInsurance        *float64 `json:"mortgage_life_insurance,omitempty"`
	PropertyTaxIBI               float64  `json:"property_tax_ibi"`
	HasRentalProtectionInsurance string   `json:"has_rental_protection_insurance"` // "Y" or "N"
	RentalProtectionInsurance    *float64 `json:"rental_protection_insurance,omitempty"`
	MaintenanceCost              *float64 `json:"maintenance_cost,omitempty"`
	VacancyAllowance             *float64 `json:"vacancy_allowance,omitempty"`

	// Owner tax context
	AnnualGrossSalary float64  `json:"annual_gross_salary"`
	IRPFTax           *float64 `json:"irpf_tax,omitempty"` // fraction, 0.30 = 30%

	// Financing
	LoanToValueRatio  float64      `json:"loan_to_value_ratio"`
	LoanTermYears     int          `json:"loan_term_years"`
	MortgageType      MortgageType `json:"mortgage_type"`
	FixedInterestRate *float64     `json:"fixed_interest_rate,omitempty"` // percent
	MortgageMargin    *float64     `json:"mortgage_margin,omitempty"`     // percent
	EuriborRate       *float64     `json:"euribor_rate,omitempty"`        // percent
}

type AcquisitionAnalysis struct {
	PurchasePrice        float64 `json:"purchase_price"`
	ITPTaxAmount         float64 `json:"itp_tax_amount"`
	TotalAcquisitionCost float64 `json:"total_acquisition_cost"`
	DownPayment          float64 `json:"down_payment"`
	MortgageLoanAmount   float64 `json:"mortgage_loan_amount"`
}

type IncomeAndExpenses struct {
	AnnualGrossRentalIncome      float64 `json:"annual_gross_rental_income"`
	FirstYearInterestExpense     float64 `json:"first_year_interest_expense"`
	TotalAnnualOperatingExpenses float64 `json:"total_annual_operating_expenses"`
	NetOperatingIncome           float64 `json:"net_operating_income"`
	IncomeTaxOnRental            float64 `json:"income_tax_on_rental"`
	NetIncomeAfterTaxes          float64 `json:"net_income_after_taxes"`
}

type MortgageFinancing struct {
	MonthlyMortgagePayment   float64 `json:"monthly_mortgage_payment"`
	AnnualMortgagePayment    float64 `json:"annual_mortgage_payment"`
	FirstYearInterestExpense float64 `json:"first_year_interest_expense"`
	AnnualPrincipalPayment   float64 `json:"annual_principal_payment"`
}

type ProfitabilityMetrics struct {
	GrossRentalYield           float64 `json:"gross_rental_yield"`
	NetRentalYieldConservative float64 `json:"net_rental_yield_conservative"`
	NetRentalYieldOptimistic   float64 `json:"net_rental_yield_optimistic"`
	AnnualCashFlowConservative float64 `json:"annual_cash_flow_conservative"`
	AnnualCashFlowOptimistic   float64 `json:"annual_cash_flow_optimistic"`
	ROCEConservative           float64 `json:"roce_conservative"`
	ROCEOptimistic             float64 `json:"roce_optimistic"`
}

type CashFlowAnalysis struct {
	AnnualCashFlowConservative float64 `json:"annual_cash_flow_conservative"`
	AnnualCashFlowOptimistic   float64 `json:"annual_cash_flow_optimistic"`
}

type RealEstateResult struct {
	Acquisition   AcquisitionAnalysis  `json:"property_acquisition_analysis"`
	Income        IncomeAndExpenses    `json:"annual_income_operating_expenses"`
	Mortgage      MortgageFinancing    `json:"mortgage_financing_details"`
	Profitability ProfitabilityMetrics `json:"profitability_metrics"`
	CashFlow      CashFlowAnalysis     `json:"cash_flow_analysis"`
}

type Field struct {
	Name  string
	Value float64
}

type AnalysisGroup struct {
	Category string
	Fields   []Field
}

// Groups flattens the result into its five labeled categories, in report
// order.
func (r RealEstateResult) Groups() []AnalysisGroup {
	return []AnalysisGroup{
		{
			Category: "Property Acquisition Analysis",
			Fields: []Field{
				{"purchase_price", r.Acquisition.PurchasePrice},
				{"itp_tax_amount", r.Acquisition.ITPTaxAmount},
				{"total_acquisition_cost", r.Acquisition.TotalAcquisitionCost},
				{"down_payment", r.Acquisition.DownPayment},
				{"mortgage_loan_amount", r.Acquisition.MortgageLoanAmount},
			},
		},
		{
			Category: "Annual Income & Operating Expenses",
			Fields: []Field{
				{"annual_gross_rental_income", r.Income.AnnualGrossRentalIncome},
				{"first_year_interest_expense", r.Income.FirstYearInterestExpense},
				{"total_annual_operating_expenses", r.Income.TotalAnnualOperatingExpenses},
				{"net_operating_income", r.Income.NetOperatingIncome},
				{"income_tax_on_rental", r.Income.IncomeTaxOnRental},
				{"net_income_after_taxes", r.Income.NetIncomeAfterTaxes},
			},
		},
		{
			Category: "Mortgage Financing Details",
			Fields: []Field{
				{"monthly_mortgage_payment", r.Mortgage.MonthlyMortgagePayment},
				{"annual_mortgage_payment", r.Mortgage.AnnualMortgagePayment},
				{"first_year_interest_expense", r.Mortgage.FirstYearInterestExpense},
				{"annual_principal_payment", r.Mortgage.AnnualPrincipalPayment},
			},
		},
		{
			Category: "Profitability Metrics",
			Fields: []Field{
				{"gross_rental_yield", r.Profitability.GrossRentalYield},
				{"net_rental_yield_conservative", r.Profitability.NetRentalYieldConservative},
				{"net_rental_yield_optimistic", r.Profitability.NetRentalYieldOptimistic},
				{"annual_cash_flow_conservative", r.Profitability.AnnualCashFlowConservative},
				{"annual_cash_flow_optimistic", r.Profitability.AnnualCashFlowOptimistic},
				{"roce_conservative", r.Profitability.ROCEConservative},
				{"roce_optimistic", r.Profitability.ROCEOptimistic},
			},
		},
		{
			Category: "Cash Flow Analysis",
			Fields: []Field{
				{"annual_cash_flow_conservative", r.CashFlow.AnnualCashFlowConservative},
				{"annual_cash_flow_optimistic", r.CashFlow.AnnualCashFlowOptimistic},
			},
		},
	}
}
