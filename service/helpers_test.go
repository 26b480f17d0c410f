package service

import (
	"math"
	"testing"

	"invest-agent/domain"
)

func ptr(v float64) *float64 {
	return &v
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %.10f, want %.10f", name, got, want)
	}
}

// baseRealEstateRequest is an interest-free scenario whose figures can be
// worked out by hand.
func baseRealEstateRequest() domain.RealEstateRequest {
	return domain.RealEstateRequest{
		PurchasePrice:                100000,
		AutonomousCommunity:          "Comunidad de Madrid",
		NotaryCost:                   1000,
		RegistryCost:                 500,
		MonthlyRentalIncome:          1000,
		HomeownersAssociationFee:     600,
		PropertyInsurance:            200,
		PropertyTaxIBI:               400,
		HasRentalProtectionInsurance: "N",
		AnnualGrossSalary:            30000,
		LoanToValueRatio:             0.8,
		LoanTermYears:                20,
		MortgageType:                 domain.MortgageFixed,
		FixedInterestRate:            ptr(0),
	}
}
