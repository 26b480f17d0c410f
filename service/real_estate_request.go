package service

import (
	"fmt"
	"strings"

	"invest-agent/domain"
)

// ResolvedRealEstate is a validated scenario with every optional input
// resolved. Build it with ResolveRealEstateRequest.
type ResolvedRealEstate struct {
	Request domain.RealEstateRequest

	ITPRate                   float64 // percent
	MortgageLifeInsurance     float64
	RentalProtectionInsurance domain.DerivedValue
	MaintenanceCost           domain.DerivedValue
	VacancyAllowance          domain.DerivedValue
	IRPFTax                   domain.DerivedValue // fraction

	// AnnualInterestRate is the fixed rate, or margin + Euribor for a variable
	// mortgage, in percent.
	AnnualInterestRate   float64
	VariableInterestRate *float64
}

// ResolveRealEstateRequest validates the request and then fills in the
// defaults for absent optional fields. Values supplied by the caller are kept
// as they are.
func ResolveRealEstateRequest(input domain.RealEstateRequest) (ResolvedRealEstate, error) {
	itpRate, err := ITPRate(input.AutonomousCommunity)
	if err != nil {
		return ResolvedRealEstate{}, err
	}
	if err := validateRealEstateRequest(input); err != nil {
		return ResolvedRealEstate{}, err
	}

	annualRent := input.MonthlyRentalIncome * MonthsPerYear

	resolved := ResolvedRealEstate{
		Request: input,
		ITPRate: itpRate,
		RentalProtectionInsurance: domain.Resolve(input.RentalProtectionInsurance, func() float64 {
			if input.HasRentalProtectionInsurance == "Y" {
				return annualRent * RentalProtectionPremiumShare
			}
			return 0
		}),
		MaintenanceCost: domain.Resolve(input.MaintenanceCost, func() float64 {
			return annualRent * DefaultMaintenanceShare
		}),
		VacancyAllowance: domain.Resolve(input.VacancyAllowance, func() float64 {
			return annualRent * DefaultVacancyShare
		}),
		IRPFTax: domain.Resolve(input.IRPFTax, func() float64 {
			return IRPFRate(input.AnnualGrossSalary)
		}),
	}

	if input.MortgageLifeInsurance != nil {
		resolved.MortgageLifeInsurance = *input.MortgageLifeInsurance
	}

	switch input.MortgageType {
	case domain.MortgageVariable:
		variable := *input.MortgageMargin + *input.EuriborRate
		resolved.VariableInterestRate = &variable
		resolved.AnnualInterestRate = variable
	case domain.MortgageFixed:
		resolved.AnnualInterestRate = *input.FixedInterestRate
	}

	return resolved, nil
}

func validateRealEstateRequest(input domain.RealEstateRequest) error {
	if input.HasRentalProtectionInsurance != "Y" && input.HasRentalProtectionInsurance != "N" {
		return fmt.Errorf("%w: has_rental_protection_insurance %q, use Y or N",
			domain.ErrInvalidFlag, input.HasRentalProtectionInsurance)
	}

	if input.LoanToValueRatio < 0 || input.LoanToValueRatio > 1 {
		return fmt.Errorf("%w: loan_to_value_ratio must be between 0 and 1, got %v",
			domain.ErrOutOfRange, input.LoanToValueRatio)
	}
	if input.LoanTermYears < MinLoanTermYears || input.LoanTermYears > MaxLoanTermYears {
		return fmt.Errorf("%w: loan_term_years must be between %d and %d, got %d",
			domain.ErrOutOfRange, MinLoanTermYears, MaxLoanTermYears, input.LoanTermYears)
	}

	var missing []string
	switch input.MortgageType {
	case domain.MortgageVariable:
		if input.MortgageMargin == nil {
			missing = append(missing, "mortgage_margin")
		}
		if input.EuriborRate == nil {
			missing = append(missing, "euribor_rate")
		}
	case domain.MortgageFixed:
		if input.FixedInterestRate == nil {
			missing = append(missing, "fixed_interest_rate")
		}
	default:
		return fmt.Errorf("%w: %q, use %s or %s",
			domain.ErrInvalidMortgageType, string(input.MortgageType), domain.MortgageFixed, domain.MortgageVariable)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s mortgage requires %s",
			domain.ErrMissingField, input.MortgageType, strings.Join(missing, " and "))
	}

	return nil
}
