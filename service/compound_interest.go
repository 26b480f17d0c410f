package service

import (
	"fmt"

	"invest-agent/domain"
)

// ValidateCompoundInterestRequest checks the request before any arithmetic
// runs. Negative interest rates are accepted.
func ValidateCompoundInterestRequest(input domain.CompoundInterestRequest) error {
	if _, err := input.DepositFrequency.PeriodsPerYear(); err != nil {
		return err
	}
	if input.InitialBalance < 0 {
		return fmt.Errorf("%w: initial_balance must be >= 0, got %.2f", domain.ErrOutOfRange, input.InitialBalance)
	}
	if input.PeriodicDeposit < 0 {
		return fmt.Errorf("%w: periodic_deposit must be >= 0, got %.2f", domain.ErrOutOfRange, input.PeriodicDeposit)
	}
	if input.Years < 0 {
		return fmt.Errorf("%w: years must be >= 0, got %d", domain.ErrOutOfRange, input.Years)
	}
	if input.Years > MaxProjectionYears {
		return fmt.Errorf("%w: years exceeds the maximum of %d", domain.ErrOutOfRange, MaxProjectionYears)
	}
	return nil
}

// ProjectCompoundInterest simulates periodic compounding with a deposit at
// the end of every sub-period and returns one summary per elapsed year.
//
// Within a sub-period interest accrues on the balance first and the deposit
// lands afterwards, so a deposit starts earning in the following sub-period.
func ProjectCompoundInterest(input domain.CompoundInterestRequest) ([]domain.YearSummary, error) {
	if err := ValidateCompoundInterestRequest(input); err != nil {
		return nil, err
	}

	n, _ := input.DepositFrequency.PeriodsPerYear()
	rate := input.InterestRate / 100
	periodRate := rate / float64(n)

	years := make([]domain.YearSummary, 0, input.Years)
	balance := input.InitialBalance
	accDeposit := 0.0
	accInterest := 0.0

	for year := 1; year <= input.Years; year++ {
		for period := 0; period < n; period++ {
			interest := balance * periodRate
			balance = balance + input.PeriodicDeposit + interest
			accDeposit += input.PeriodicDeposit
			accInterest += interest
		}

		years = append(years, domain.YearSummary{
			Year:           year,
			InitialBalance: input.InitialBalance,
			TotalDeposit:   accDeposit,
			TotalInterest:  accInterest,
			Balance:        balance,
		})
	}

	return years, nil
}
