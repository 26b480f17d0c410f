package domain

import (
	"fmt"
	"strings"
)

type DepositFrequency string

const (
	Weekly   DepositFrequency = "weekly"
	Monthly  DepositFrequency = "monthly"
	Annually DepositFrequency = "annually"
)

var periodsPerYear = map[DepositFrequency]int{
	Weekly:   52,
	Monthly:  12,
	Annually: 1,
}

// DepositFrequencies lists the accepted frequencies in display order.
var DepositFrequencies = []DepositFrequency{Weekly, Monthly, Annually}

// PeriodsPerYear returns the number of compounding/deposit sub-periods in a
// year for f.
func (f DepositFrequency) PeriodsPerYear() (int, error) {
	n, ok := periodsPerYear[f]
	if !ok {
		names := make([]string, len(DepositFrequencies))
		for i, df := range DepositFrequencies {
			names[i] = string(df)
		}
		return 0, fmt.Errorf("%w: %q, use one of %s",
			ErrInvalidFrequency, string(f), strings.Join(names, ", "))
	}
	return n, nil
}

type CompoundInterestRequest struct {
	InitialBalance   float64          `json:"initial_balance"`
	PeriodicDeposit  float64          `json:"periodic_deposit"`
	DepositFrequency DepositFrequency `json:"deposit_frequency"`
	InterestRate     float64          `json:"interest_rate"` // annual, in percent
	Years            int              `json:"years"`
}

type YearSummary struct {
	Year           int     `json:"year"`
	InitialBalance float64 `json:"initial_balance"`
	TotalDeposit   float64 `json:"total_deposit"`
	TotalInterest  float64 `json:"total_interest"`
	Balance        float64 `json:"balance"`
}

type CompoundInterestResult struct {
	Years []YearSummary `json:"years"`
}

// Final returns the summary of the last projected year.
func (r CompoundInterestResult) Final() (YearSummary, bool) {
	if len(r.Years) == 0 {
		return YearSummary{}, false
	}
	return r.Years[len(r.Years)-1], true
}
