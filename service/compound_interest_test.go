package service

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"invest-agent/domain"
)

func TestProjectCompoundInterest_KnownValue(t *testing.T) {

	input := domain.CompoundInterestRequest{
		InitialBalance:   865,
		PeriodicDeposit:  123,
		DepositFrequency: domain.Monthly,
		InterestRate:     7.5,
		Years:            12,
	}

	years, err := ProjectCompoundInterest(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(years) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(years))
	}

	final := math.Round(years[len(years)-1].Balance*100) / 100
	if final != 30711.21 {
		t.Errorf("expected final balance 30711.21, got %.2f", final)
	}

	if years[11].TotalDeposit != 123*12*12 {
		t.Errorf("expected total deposit %.2f, got %.2f", 123.0*12*12, years[11].TotalDeposit)
	}
}

func TestProjectCompoundInterest_ZeroYears(t *testing.T) {

	years, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   1000,
		DepositFrequency: domain.Monthly,
		InterestRate:     5,
		Years:            0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(years) != 0 {
		t.Errorf("expected empty projection, got %d rows", len(years))
	}
}

func TestProjectCompoundInterest_NoDepositNoRate(t *testing.T) {

	years, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   2500,
		DepositFrequency: domain.Weekly,
		Years:            5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, y := range years {
		if y.Balance != 2500 || y.InitialBalance != 2500 {
			t.Errorf("year %d: expected balance 2500, got %.2f", y.Year, y.Balance)
		}
		if y.TotalInterest != 0 || y.TotalDeposit != 0 {
			t.Errorf("year %d: expected no interest and no deposits", y.Year)
		}
	}
}

func TestProjectCompoundInterest_AnnualGrowth(t *testing.T) {

	years, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   1000,
		DepositFrequency: domain.Annually,
		InterestRate:     10,
		Years:            2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, "year 1 balance", years[0].Balance, 1100)
	assertClose(t, "year 2 balance", years[1].Balance, 1210)
	assertClose(t, "year 2 interest", years[1].TotalInterest, 210)
}

func TestProjectCompoundInterest_DepositLandsAfterInterest(t *testing.T) {

	// Un único periodo anual: el depósito no genera interés el primer año
	years, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   0,
		PeriodicDeposit:  100,
		DepositFrequency: domain.Annually,
		InterestRate:     10,
		Years:            2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, "year 1 balance", years[0].Balance, 100)
	assertClose(t, "year 2 balance", years[1].Balance, 210)
}

func TestProjectCompoundInterest_Monotonic(t *testing.T) {

	for _, freq := range domain.DepositFrequencies {
		t.Run(string(freq), func(t *testing.T) {
			input := domain.CompoundInterestRequest{
				InitialBalance:   1000,
				PeriodicDeposit:  50,
				DepositFrequency: freq,
				InterestRate:     4,
			}

			var previous []domain.YearSummary
			for y := 1; y <= 10; y++ {
				input.Years = y
				years, err := ProjectCompoundInterest(input)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(years) != y {
					t.Fatalf("expected %d rows, got %d", y, len(years))
				}
				if previous != nil {
					if !reflect.DeepEqual(years[:y-1], previous) {
						t.Fatalf("adding a year changed earlier rows")
					}
					if years[y-1].Balance < previous[y-2].Balance {
						t.Errorf("balance decreased in year %d", y)
					}
				}
				previous = years
			}
		})
	}
}

func TestProjectCompoundInterest_NegativeRateShrinks(t *testing.T) {

	years, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   1000,
		DepositFrequency: domain.Monthly,
		InterestRate:     -2,
		Years:            3,
	})
	if err != nil {
		t.Fatalf("negative rates should be accepted: %v", err)
	}

	if years[2].Balance >= 1000 {
		t.Errorf("expected balance below 1000, got %.2f", years[2].Balance)
	}
	if years[2].TotalInterest >= 0 {
		t.Errorf("expected negative accumulated interest, got %.2f", years[2].TotalInterest)
	}
}

func TestProjectCompoundInterest_Idempotent(t *testing.T) {

	input := domain.CompoundInterestRequest{
		InitialBalance:   3000,
		PeriodicDeposit:  75,
		DepositFrequency: domain.Weekly,
		InterestRate:     6.25,
		Years:            15,
	}

	first, _ := ProjectCompoundInterest(input)
	second, _ := ProjectCompoundInterest(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical projections for identical input")
	}
}

func TestProjectCompoundInterest_InvalidFrequency(t *testing.T) {

	_, err := ProjectCompoundInterest(domain.CompoundInterestRequest{
		InitialBalance:   1000,
		DepositFrequency: "daily",
		InterestRate:     5,
		Years:            1,
	})

	if !errors.Is(err, domain.ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
	for _, want := range []string{"daily", "weekly", "monthly", "annually"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidateCompoundInterestRequest(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CompoundInterestRequest
		want  error
	}{
		{
			name:  "valid",
			input: domain.CompoundInterestRequest{InitialBalance: 1, DepositFrequency: domain.Monthly, Years: 1},
		},
		{
			name:  "negative balance",
			input: domain.CompoundInterestRequest{InitialBalance: -1, DepositFrequency: domain.Monthly, Years: 1},
			want:  domain.ErrOutOfRange,
		},
		{
			name:  "negative deposit",
			input: domain.CompoundInterestRequest{PeriodicDeposit: -1, DepositFrequency: domain.Monthly, Years: 1},
			want:  domain.ErrOutOfRange,
		},
		{
			name:  "negative years",
			input: domain.CompoundInterestRequest{DepositFrequency: domain.Monthly, Years: -1},
			want:  domain.ErrOutOfRange,
		},
		{
			name:  "too many years",
			input: domain.CompoundInterestRequest{DepositFrequency: domain.Monthly, Years: MaxProjectionYears + 1},
			want:  domain.ErrOutOfRange,
		},
		{
			name:  "empty frequency",
			input: domain.CompoundInterestRequest{Years: 1},
			want:  domain.ErrInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCompoundInterestRequest(tt.input)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
