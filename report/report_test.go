package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"invest-agent/domain"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{1.005, 2, 1.01},
		{-2.345, 2, -2.35},
		{30711.2149, 2, 30711.21},
		{0.123456, 4, 0.1235},
		{100, 0, 100},
	}

	for _, tt := range tests {
		if got := Round(tt.in, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestRound_NonFinite(t *testing.T) {

	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestRoundRealEstate(t *testing.T) {

	var result domain.RealEstateResult
	result.Acquisition.ITPTaxAmount = 9000.4567
	result.Profitability.GrossRentalYield = 0.0712345
	result.CashFlow.AnnualCashFlowOptimistic = -12.345

	rounded := RoundRealEstate(result, 2)

	if rounded.Acquisition.ITPTaxAmount != 9000.46 {
		t.Errorf("itp = %v, want 9000.46", rounded.Acquisition.ITPTaxAmount)
	}
	if rounded.Profitability.GrossRentalYield != 0.0712 {
		t.Errorf("gross yield = %v, want 0.0712", rounded.Profitability.GrossRentalYield)
	}
	if rounded.CashFlow.AnnualCashFlowOptimistic != -12.35 {
		t.Errorf("cash flow = %v, want -12.35", rounded.CashFlow.AnnualCashFlowOptimistic)
	}
	if result.Acquisition.ITPTaxAmount != 9000.4567 {
		t.Errorf("input should not be modified")
	}
}

func TestWriteCompoundInterest(t *testing.T) {

	result := domain.CompoundInterestResult{Years: []domain.YearSummary{
		{Year: 1, InitialBalance: 865, TotalDeposit: 1476, TotalInterest: 101.234, Balance: 2442.234},
	}}

	var buf bytes.Buffer
	if err := WriteCompoundInterest(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Balance", "2442.23", "101.23", "1476.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRealEstate(t *testing.T) {

	var result domain.RealEstateResult
	result.Acquisition.PurchasePrice = 150000
	result.Profitability.GrossRentalYield = 0.0625

	var buf bytes.Buffer
	if err := WriteRealEstate(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, group := range result.Groups() {
		if !strings.Contains(out, group.Category) {
			t.Errorf("output missing group %q", group.Category)
		}
	}
	if !strings.Contains(out, "150000.00") {
		t.Errorf("output missing purchase price:\n%s", out)
	}
	if !strings.Contains(out, "6.25%") {
		t.Errorf("output missing gross yield as a percentage:\n%s", out)
	}
}
