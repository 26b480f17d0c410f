package service

import "math"

// MonthlyPayment returns the level payment that fully amortizes principal over
// periods payments at monthlyRate (a fraction). A zero rate amortizes
// linearly. The result is always non-negative.
func MonthlyPayment(principal, monthlyRate float64, periods int) float64 {
	var cuota float64

	if monthlyRate == 0 {
		cuota = principal / float64(periods)
	} else {
		n := float64(periods)

		cuota = principal * (monthlyRate /
			(1 - math.Pow(1+monthlyRate, -n)))
	}

	return math.Abs(cuota)
}

// FirstYearInterest simulates the first twelve payments and returns the
// interest paid over them.
func FirstYearInterest(principal, monthlyRate, payment float64) float64 {
	balance := principal
	interest := 0.0

	for month := 0; month < MonthsPerYear; month++ {
		monthInterest := balance * monthlyRate
		balance -= payment - monthInterest
		interest += monthInterest
	}

	return interest
}
