package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"invest-agent/domain"
)

var ratioFields = map[string]bool{
	"gross_rental_yield":            true,
	"net_rental_yield_conservative": true,
	"net_rental_yield_optimistic":   true,
	"roce_conservative":             true,
	"roce_optimistic":               true,
}

// WriteCompoundInterest prints one line per projected year.
func WriteCompoundInterest(w io.Writer, result domain.CompoundInterestResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tInitial balance\tTotal deposits\tTotal interest\tBalance\t")
	for _, y := range result.Years {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			y.Year,
			Round(y.InitialBalance, 2),
			Round(y.TotalDeposit, 2),
			Round(y.TotalInterest, 2),
			Round(y.Balance, 2),
		)
	}
	return tw.Flush()
}

// WriteRealEstate prints the five analysis groups. Ratios are shown as
// percentages.
func WriteRealEstate(w io.Writer, result domain.RealEstateResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, group := range result.Groups() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, group.Category)
		fmt.Fprintln(tw, strings.Repeat("-", len(group.Category)))
		for _, f := range group.Fields {
			if ratioFields[f.Name] {
				fmt.Fprintf(tw, "%s\t%.2f%%\n", f.Name, Round(f.Value*100, 2))
				continue
			}
			fmt.Fprintf(tw, "%s\t%.2f\n", f.Name, Round(f.Value, 2))
		}
	}
	return tw.Flush()
}
