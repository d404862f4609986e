package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/coldtco/internal/simulation"
)

// Generate writes human-readable terminal output.
func (r *TextReporter) Generate(data Data) error {
	w := &errWriter{w: r.Writer}
	cur := data.Config.Currency

	w.println("coldtco — Cold Storage Cost Report")
	w.println(strings.Repeat("=", 34))
	w.println("")

	w.printf("Initial data:   %s\n", FormatVolume(float64(data.Inputs.InitialGB)))
	w.printf("Monthly ingest: %s\n", FormatVolume(float64(data.Inputs.MonthlyIngestGB)))
	w.printf("Duration:       %d months\n\n", data.Inputs.Months)

	if len(data.Providers) == 0 {
		w.println("No providers selected.")
		return w.err
	}

	tw := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
	tw2 := &errWriter{w: tw}
	tw2.printf("PROVIDER\tOFFER\tREDUNDANCY\tINITIAL ARCHIVING\tTOTAL OVER %d MONTHS\n", data.Inputs.Months)
	tw2.printf("--------\t-----\t----------\t-----------------\t--------------------\n")
	for _, p := range data.Providers {
		tw2.printf("%s\t%s\t%s\t%s\t%s\n",
			p.Provider.ProviderName, p.Provider.Name, p.Provider.Description,
			FormatAmount(p.InitialCost, cur), FormatAmount(p.TotalCost, cur))
	}
	if tw2.err != nil {
		return tw2.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w.println("")
	writeTextSummary(w, data)

	if data.Config.Breakdown {
		for _, p := range data.Providers {
			if w.err != nil {
				break
			}
			w.println("")
			if err := writeSchedule(r.Writer, w, p, cur); err != nil {
				return err
			}
		}
	}
	return w.err
}

func writeTextSummary(w *errWriter, data Data) {
	w.println("Summary")
	w.println("-------")
	w.printf("Providers compared: %d\n", data.Summary.ProvidersCompared)
	if data.Summary.ProvidersCompared < 2 {
		return
	}
	w.printf("Cheapest:           %s\n", describe(data.Providers, data.Summary.Cheapest, data.Config.Currency))
	w.printf("Most expensive:     %s\n", describe(data.Providers, data.Summary.MostExpensive, data.Config.Currency))
	w.printf("Spread:             %s\n", FormatAmount(data.Summary.Spread, data.Config.Currency))
}

func writeSchedule(out io.Writer, w *errWriter, p simulation.ProviderResult, cur string) error {
	w.printf("%s %s, month by month\n", p.Provider.ProviderName, p.Provider.Name)
	if len(p.Schedule) == 0 {
		w.println("  (no months simulated)")
		return w.err
	}
	if w.err != nil {
		return w.err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	tw2 := &errWriter{w: tw}
	tw2.printf("MONTH\tDATA AT REST\tSTORAGE\tINGESTION\tCUMULATIVE\t\n")
	for _, c := range p.Schedule {
		tw2.printf("%d\t%s\t%s\t%s\t%s\t\n",
			c.Month, FormatVolume(c.DataAtRest),
			FormatAmount(c.Storage, cur), FormatAmount(c.Ingestion, cur), FormatAmount(c.Cumulative, cur))
	}
	if tw2.err != nil {
		return tw2.err
	}
	return tw.Flush()
}

func describe(results []simulation.ProviderResult, id, cur string) string {
	for _, r := range results {
		if r.ID == id {
			return fmt.Sprintf("%s %s (%s)", r.Provider.ProviderName, r.Provider.Name, FormatAmount(r.TotalCost, cur))
		}
	}
	return id
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
