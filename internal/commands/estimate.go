package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/coldtco/internal/config"
	"github.com/ppiankov/coldtco/internal/report"
	"github.com/ppiankov/coldtco/internal/simulation"
)

const (
	defaultInitialGB = 500
	defaultMonthlyGB = 50
	defaultMonths    = 36
	defaultCurrency  = "€HT"
	defaultFormat    = "text"
)

var estimateFlags struct {
	initialGB  int
	monthlyGB  int
	months     int
	providers  []string
	breakdown  bool
	currency   string
	format     string
	outputFile string
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compare cold storage total cost of ownership",
	Long: `Simulate storing an initial volume of data and ingesting a fixed volume every
month, then report the initial archiving cost and the total cost over the period
for each provider.

Charges accrue monthly: storage is billed on the volume held at the start of the
month and each ingestion is billed on its own volume. Volumes below a provider's
free tier are not charged.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().IntVar(&estimateFlags.initialGB, "initial", defaultInitialGB, "Initial volume of data to archive (GB, 0-10000)")
	estimateCmd.Flags().IntVar(&estimateFlags.monthlyGB, "monthly", defaultMonthlyGB, "Volume of data archived every month (GB, 0-500)")
	estimateCmd.Flags().IntVar(&estimateFlags.months, "months", defaultMonths, "Simulation length in months (0-120)")
	estimateCmd.Flags().StringSliceVar(&estimateFlags.providers, "provider", nil, "Providers to compare (comma-separated, default: all)")
	estimateCmd.Flags().BoolVar(&estimateFlags.breakdown, "breakdown", false, "Include a month-by-month breakdown")
	estimateCmd.Flags().StringVar(&estimateFlags.currency, "currency", defaultCurrency, "Currency label appended to amounts")
	estimateCmd.Flags().StringVar(&estimateFlags.format, "format", defaultFormat, "Output format: text, json")
	estimateCmd.Flags().StringVarP(&estimateFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	log := zap.L()

	// Load config and apply defaults
	cfg, err := config.Load(".")
	if err != nil {
		log.Warn("Failed to load config file", zap.Error(err))
		cfg = config.Config{}
	}
	applyEstimateConfigDefaults(cfg)

	in := estimateInput{
		InitialGB:       estimateFlags.initialGB,
		MonthlyIngestGB: estimateFlags.monthlyGB,
		Months:          estimateFlags.months,
	}
	if err := in.validate(); err != nil {
		return enhanceError("estimate", err)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return enhanceError("build provider catalog", err)
	}
	entries, err := catalog.Select(estimateFlags.providers)
	if err != nil {
		return enhanceError("select providers", err)
	}

	log.Debug("Running simulation",
		zap.Int("initial_gb", in.InitialGB),
		zap.Int("monthly_ingest_gb", in.MonthlyIngestGB),
		zap.Int("months", in.Months),
		zap.Int("providers", len(entries)),
	)

	result, err := simulation.Run(entries, simulation.Inputs{
		InitialGB:       in.InitialGB,
		MonthlyIngestGB: in.MonthlyIngestGB,
		Months:          in.Months,
	}, simulation.Config{Breakdown: estimateFlags.breakdown})
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	log.Debug("Simulation complete", zap.String("cheapest", result.Summary.Cheapest))

	data := report.Data{
		Tool:      "coldtco",
		Version:   version,
		Timestamp: time.Now().UTC(),
		Config: report.ReportConfig{
			Currency:  estimateFlags.currency,
			Breakdown: estimateFlags.breakdown,
		},
		Inputs:    result.Inputs,
		Providers: result.Providers,
		Summary:   result.Summary,
	}

	out, err := openOutput(cmd, estimateFlags.outputFile)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	reporter, err := selectReporter(estimateFlags.format, out)
	if err != nil {
		return err
	}
	if err := reporter.Generate(data); err != nil {
		return err
	}
	return out.Close()
}

// applyEstimateConfigDefaults fills flags left at their defaults from cfg.
func applyEstimateConfigDefaults(cfg config.Config) {
	if estimateFlags.initialGB == defaultInitialGB && cfg.InitialGB > 0 {
		estimateFlags.initialGB = cfg.InitialGB
	}
	if estimateFlags.monthlyGB == defaultMonthlyGB && cfg.MonthlyIngestGB > 0 {
		estimateFlags.monthlyGB = cfg.MonthlyIngestGB
	}
	if estimateFlags.months == defaultMonths && cfg.Months > 0 {
		estimateFlags.months = cfg.Months
	}
	if len(estimateFlags.providers) == 0 && len(cfg.Providers) > 0 {
		estimateFlags.providers = cfg.Providers
	}
	if estimateFlags.currency == defaultCurrency && cfg.Currency != "" {
		estimateFlags.currency = cfg.Currency
	}
	if estimateFlags.format == defaultFormat && cfg.Format != "" {
		estimateFlags.format = cfg.Format
	}
	if !estimateFlags.breakdown && cfg.Breakdown {
		estimateFlags.breakdown = true
	}
}
