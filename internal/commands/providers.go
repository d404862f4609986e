package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/coldtco/internal/config"
	"github.com/ppiankov/coldtco/internal/pricing"
)

var providersFlags struct {
	format string
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List known cold storage providers and their prices",
	Long: `List the built-in providers and any custom_providers defined in .coldtco.yaml.
At-rest prices are shown per GB-hour and per GB-month (720 hours).`,
	RunE: runProviders,
}

func init() {
	providersCmd.Flags().StringVar(&providersFlags.format, "format", defaultFormat, "Output format: text, json")
}

type providerListing struct {
	ID string `json:"id"`
	pricing.Provider
}

func runProviders(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		zap.L().Warn("Failed to load config file", zap.Error(err))
		cfg = config.Config{}
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return enhanceError("build provider catalog", err)
	}

	listings := make([]providerListing, 0, len(catalog.IDs()))
	for _, id := range catalog.IDs() {
		p, _ := catalog.Lookup(id)
		listings = append(listings, providerListing{ID: id, Provider: p})
	}

	out := cmd.OutOrStdout()
	switch providersFlags.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(listings); err != nil {
			return fmt.Errorf("encode providers: %w", err)
		}
		return nil
	case "text":
	default:
		return fmt.Errorf("unsupported format: %s (use text or json)", providersFlags.format)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVIDER\tOFFER\tREDUNDANCY\tAT REST/GB/H\tAT REST/GB/MO\tINGRESS/GB\tEGRESS/GB\tFREE TIER")
	for _, l := range listings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%.6f\t%g\t%g\t%g GB\n",
			l.ID, l.ProviderName, l.Name, l.Description,
			l.AtRestCost, l.AtRestCost*pricing.HoursPerMonth,
			l.IngressCost, l.EgressCost, l.FreeTier)
	}
	return tw.Flush()
}
