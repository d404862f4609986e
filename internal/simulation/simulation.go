package simulation

import (
	"errors"
	"fmt"

	"github.com/ppiankov/coldtco/internal/pricing"
)

// Run computes the initial archiving cost and total cost of ownership for each
// provider and ranks them. Results keep the order of entries.
func Run(entries []pricing.Entry, in Inputs, cfg Config) (*Result, error) {
	if len(entries) == 0 {
		return nil, errors.New("no providers to simulate")
	}

	initial := float64(in.InitialGB)
	monthly := float64(in.MonthlyIngestGB)

	result := &Result{
		Inputs:    in,
		Providers: make([]ProviderResult, 0, len(entries)),
	}
	for _, e := range entries {
		initialCost, err := e.Provider.IngestionCost(initial)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.ID, err)
		}
		total, err := e.Provider.TotalCostOfOwnership(initial, monthly, in.Months)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.ID, err)
		}

		pr := ProviderResult{
			ID:          e.ID,
			Provider:    e.Provider,
			InitialCost: initialCost,
			TotalCost:   total,
		}
		if cfg.Breakdown {
			pr.Schedule, err = e.Provider.Schedule(initial, monthly, in.Months)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.ID, err)
			}
		}
		result.Providers = append(result.Providers, pr)
	}

	result.Summary = summarize(result.Providers)
	return result, nil
}

// summarize picks the cheapest and most expensive providers. Ties go to the
// provider listed first.
func summarize(results []ProviderResult) Summary {
	s := Summary{ProvidersCompared: len(results)}
	if len(results) == 0 {
		return s
	}

	lo, hi := results[0], results[0]
	for _, r := range results[1:] {
		if r.TotalCost < lo.TotalCost {
			lo = r
		}
		if r.TotalCost > hi.TotalCost {
			hi = r
		}
	}
	s.Cheapest = lo.ID
	s.MostExpensive = hi.ID
	s.Spread = hi.TotalCost - lo.TotalCost
	return s
}
