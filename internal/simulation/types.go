package simulation

import (
	"github.com/ppiankov/coldtco/internal/pricing"
)

// Inputs are the parameters of one simulation run. Volumes are in GB.
type Inputs struct {
	InitialGB       int `json:"initial_gb"`
	MonthlyIngestGB int `json:"monthly_ingest_gb"`
	Months          int `json:"months"`
}

// Config controls what a run produces beyond the headline figures.
type Config struct {
	Breakdown bool
}

// ProviderResult holds the computed costs for one provider.
type ProviderResult struct {
	ID          string                  `json:"id"`
	Provider    pricing.Provider        `json:"provider"`
	InitialCost float64                 `json:"initial_cost"`
	TotalCost   float64                 `json:"total_cost"`
	Schedule    []pricing.MonthlyCharge `json:"schedule,omitempty"`
}

// Summary compares providers by total cost of ownership.
type Summary struct {
	ProvidersCompared int     `json:"providers_compared"`
	Cheapest          string  `json:"cheapest"`
	MostExpensive     string  `json:"most_expensive"`
	Spread            float64 `json:"spread"`
}

// Result holds every provider's figures and the comparison summary.
type Result struct {
	Inputs    Inputs           `json:"inputs"`
	Providers []ProviderResult `json:"providers"`
	Summary   Summary          `json:"summary"`
}
