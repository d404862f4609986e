package pricing

import (
	"errors"
	"fmt"
	"math"
)

// HoursPerMonth is the fixed billing month used for at-rest charges.
const HoursPerMonth = 720

// ErrInvalidArgument is returned when a volume, cost or duration is negative or not finite.
var ErrInvalidArgument = errors.New("invalid argument")

// Provider describes the pricing rules of one cold-storage offer.
// AtRestCost is per GB per hour, IngressCost and EgressCost are per GB
// transferred and FreeTier is a volume in GB. EgressCost is carried for
// display only; the simulation never retrieves data.
type Provider struct {
	Name         string  `json:"name" yaml:"name" validate:"required"`
	ProviderName string  `json:"provider_name" yaml:"provider_name" validate:"required"`
	Description  string  `json:"description,omitempty" yaml:"description"`
	AtRestCost   float64 `json:"at_rest_cost" yaml:"at_rest_cost" validate:"gte=0"`
	IngressCost  float64 `json:"ingress_cost" yaml:"ingress_cost" validate:"gte=0"`
	EgressCost   float64 `json:"egress_cost" yaml:"egress_cost" validate:"gte=0"`
	FreeTier     float64 `json:"free_tier,omitempty" yaml:"free_tier" validate:"gte=0"`
}

// MonthlyCharge is the accrual for a single simulated month.
type MonthlyCharge struct {
	Month      int     `json:"month"`
	DataAtRest float64 `json:"data_at_rest_gb"`
	Storage    float64 `json:"storage"`
	Ingestion  float64 `json:"ingestion"`
	Cumulative float64 `json:"cumulative"`
}

// Validate checks that the provider has a name and usable cost fields.
func (p Provider) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("provider name: %w", ErrInvalidArgument)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"at_rest_cost", p.AtRestCost},
		{"ingress_cost", p.IngressCost},
		{"egress_cost", p.EgressCost},
		{"free_tier", p.FreeTier},
	}
	for _, f := range fields {
		if err := checkVolume(f.name, f.value); err != nil {
			return fmt.Errorf("provider %s: %w", p.Name, err)
		}
	}
	return nil
}

// MonthlyStorageCost returns the charge for keeping dataAtRest GB stored for one month.
// Volumes strictly below the free tier are not charged.
func (p Provider) MonthlyStorageCost(dataAtRest float64) (float64, error) {
	if err := checkVolume("data at rest", dataAtRest); err != nil {
		return 0, err
	}
	return p.monthlyStorageCost(dataAtRest), nil
}

// IngestionCost returns the charge for writing dataToIngest GB in a single event.
// The free tier applies to the event's own volume.
func (p Provider) IngestionCost(dataToIngest float64) (float64, error) {
	if err := checkVolume("data to ingest", dataToIngest); err != nil {
		return 0, err
	}
	return p.ingestionCost(dataToIngest), nil
}

// TotalCostOfOwnership returns the initial ingestion of initialDataAtRest plus
// months of storage and ingestion accrual. Each month is billed on the volume
// held at its start, before that month's ingest lands.
func (p Provider) TotalCostOfOwnership(initialDataAtRest, monthlyIngest float64, months int) (float64, error) {
	if err := checkInputs(initialDataAtRest, monthlyIngest, months); err != nil {
		return 0, err
	}

	initial := p.ingestionCost(initialDataAtRest)
	var incremental float64
	dataAtRest := initialDataAtRest
	for i := 0; i < months; i++ {
		incremental += p.monthlyStorageCost(dataAtRest) + p.ingestionCost(monthlyIngest)
		dataAtRest += monthlyIngest
	}
	return initial + incremental, nil
}

// Schedule runs the same accrual as TotalCostOfOwnership and returns one entry
// per month. Cumulative includes the initial ingestion charge.
func (p Provider) Schedule(initialDataAtRest, monthlyIngest float64, months int) ([]MonthlyCharge, error) {
	if err := checkInputs(initialDataAtRest, monthlyIngest, months); err != nil {
		return nil, err
	}

	initial := p.ingestionCost(initialDataAtRest)
	var incremental float64
	dataAtRest := initialDataAtRest
	charges := make([]MonthlyCharge, 0, months)
	for m := 1; m <= months; m++ {
		storage := p.monthlyStorageCost(dataAtRest)
		ingestion := p.ingestionCost(monthlyIngest)
		incremental += storage + ingestion
		charges = append(charges, MonthlyCharge{
			Month:      m,
			DataAtRest: dataAtRest,
			Storage:    storage,
			Ingestion:  ingestion,
			Cumulative: initial + incremental,
		})
		dataAtRest += monthlyIngest
	}
	return charges, nil
}

// Free tier is re-evaluated on every call, so a growing volume can leave it
// part way through a simulation.
func (p Provider) monthlyStorageCost(dataAtRest float64) float64 {
	if dataAtRest < p.FreeTier {
		return 0
	}
	return dataAtRest * p.AtRestCost * HoursPerMonth
}

func (p Provider) ingestionCost(dataToIngest float64) float64 {
	if dataToIngest < p.FreeTier {
		return 0
	}
	return dataToIngest * p.IngressCost
}

func checkInputs(initialDataAtRest, monthlyIngest float64, months int) error {
	if err := checkVolume("initial data at rest", initialDataAtRest); err != nil {
		return err
	}
	if err := checkVolume("monthly ingest", monthlyIngest); err != nil {
		return err
	}
	if months < 0 {
		return fmt.Errorf("months %d is negative: %w", months, ErrInvalidArgument)
	}
	return nil
}

func checkVolume(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s is not finite: %w", name, ErrInvalidArgument)
	}
	if v < 0 {
		return fmt.Errorf("%s %g is negative: %w", name, v, ErrInvalidArgument)
	}
	return nil
}
