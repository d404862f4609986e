package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/coldtco/internal/pricing"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	content := `initial_gb: 2000
monthly_ingest_gb: 100
months: 60
providers:
  - scaleway
  - ovhcloud
currency: EUR
format: json
breakdown: true
custom_providers:
  coldline:
    name: Coldline
    provider_name: Example Cloud
    description: Multi-region
    at_rest_cost: 0.0000055
    ingress_cost: 0.005
    egress_cost: 0.02
    free_tier: 10
`
	if err := os.WriteFile(filepath.Join(dir, ".coldtco.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.InitialGB != 2000 {
		t.Errorf("InitialGB = %d, want 2000", cfg.InitialGB)
	}
	if cfg.MonthlyIngestGB != 100 {
		t.Errorf("MonthlyIngestGB = %d, want 100", cfg.MonthlyIngestGB)
	}
	if cfg.Months != 60 {
		t.Errorf("Months = %d, want 60", cfg.Months)
	}
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "scaleway" {
		t.Errorf("Providers = %v, want [scaleway ovhcloud]", cfg.Providers)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "EUR")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if !cfg.Breakdown {
		t.Error("Breakdown = false, want true")
	}

	p, ok := cfg.CustomProviders["coldline"]
	if !ok {
		t.Fatal("custom provider coldline not loaded")
	}
	if p.AtRestCost != 0.0000055 || p.FreeTier != 10 {
		t.Errorf("coldline = %+v", p)
	}
}

func TestLoadYML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".coldtco.yml"), []byte("months: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Months != 12 {
		t.Errorf("Months = %d, want 12", cfg.Months)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Months != 0 || cfg.Format != "" {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".coldtco.yaml"), []byte(":::invalid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load() should error on invalid YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative months", "months: -1\n"},
		{"unknown format", "format: sarif\n"},
		{"negative provider cost", "custom_providers:\n  x:\n    name: X\n    provider_name: X\n    at_rest_cost: -0.1\n"},
		{"provider without name", "custom_providers:\n  x:\n    provider_name: X\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ".coldtco.yaml"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(dir)
			if err == nil {
				t.Fatal("Load() should reject invalid values")
			}
			if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestCatalogDefault(t *testing.T) {
	c, err := Config{}.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	ids := c.IDs()
	if len(ids) != 2 || ids[0] != pricing.OVHcloud || ids[1] != pricing.Scaleway {
		t.Errorf("IDs = %v, want [ovhcloud scaleway]", ids)
	}
}

func TestCatalogWithCustomProviders(t *testing.T) {
	cfg := Config{CustomProviders: map[string]pricing.Provider{
		"coldline": {Name: "Coldline", ProviderName: "Example Cloud", AtRestCost: 0.0000055},
	}}
	c, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if _, ok := c.Lookup("coldline"); !ok {
		t.Error("coldline missing from catalog")
	}
	if len(c.IDs()) != 3 {
		t.Errorf("IDs = %v, want 3 entries", c.IDs())
	}
}
