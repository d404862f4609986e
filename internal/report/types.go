package report

import (
	"io"
	"time"

	"github.com/ppiankov/coldtco/internal/simulation"
)

// Reporter is the interface for output formatters.
type Reporter interface {
	Generate(data Data) error
}

// Data holds all information needed to generate a report.
type Data struct {
	Tool      string                      `json:"tool"`
	Version   string                      `json:"version"`
	Timestamp time.Time                   `json:"timestamp"`
	Config    ReportConfig                `json:"config"`
	Inputs    simulation.Inputs           `json:"inputs"`
	Providers []simulation.ProviderResult `json:"providers"`
	Summary   simulation.Summary          `json:"summary"`
}

// ReportConfig captures the presentation settings used.
type ReportConfig struct {
	Currency  string `json:"currency"`
	Breakdown bool   `json:"breakdown"`
}

// TextReporter generates human-readable terminal output.
type TextReporter struct {
	Writer io.Writer
}

// JSONReporter generates coldtco/v1 envelope JSON output.
type JSONReporter struct {
	Writer io.Writer
}
