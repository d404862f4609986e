package report

import (
	"encoding/json"
	"fmt"
)

type jsonEnvelope struct {
	Schema string `json:"$schema"`
	Data
}

// Generate writes the report as indented JSON. Amounts are unrounded.
func (r *JSONReporter) Generate(data Data) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonEnvelope{Schema: "coldtco/v1", Data: data}); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}
