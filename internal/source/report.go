// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the per-run acquisition diagnostic written next to the exports:
// which strategy served each source and what every attempt before it said.
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Sources     []Result  `yaml:"sources"`
}

// WriteReport writes the acquisition report as YAML to path.
func WriteReport(path string, results []Result, now time.Time) error {
	report := Report{GeneratedAt: now.UTC(), Sources: results}
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling acquisition report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing acquisition report: %w", err)
	}
	return nil
}
