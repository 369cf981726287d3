// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

// MockData is the terminal tier of a fallback chain: deterministic sample
// records so the pipeline always has something to demonstrate with. A
// fixture file overrides the built-in set.
type MockData struct {
	Kind types.SourceKind

	// FixturePath optionally names a YAML file holding []RawRecord.
	FixturePath string

	// Now anchors the sample due dates; nil means time.Now.
	Now func() time.Time
}

func (s *MockData) Name() string { return "mock" }

func (s *MockData) Fetch(_ context.Context) ([]types.RawRecord, error) {
	if s.FixturePath != "" {
		return readFixture(s.FixturePath)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if s.Kind == types.SourceTaskCard {
		return sampleCards(now()), nil
	}
	return sampleEvents(now()), nil
}

func readFixture(path string) ([]types.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var records []types.RawRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return records, nil
}

func sampleEvents(now time.Time) []types.RawRecord {
	day := func(d, h, dur int) (*time.Time, *time.Time) {
		start := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		end := start.Add(time.Duration(dur) * time.Hour)
		return &start, &end
	}
	s1, e1 := day(0, 9, 1)
	s2, e2 := day(1, 14, 2)
	s3, e3 := day(3, 10, 1)
	return []types.RawRecord{
		{ID: "mock-ev-1", Title: "Team standup", Description: "daily sync #U6I5E5D1h", Start: s1, End: e1, Status: "Scheduled", Group: "Sample"},
		{ID: "mock-ev-2", Title: "Strategy offsite prep", Description: "deck outline #U4I9E6D2h", Start: s2, End: e2, Status: "Scheduled", Group: "Sample"},
		{ID: "mock-ev-3", Title: "Inbox triage", Description: "#U7I2E3D1h", Start: s3, End: e3, Status: "Scheduled", Group: "Sample"},
	}
}

func sampleCards(now time.Time) []types.RawRecord {
	due := func(d int) *time.Time {
		t := time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		return &t
	}
	return []types.RawRecord{
		{ID: "mock-card-1", Title: "File expense report", Description: "#U8I4E1D1h", Status: "To Do", Group: "Sample Board", Category: "Work"},
		{ID: "mock-card-2", Title: "Book dentist appointment", Due: due(2), Status: "To Do", Group: "Sample Board", Category: "Home"},
		{ID: "mock-card-3", Title: "Read architecture RFC", Description: "#U3I8E8D4h", Due: due(10), Status: "Doing", Group: "Sample Board", Category: "Work"},
	}
}
