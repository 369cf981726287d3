// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

// csvHeader is the canonical column layout for imported record files.
var csvHeader = []string{
	"id", "title", "description", "start", "end", "due",
	"all_day", "status", "group", "category",
}

// CSVImport reads raw records from a local delimited file in the canonical
// layout. A missing file is a failed tier.
type CSVImport struct {
	Path string
}

func (s *CSVImport) Name() string { return "csv" }

func (s *CSVImport) Fetch(_ context.Context) ([]types.RawRecord, error) {
	return readRecordsCSV(s.Path)
}

// ManualTemplate reads a hand-filled record file. When the file does not
// exist yet it writes the template and reports failure, so the chain
// advances while the user gets something to fill in for the next run.
type ManualTemplate struct {
	Path string
}

func (s *ManualTemplate) Name() string { return "manual" }

func (s *ManualTemplate) Fetch(_ context.Context) ([]types.RawRecord, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		if werr := WriteTemplate(s.Path); werr != nil {
			return nil, fmt.Errorf("writing manual template: %w", werr)
		}
		return nil, fmt.Errorf("manual template created at %s, fill it in and re-run", s.Path)
	}
	return readRecordsCSV(s.Path)
}

// WriteTemplate writes the canonical header plus example rows showing the
// tag convention.
func WriteTemplate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		csvHeader,
		{"", "Quarterly review", "prep slides #U7I8E4D3h", "2026-03-05T09:00:00Z", "2026-03-05T12:00:00Z", "", "false", "Scheduled", "Personal", "Work"},
		{"", "Renew passport", "#U9I6E1D2h", "", "", "2026-03-10T00:00:00Z", "false", "Open", "Errands", "Home"},
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// readRecordsCSV parses a canonical record file. Rows with malformed
// timestamps keep a nil time rather than being rejected; rows without an
// id get a generated one.
func readRecordsCSV(path string) ([]types.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	if !sameHeader(rows[0]) {
		return nil, fmt.Errorf("%s: unexpected header %v, want %v", path, rows[0], csvHeader)
	}

	var records []types.RawRecord
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			continue
		}
		rec := types.RawRecord{
			ID:          row[0],
			Title:       row[1],
			Description: row[2],
			Start:       parseTime(row[3]),
			End:         parseTime(row[4]),
			Due:         parseTime(row[5]),
			AllDay:      strings.EqualFold(row[6], "true"),
			Status:      row[7],
			Group:       row[8],
			Category:    row[9],
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		records = append(records, rec)
	}
	return records, nil
}

func sameHeader(row []string) bool {
	if len(row) != len(csvHeader) {
		return false
	}
	for i, col := range row {
		if strings.TrimSpace(col) != csvHeader[i] {
			return false
		}
	}
	return true
}

// parseTime accepts RFC3339 or a bare date; anything else becomes nil.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}
