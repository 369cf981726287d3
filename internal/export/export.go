// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the merged task table and its summary as flat
// delimited files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pdiddy/taskmatrix/internal/summary"
	"github.com/pdiddy/taskmatrix/pkg/types"
)

var taskHeader = []string{
	"source", "title", "urgency", "importance", "enjoyment",
	"duration_hours", "due_or_end", "status", "project_context",
	"category", "quadrant", "enjoyment_bucket",
}

// WriteTasks writes one CSV row per merged task to path.
func WriteTasks(path string, tasks []types.MergedTask) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(taskHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			t.Source,
			t.Title,
			strconv.Itoa(t.Urgency),
			strconv.Itoa(t.Importance),
			strconv.Itoa(t.Enjoyment),
			formatFloat(t.DurationHours),
			formatTime(t.DueOrEnd),
			t.Status,
			t.ProjectContext,
			t.Category,
			string(t.Quadrant),
			string(t.EnjoymentBucket),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSummary writes the grouped statistics to path, one row per summary
// group. The overall row carries group kind "overall"; quadrant and source
// groups follow.
func WriteSummary(path string, s summary.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"group_kind", "group", "count", "total_hours", "mean_hours", "mean_urgency", "mean_importance", "mean_enjoyment"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if s.Overall.HasData {
		if err := w.Write([]string{
			"overall", "",
			strconv.Itoa(s.Overall.Count),
			formatFloat(s.Overall.TotalHours),
			"",
			formatFloat(s.Overall.MeanUrgency),
			formatFloat(s.Overall.MeanImportance),
			formatFloat(s.Overall.MeanEnjoyment),
		}); err != nil {
			return fmt.Errorf("writing overall row: %w", err)
		}
	}
	for _, q := range s.ByQuadrant {
		if err := w.Write([]string{
			"quadrant", string(q.Quadrant),
			strconv.Itoa(q.Count),
			formatFloat(q.TotalHours),
			formatFloat(q.MeanHours),
			"", "",
			formatFloat(q.MeanEnjoyment),
		}); err != nil {
			return fmt.Errorf("writing quadrant row: %w", err)
		}
	}
	for _, src := range s.BySource {
		if err := w.Write([]string{
			"source", src.Source,
			strconv.Itoa(src.Count),
			"", "",
			formatFloat(src.MeanUrgency),
			formatFloat(src.MeanImportance),
			"",
		}); err != nil {
			return fmt.Errorf("writing source row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
