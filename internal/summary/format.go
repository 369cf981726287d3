// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

var quadrantColors = map[types.Quadrant]*color.Color{
	types.QuadrantDoFirst:   color.New(color.FgRed, color.Bold),
	types.QuadrantSchedule:  color.New(color.FgYellow),
	types.QuadrantDelegate:  color.New(color.FgCyan),
	types.QuadrantEliminate: color.New(color.FgHiBlack),
}

// FormatTable writes the merged table and its summary as human-readable
// tables to w, coloring each row by quadrant.
func FormatTable(tasks []types.MergedTask, s Summary, w io.Writer) {
	if !s.Overall.HasData {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	fmt.Fprintf(w, "%-40s  %-10s  %-3s  %-3s  %-3s  %-6s  %s\n",
		"Title", "Quadrant", "U", "I", "E", "Hours", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, t := range tasks {
		title := t.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		line := fmt.Sprintf("%-40s  %-10s  %-3d  %-3d  %-3d  %-6.1f  %s",
			title, t.Quadrant, t.Urgency, t.Importance, t.Enjoyment, t.DurationHours, t.Source)
		if c, ok := quadrantColors[t.Quadrant]; ok {
			c.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "\n%d tasks, %.1f hours total (urgency %.1f, importance %.1f, enjoyment %.1f on average)\n",
		s.Overall.Count, s.Overall.TotalHours,
		s.Overall.MeanUrgency, s.Overall.MeanImportance, s.Overall.MeanEnjoyment)

	fmt.Fprintf(w, "\n%-10s  %-5s  %-7s  %-7s  %s\n", "Quadrant", "Count", "Hours", "Mean h", "Enjoyment")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, q := range s.ByQuadrant {
		fmt.Fprintf(w, "%-10s  %-5d  %-7.1f  %-7.1f  %.1f\n",
			q.Quadrant, q.Count, q.TotalHours, q.MeanHours, q.MeanEnjoyment)
	}

	fmt.Fprintf(w, "\n%-20s  %-5s  %-8s  %s\n", "Source", "Count", "Urgency", "Importance")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, src := range s.BySource {
		fmt.Fprintf(w, "%-20s  %-5d  %-8.1f  %.1f\n",
			src.Source, src.Count, src.MeanUrgency, src.MeanImportance)
	}
}

// FormatJSON writes the merged table and summary as indented JSON to w.
func FormatJSON(tasks []types.MergedTask, s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Tasks   []types.MergedTask `json:"tasks"`
		Summary Summary            `json:"summary"`
	}{Tasks: tasks, Summary: s})
}
