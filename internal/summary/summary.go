// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary computes grouped statistics over the merged task table.
package summary

import (
	"math"
	"sort"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

// Overall aggregates the whole table. HasData is false for an empty table;
// the numeric fields are zero then, never NaN.
type Overall struct {
	HasData        bool    `json:"has_data"`
	Count          int     `json:"count"`
	TotalHours     float64 `json:"total_hours"`
	MeanUrgency    float64 `json:"mean_urgency"`
	MeanImportance float64 `json:"mean_importance"`
	MeanEnjoyment  float64 `json:"mean_enjoyment"`
}

// QuadrantStats aggregates one priority quadrant.
type QuadrantStats struct {
	Quadrant      types.Quadrant `json:"quadrant"`
	Count         int            `json:"count"`
	TotalHours    float64        `json:"total_hours"`
	MeanHours     float64        `json:"mean_hours"`
	MeanEnjoyment float64        `json:"mean_enjoyment"`
}

// SourceStats aggregates one source label.
type SourceStats struct {
	Source         string  `json:"source"`
	Count          int     `json:"count"`
	MeanUrgency    float64 `json:"mean_urgency"`
	MeanImportance float64 `json:"mean_importance"`
}

// Summary is the full statistics bundle for one pipeline run.
type Summary struct {
	Overall    Overall         `json:"overall"`
	ByQuadrant []QuadrantStats `json:"by_quadrant"`
	BySource   []SourceStats   `json:"by_source"`
}

// quadrantOrder fixes the output order for quadrant groups.
var quadrantOrder = []types.Quadrant{
	types.QuadrantDoFirst,
	types.QuadrantSchedule,
	types.QuadrantDelegate,
	types.QuadrantEliminate,
}

// Summarize computes the summary for tasks. Quadrants with no tasks are
// omitted rather than zero-filled; sources appear sorted by label. All
// means and totals are rounded to one decimal place.
func Summarize(tasks []types.MergedTask) Summary {
	s := Summary{}
	if len(tasks) == 0 {
		return s
	}

	var totalHours, sumU, sumI, sumE float64
	byQuadrant := make(map[types.Quadrant][]types.MergedTask)
	bySource := make(map[string][]types.MergedTask)
	for _, t := range tasks {
		totalHours += t.DurationHours
		sumU += float64(t.Urgency)
		sumI += float64(t.Importance)
		sumE += float64(t.Enjoyment)
		byQuadrant[t.Quadrant] = append(byQuadrant[t.Quadrant], t)
		bySource[t.Source] = append(bySource[t.Source], t)
	}

	n := float64(len(tasks))
	s.Overall = Overall{
		HasData:        true,
		Count:          len(tasks),
		TotalHours:     round1(totalHours),
		MeanUrgency:    round1(sumU / n),
		MeanImportance: round1(sumI / n),
		MeanEnjoyment:  round1(sumE / n),
	}

	for _, q := range quadrantOrder {
		group := byQuadrant[q]
		if len(group) == 0 {
			continue
		}
		var hours, enjoyment float64
		for _, t := range group {
			hours += t.DurationHours
			enjoyment += float64(t.Enjoyment)
		}
		gn := float64(len(group))
		s.ByQuadrant = append(s.ByQuadrant, QuadrantStats{
			Quadrant:      q,
			Count:         len(group),
			TotalHours:    round1(hours),
			MeanHours:     round1(hours / gn),
			MeanEnjoyment: round1(enjoyment / gn),
		})
	}

	labels := make([]string, 0, len(bySource))
	for label := range bySource {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		group := bySource[label]
		var u, i float64
		for _, t := range group {
			u += float64(t.Urgency)
			i += float64(t.Importance)
		}
		gn := float64(len(group))
		s.BySource = append(s.BySource, SourceStats{
			Source:         label,
			Count:          len(group),
			MeanUrgency:    round1(u / gn),
			MeanImportance: round1(i / gn),
		})
	}

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
