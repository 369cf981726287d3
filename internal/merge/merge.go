// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge unions normalized task tables, validates value ranges, and
// derives the priority quadrant and enjoyment bucket for each row.
package merge

import "github.com/pdiddy/taskmatrix/pkg/types"

const (
	attributeMin = 0
	attributeMax = 10

	// axisThreshold splits each matrix axis: >=5 counts as high.
	axisThreshold = 5

	// minDuration is the floor applied to duration_hours.
	minDuration = 0.1
)

// Merge concatenates the input tables into one classified table. Order
// within each table is preserved and tables are appended in argument order.
// Rows missing any of urgency, importance, enjoyment, or duration are
// dropped; surviving values are clamped into range before classification.
func Merge(tables ...[]types.NormalizedTask) []types.MergedTask {
	out := []types.MergedTask{}
	for _, table := range tables {
		for _, t := range table {
			if t.Urgency == nil || t.Importance == nil || t.Enjoyment == nil || t.DurationHours == nil {
				continue
			}

			u := clamp(*t.Urgency)
			i := clamp(*t.Importance)
			e := clamp(*t.Enjoyment)
			d := *t.DurationHours
			if d < minDuration {
				d = minDuration
			}

			out = append(out, types.MergedTask{
				Source:          t.Source,
				Title:           t.Title,
				Urgency:         u,
				Importance:      i,
				Enjoyment:       e,
				DurationHours:   d,
				DueOrEnd:        t.DueOrEnd,
				Status:          t.Status,
				ProjectContext:  t.ProjectContext,
				Description:     t.Description,
				Category:        t.Category,
				Quadrant:        QuadrantFor(u, i),
				EnjoymentBucket: BucketFor(e),
			})
		}
	}
	return out
}

// QuadrantFor classifies clamped urgency/importance into the decision
// matrix.
func QuadrantFor(urgency, importance int) types.Quadrant {
	switch {
	case urgency >= axisThreshold && importance >= axisThreshold:
		return types.QuadrantDoFirst
	case urgency < axisThreshold && importance >= axisThreshold:
		return types.QuadrantSchedule
	case urgency >= axisThreshold:
		return types.QuadrantDelegate
	default:
		return types.QuadrantEliminate
	}
}

// BucketFor classifies clamped enjoyment: >=7 high, 4-6 medium, else low.
func BucketFor(enjoyment int) types.EnjoymentBucket {
	switch {
	case enjoyment >= 7:
		return types.EnjoymentHigh
	case enjoyment >= 4:
		return types.EnjoymentMedium
	default:
		return types.EnjoymentLow
	}
}

func clamp(v int) int {
	if v < attributeMin {
		return attributeMin
	}
	if v > attributeMax {
		return attributeMax
	}
	return v
}
