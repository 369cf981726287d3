// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

func task(title string, u, i, e int, d float64) types.NormalizedTask {
	return types.NormalizedTask{
		Title:         title,
		Urgency:       &u,
		Importance:    &i,
		Enjoyment:     &e,
		DurationHours: &d,
	}
}

func TestMergeStableUnion(t *testing.T) {
	a := []types.NormalizedTask{task("a1", 8, 8, 8, 1), task("a2", 2, 2, 2, 1)}
	b := []types.NormalizedTask{task("b1", 5, 5, 5, 1)}

	got := Merge(a, b)
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].Title)
	assert.Equal(t, "a2", got[1].Title)
	assert.Equal(t, "b1", got[2].Title)
}

func TestMergeDropsIncompleteRows(t *testing.T) {
	complete := task("complete", 5, 5, 5, 1)
	noDuration := task("no duration", 5, 5, 5, 1)
	noDuration.DurationHours = nil
	noUrgency := task("no urgency", 5, 5, 5, 1)
	noUrgency.Urgency = nil

	got := Merge([]types.NormalizedTask{complete, noDuration, noUrgency})
	require.Len(t, got, 1)
	assert.Equal(t, "complete", got[0].Title)
}

func TestMergeClamping(t *testing.T) {
	got := Merge([]types.NormalizedTask{task("wild", -3, 15, 12, 0.01)})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Urgency)
	assert.Equal(t, 10, got[0].Importance)
	assert.Equal(t, 10, got[0].Enjoyment)
	assert.Equal(t, 0.1, got[0].DurationHours)
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil))
}

func TestQuadrantFor(t *testing.T) {
	tests := []struct {
		urgency, importance int
		want                types.Quadrant
	}{
		{8, 9, types.QuadrantDoFirst},
		{2, 8, types.QuadrantSchedule},
		{8, 2, types.QuadrantDelegate},
		{2, 2, types.QuadrantEliminate},
		{5, 5, types.QuadrantDoFirst},  // threshold is inclusive
		{4, 5, types.QuadrantSchedule}, // one below threshold
		{5, 4, types.QuadrantDelegate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuadrantFor(tt.urgency, tt.importance),
			"QuadrantFor(%d, %d)", tt.urgency, tt.importance)
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		enjoyment int
		want      types.EnjoymentBucket
	}{
		{10, types.EnjoymentHigh},
		{7, types.EnjoymentHigh},
		{6, types.EnjoymentMedium},
		{4, types.EnjoymentMedium},
		{3, types.EnjoymentLow},
		{0, types.EnjoymentLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.enjoyment), "BucketFor(%d)", tt.enjoyment)
	}
}

func TestMergeDeterministic(t *testing.T) {
	in := []types.NormalizedTask{task("a", 8, 7, 4, 1), task("b", 12, -1, 5, 0)}
	first := Merge(in)
	second := Merge(in)
	assert.Equal(t, first, second)
}
