// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

func mk(source string, q types.Quadrant, u, i, e int, d float64) types.MergedTask {
	return types.MergedTask{
		Title:           source + " task",
		Source:          source,
		Quadrant:        q,
		Urgency:         u,
		Importance:      i,
		Enjoyment:       e,
		DurationHours:   d,
		EnjoymentBucket: types.EnjoymentMedium,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.False(t, s.Overall.HasData)
	assert.Zero(t, s.Overall.Count)
	assert.Empty(t, s.ByQuadrant)
	assert.Empty(t, s.BySource)
}

func TestSummarizeOverall(t *testing.T) {
	tasks := []types.MergedTask{
		mk("Personal", types.QuadrantDoFirst, 8, 7, 4, 1),
		mk("Trello", types.QuadrantDoFirst, 10, 5, 5, 2),
		mk("Trello", types.QuadrantEliminate, 2, 2, 9, 0.5),
	}

	s := Summarize(tasks)
	require.True(t, s.Overall.HasData)
	assert.Equal(t, 3, s.Overall.Count)
	assert.Equal(t, 3.5, s.Overall.TotalHours)
	assert.Equal(t, 6.7, s.Overall.MeanUrgency)    // (8+10+2)/3 = 6.66…
	assert.Equal(t, 4.7, s.Overall.MeanImportance) // (7+5+2)/3 = 4.66…
	assert.Equal(t, 6.0, s.Overall.MeanEnjoyment)
}

func TestSummarizeByQuadrantOmitsEmpty(t *testing.T) {
	tasks := []types.MergedTask{
		mk("Personal", types.QuadrantDoFirst, 8, 7, 4, 1),
		mk("Trello", types.QuadrantDoFirst, 10, 5, 6, 3),
	}

	s := Summarize(tasks)
	require.Len(t, s.ByQuadrant, 1, "only quadrants present in the data appear")
	q := s.ByQuadrant[0]
	assert.Equal(t, types.QuadrantDoFirst, q.Quadrant)
	assert.Equal(t, 2, q.Count)
	assert.Equal(t, 4.0, q.TotalHours)
	assert.Equal(t, 2.0, q.MeanHours)
	assert.Equal(t, 5.0, q.MeanEnjoyment)
}

func TestSummarizeQuadrantOrderFixed(t *testing.T) {
	tasks := []types.MergedTask{
		mk("a", types.QuadrantEliminate, 2, 2, 2, 1),
		mk("b", types.QuadrantDoFirst, 8, 8, 8, 1),
		mk("c", types.QuadrantDelegate, 8, 2, 5, 1),
	}

	s := Summarize(tasks)
	require.Len(t, s.ByQuadrant, 3)
	assert.Equal(t, types.QuadrantDoFirst, s.ByQuadrant[0].Quadrant)
	assert.Equal(t, types.QuadrantDelegate, s.ByQuadrant[1].Quadrant)
	assert.Equal(t, types.QuadrantEliminate, s.ByQuadrant[2].Quadrant)
}

func TestSummarizeBySourceSorted(t *testing.T) {
	tasks := []types.MergedTask{
		mk("Trello", types.QuadrantDoFirst, 10, 5, 5, 2),
		mk("Personal", types.QuadrantDoFirst, 8, 7, 4, 1),
		mk("Trello", types.QuadrantEliminate, 2, 3, 9, 1),
	}

	s := Summarize(tasks)
	require.Len(t, s.BySource, 2)
	assert.Equal(t, "Personal", s.BySource[0].Source)
	assert.Equal(t, "Trello", s.BySource[1].Source)
	assert.Equal(t, 2, s.BySource[1].Count)
	assert.Equal(t, 6.0, s.BySource[1].MeanUrgency)
	assert.Equal(t, 4.0, s.BySource[1].MeanImportance)
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, Summarize(nil), &buf)
	assert.Contains(t, buf.String(), "No tasks found.")
}

func TestFormatTable(t *testing.T) {
	tasks := []types.MergedTask{mk("Personal", types.QuadrantDoFirst, 8, 7, 4, 1)}
	var buf bytes.Buffer
	FormatTable(tasks, Summarize(tasks), &buf)
	out := buf.String()
	assert.Contains(t, out, "Personal task")
	assert.Contains(t, out, "Do First")
	assert.True(t, strings.Contains(out, "1 tasks"), "overall line missing: %q", out)
}

func TestFormatJSON(t *testing.T) {
	tasks := []types.MergedTask{mk("Trello", types.QuadrantSchedule, 2, 8, 5, 2)}
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(tasks, Summarize(tasks), &buf))

	var parsed struct {
		Tasks   []types.MergedTask `json:"tasks"`
		Summary Summary            `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.Tasks, 1)
	assert.Equal(t, types.QuadrantSchedule, parsed.Tasks[0].Quadrant)
	assert.True(t, parsed.Summary.Overall.HasData)
}
