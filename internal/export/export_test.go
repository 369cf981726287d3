// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/taskmatrix/internal/summary"
	"github.com/pdiddy/taskmatrix/pkg/types"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteTasks(t *testing.T) {
	due := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	tasks := []types.MergedTask{
		{
			Source: "Personal", Title: "Admin Review", Urgency: 8, Importance: 7,
			Enjoyment: 4, DurationHours: 1, DueOrEnd: &due, Status: "Scheduled",
			ProjectContext: "Personal Calendar", Quadrant: types.QuadrantDoFirst,
			EnjoymentBucket: types.EnjoymentMedium,
		},
		{
			Source: "Trello", Title: "Renew, with comma", Urgency: 10, Importance: 5,
			Enjoyment: 5, DurationHours: 2, Quadrant: types.QuadrantDoFirst,
			EnjoymentBucket: types.EnjoymentMedium,
		},
	}

	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, WriteTasks(path, tasks))

	rows := readCSV(t, path)
	require.Len(t, rows, 3, "header plus one row per task")
	assert.Equal(t, "source", rows[0][0])
	assert.Equal(t, []string{
		"Personal", "Admin Review", "8", "7", "4", "1.0",
		"2026-03-10T17:00:00Z", "Scheduled", "Personal Calendar", "",
		"Do First", "Medium",
	}, rows[1])
	assert.Equal(t, "Renew, with comma", rows[2][1])
	assert.Equal(t, "", rows[2][6], "nil due renders empty")
}

func TestWriteTasksEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, WriteTasks(path, nil))
	rows := readCSV(t, path)
	require.Len(t, rows, 1, "header only")
}

func TestWriteSummary(t *testing.T) {
	s := summary.Summary{
		Overall: summary.Overall{HasData: true, Count: 2, TotalHours: 3.0, MeanUrgency: 9.0, MeanImportance: 6.0, MeanEnjoyment: 4.5},
		ByQuadrant: []summary.QuadrantStats{
			{Quadrant: types.QuadrantDoFirst, Count: 2, TotalHours: 3.0, MeanHours: 1.5, MeanEnjoyment: 4.5},
		},
		BySource: []summary.SourceStats{
			{Source: "Personal", Count: 1, MeanUrgency: 8.0, MeanImportance: 7.0},
			{Source: "Trello", Count: 1, MeanUrgency: 10.0, MeanImportance: 5.0},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummary(path, s))

	rows := readCSV(t, path)
	require.Len(t, rows, 5, "header + overall + 1 quadrant + 2 sources")
	assert.Equal(t, "overall", rows[1][0])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "quadrant", rows[2][0])
	assert.Equal(t, "Do First", rows[2][1])
	assert.Equal(t, "source", rows[3][0])
	assert.Equal(t, "Personal", rows[3][1])
}

func TestWriteSummaryNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummary(path, summary.Summary{}))
	rows := readCSV(t, path)
	require.Len(t, rows, 1, "header only when there is no data")
}
