// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared by all pipeline stages.
package types

import "time"

// SourceKind identifies which kind of external system a record came from.
type SourceKind string

const (
	// SourceCalendar marks records fetched from a calendar provider.
	SourceCalendar SourceKind = "calendar"

	// SourceTaskCard marks records fetched from a card-based task tracker.
	SourceTaskCard SourceKind = "taskcard"
)

// RawRecord is the source-shaped record produced by an acquisition strategy,
// before normalization. Fields a source cannot supply stay zero/nil; the
// normalizer decides what that means per source kind.
type RawRecord struct {
	// ID is the source-assigned identifier (event ID, card ID, or a
	// generated UUID for file-imported rows).
	ID string `json:"id" yaml:"id"`

	// Title is the event summary or card name.
	Title string `json:"title" yaml:"title"`

	// Description is the free text that may carry a #U_I_E_D_h tag.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Start and End bound a calendar event. Nil when unknown or when the
	// source supplies a single due date instead.
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`

	// Due is a task card's due date. Nil when the card has none.
	Due *time.Time `json:"due,omitempty" yaml:"due,omitempty"`

	// AllDay marks a date-only calendar entry.
	AllDay bool `json:"all_day,omitempty" yaml:"all_day,omitempty"`

	// Status is the source's open/closed or list/status label
	// (e.g. "Scheduled", "Open", a Trello list name).
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// Group is the originating calendar name or board name.
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	// Category is an optional external label (e.g. "Work", "Home")
	// passed through unchanged when the source supplies one.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// NormalizedTask is the canonical task entity, one per raw record that
// passes per-source filtering. Numeric attributes are pointers: nil means
// the attribute could not be resolved from tag, inference, or default, and
// the merger will drop the row.
type NormalizedTask struct {
	// Source is the grouping label or fixed constant per adapter
	// (calendar name, or "Trello").
	Source string `json:"source"`

	// Title is the display string.
	Title string `json:"title"`

	// Urgency, Importance, and Enjoyment are notionally in [0,10];
	// the merger clamps them after union.
	Urgency    *int `json:"urgency,omitempty"`
	Importance *int `json:"importance,omitempty"`
	Enjoyment  *int `json:"enjoyment,omitempty"`

	// DurationHours is the estimated effort in hours.
	DurationHours *float64 `json:"duration_hours,omitempty"`

	// DueOrEnd is the card due date or event end time, nil when absent
	// or unparseable.
	DueOrEnd *time.Time `json:"due_or_end,omitempty"`

	// Status is a free status string.
	Status string `json:"status,omitempty"`

	// ProjectContext describes the origin grouping
	// (e.g. "Personal Calendar", a board name).
	ProjectContext string `json:"project_context,omitempty"`

	// Description retains the original free text for traceability.
	Description string `json:"description,omitempty"`

	// Category is passed through from the raw record when present.
	Category string `json:"category,omitempty"`

	// HasTag records whether the attributes came from an explicit tag.
	HasTag bool `json:"has_tag"`
}

// Quadrant is a priority bucket from the urgent/important decision matrix.
type Quadrant string

const (
	QuadrantDoFirst   Quadrant = "Do First"
	QuadrantSchedule  Quadrant = "Schedule"
	QuadrantDelegate  Quadrant = "Delegate"
	QuadrantEliminate Quadrant = "Eliminate"
)

// EnjoymentBucket groups tasks by how pleasant they are expected to be.
type EnjoymentBucket string

const (
	EnjoymentHigh   EnjoymentBucket = "High"   // 7-10
	EnjoymentMedium EnjoymentBucket = "Medium" // 4-6
	EnjoymentLow    EnjoymentBucket = "Low"    // 0-3
)

// MergedTask is a NormalizedTask whose attributes all resolved, with values
// clamped into range and the derived classifications attached.
type MergedTask struct {
	Source         string     `json:"source"`
	Title          string     `json:"title"`
	Urgency        int        `json:"urgency"`
	Importance     int        `json:"importance"`
	Enjoyment      int        `json:"enjoyment"`
	DurationHours  float64    `json:"duration_hours"`
	DueOrEnd       *time.Time `json:"due_or_end,omitempty"`
	Status         string     `json:"status,omitempty"`
	ProjectContext string     `json:"project_context,omitempty"`
	Description    string     `json:"description,omitempty"`
	Category       string     `json:"category,omitempty"`

	// Quadrant is derived from clamped urgency/importance (threshold 5).
	Quadrant Quadrant `json:"quadrant"`

	// EnjoymentBucket is derived from clamped enjoyment.
	EnjoymentBucket EnjoymentBucket `json:"enjoyment_bucket"`
}
