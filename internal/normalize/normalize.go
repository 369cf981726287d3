// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps source-shaped raw records into the canonical task
// schema, applying the tag parser, the keyword filter, and per-source
// defaults and fallbacks.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/taskmatrix/internal/tag"
	"github.com/pdiddy/taskmatrix/pkg/types"
)

// Per-source defaults applied when a record carries no tag.
const (
	defaultImportance   = 5
	defaultEnjoyment    = 5
	defaultCardDuration = 2.0
	trelloSourceLabel   = "Trello"
	calendarSourceLabel = "Calendar"
	defaultCardStatus   = "Open"
	defaultEventStatus  = "Scheduled"
	allDayWindowStartHr = 9
	allDayWindowEndHr   = 17
)

// matcher is one compiled keyword-filter entry. Entries that compile as
// regular expressions match as such; anything else falls back to a
// case-sensitive substring test.
type matcher struct {
	re      *regexp.Regexp
	literal string
}

func (m matcher) match(s string) bool {
	if m.re != nil {
		return m.re.MatchString(s)
	}
	return m.literal != "" && strings.Contains(s, m.literal)
}

// Normalizer turns raw records into NormalizedTasks. Today is injected so
// urgency inference is reproducible in tests.
type Normalizer struct {
	today    time.Time
	keywords []matcher
}

// New builds a Normalizer with the given reference date and keyword filter.
func New(today time.Time, keywords []string) *Normalizer {
	n := &Normalizer{today: today}
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if re, err := regexp.Compile(k); err == nil {
			n.keywords = append(n.keywords, matcher{re: re})
		} else {
			n.keywords = append(n.keywords, matcher{literal: k})
		}
	}
	return n
}

// Normalize converts recs of the given source kind, dropping records that
// fail the per-source keep rules. Input order is preserved.
func (n *Normalizer) Normalize(kind types.SourceKind, recs []types.RawRecord) []types.NormalizedTask {
	var out []types.NormalizedTask
	for _, r := range recs {
		var t *types.NormalizedTask
		switch kind {
		case types.SourceTaskCard:
			t = n.normalizeCard(r)
		default:
			t = n.normalizeEvent(r)
		}
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// normalizeEvent handles calendar-kind records. An event is kept only when
// it carries a tag or its title/description matches the keyword filter.
func (n *Normalizer) normalizeEvent(r types.RawRecord) *types.NormalizedTask {
	tg, hasTag := tag.Parse(r.Description)
	if !hasTag && !n.keywordMatch(r.Title) && !n.keywordMatch(r.Description) {
		return nil
	}

	t := &types.NormalizedTask{
		Source:         coalesce(r.Group, calendarSourceLabel),
		Title:          r.Title,
		Status:         coalesce(r.Status, defaultEventStatus),
		ProjectContext: strings.TrimSpace(coalesce(r.Group, "") + " Calendar"),
		Description:    r.Description,
		Category:       r.Category,
		DueOrEnd:       r.End,
		HasTag:         hasTag,
	}

	if hasTag {
		t.Urgency = intPtr(tg.Urgency)
		t.Importance = intPtr(tg.Importance)
		t.Enjoyment = intPtr(tg.Enjoyment)
		t.DurationHours = floatPtr(float64(tg.DurationHours))
	} else if d, ok := eventDuration(r); ok {
		t.DurationHours = floatPtr(d)
	}
	return t
}

// normalizeCard handles task-card records. Untagged cards fall back to
// due-date urgency inference and fixed defaults; a card with neither a tag
// nor a resolvable urgency is dropped.
func (n *Normalizer) normalizeCard(r types.RawRecord) *types.NormalizedTask {
	tg, hasTag := tag.Parse(r.Description)

	t := &types.NormalizedTask{
		Source:         trelloSourceLabel,
		Title:          r.Title,
		Status:         coalesce(r.Status, defaultCardStatus),
		ProjectContext: r.Group,
		Description:    r.Description,
		Category:       r.Category,
		DueOrEnd:       r.Due,
		HasTag:         hasTag,
	}

	if hasTag {
		t.Urgency = intPtr(tg.Urgency)
		t.Importance = intPtr(tg.Importance)
		t.Enjoyment = intPtr(tg.Enjoyment)
		t.DurationHours = floatPtr(float64(tg.DurationHours))
		return t
	}

	if r.Due == nil {
		return nil
	}
	t.Urgency = intPtr(InferUrgency(*r.Due, n.today))
	t.Importance = intPtr(defaultImportance)
	t.Enjoyment = intPtr(defaultEnjoyment)
	t.DurationHours = floatPtr(defaultCardDuration)
	return t
}

func (n *Normalizer) keywordMatch(s string) bool {
	if s == "" {
		return false
	}
	for _, m := range n.keywords {
		if m.match(s) {
			return true
		}
	}
	return false
}

// eventDuration computes an untagged event's wall-clock duration in hours.
// All-day entries are measured against a default 09:00-17:00 working
// window on the start date.
func eventDuration(r types.RawRecord) (float64, bool) {
	if r.Start == nil {
		return 0, false
	}
	if r.AllDay {
		return float64(allDayWindowEndHr - allDayWindowStartHr), true
	}
	if r.End == nil {
		return 0, false
	}
	return r.End.Sub(*r.Start).Hours(), true
}

func coalesce(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
