// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tag extracts the four task attributes encoded in a description
// via the #U<d>I<d>E<d>D<d>h convention.
package tag

import (
	"regexp"
	"strconv"
)

// pattern matches the inline attribute tag, e.g. "#U8I9E3D4h". Letters are
// case-sensitive and the trailing hour marker must be lowercase.
var pattern = regexp.MustCompile(`#U(\d+)I(\d+)E(\d+)D(\d+)h`)

// Tag holds the four attributes recovered from a description. Values are
// taken verbatim from the tag; range clamping happens in the merger.
type Tag struct {
	Urgency       int
	Importance    int
	Enjoyment     int
	DurationHours int
}

// Parse scans text for the first attribute tag. It returns the parsed tag
// and true on a match, or a zero Tag and false when text is empty or
// carries no tag. Only the first occurrence is recognized.
func Parse(text string) (Tag, bool) {
	if text == "" {
		return Tag{}, false
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Tag{}, false
	}

	// The digit groups always parse: the pattern admits decimal digits only.
	u, _ := strconv.Atoi(m[1])
	i, _ := strconv.Atoi(m[2])
	e, _ := strconv.Atoi(m[3])
	d, _ := strconv.Atoi(m[4])

	return Tag{Urgency: u, Importance: i, Enjoyment: e, DurationHours: d}, true
}
