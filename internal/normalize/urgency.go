// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "time"

// InferUrgency derives a fallback urgency from a due date when no explicit
// tag urgency exists. Overdue or due today scores the maximum; urgency
// falls off in steps as the due date moves out.
//
//	days until due:  <=0  <=1  <=3  <=7  <=14  >14
//	urgency:          10    9    7    5    3     1
func InferUrgency(due, today time.Time) int {
	days := daysUntil(due, today)
	switch {
	case days <= 0:
		return 10
	case days <= 1:
		return 9
	case days <= 3:
		return 7
	case days <= 7:
		return 5
	case days <= 14:
		return 3
	default:
		return 1
	}
}

// daysUntil returns the whole-day distance from today to due, negative when
// due lies in the past. Both instants are reduced to calendar dates first so
// time-of-day never shifts the bucket.
func daysUntil(due, today time.Time) int {
	d := date(due)
	t := date(today)
	return int(d.Sub(t).Hours() / 24)
}

func date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
