// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

const defaultWindowDays = 14

// CalendarServiceAccount fetches events with a Google service-account key.
// The first and preferred live tier for calendar data.
type CalendarServiceAccount struct {
	// CredentialsFile is the service-account JSON key path.
	CredentialsFile string

	// Calendars lists the calendar display names to fetch.
	Calendars []string

	// WindowDays bounds the fetch window ahead of Now (default 14).
	WindowDays int

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *CalendarServiceAccount) Name() string { return "service_account" }

func (s *CalendarServiceAccount) Fetch(ctx context.Context) ([]types.RawRecord, error) {
	if s.CredentialsFile == "" {
		return nil, fmt.Errorf("no service-account credentials configured")
	}
	srv, err := calendar.NewService(ctx,
		option.WithCredentialsFile(s.CredentialsFile),
		option.WithScopes(calendar.CalendarReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return listEvents(srv, s.Calendars, s.WindowDays, s.Now)
}

// CalendarCachedToken fetches events with OAuth client secrets plus a token
// cached by a previous interactive authorization. It never prompts: a
// missing or unreadable token is a failure, and the chain advances.
type CalendarCachedToken struct {
	// CredentialsFile is the OAuth client-secrets JSON path.
	CredentialsFile string

	// TokenFile is the cached token JSON path.
	TokenFile string

	// Calendars lists the calendar display names to fetch.
	Calendars []string

	// WindowDays bounds the fetch window ahead of Now (default 14).
	WindowDays int

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *CalendarCachedToken) Name() string { return "cached_token" }

func (s *CalendarCachedToken) Fetch(ctx context.Context) ([]types.RawRecord, error) {
	b, err := os.ReadFile(s.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets: %w", err)
	}
	config, err := google.ConfigFromJSON(b, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secrets: %w", err)
	}

	tok, err := tokenFromFile(s.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("no cached token: %w", err)
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return listEvents(srv, s.Calendars, s.WindowDays, s.Now)
}

// tokenFromFile reads an oauth2.Token from a JSON file.
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decoding token from %s: %w", path, err)
	}
	return tok, nil
}

// listEvents fetches upcoming events from each named calendar and converts
// them to raw records, tagging each with its calendar name.
func listEvents(srv *calendar.Service, names []string, windowDays int, now func() time.Time) ([]types.RawRecord, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no calendars configured")
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	if now == nil {
		now = time.Now
	}

	list, err := srv.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}
	ids := make(map[string]string, len(list.Items))
	for _, item := range list.Items {
		ids[item.Summary] = item.Id
	}

	timeMin := now()
	timeMax := timeMin.AddDate(0, 0, windowDays)

	var records []types.RawRecord
	var missing []string
	for _, name := range names {
		id, ok := ids[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		events, err := srv.Events.List(id).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Do()
		if err != nil {
			return nil, fmt.Errorf("listing events for %s: %w", name, err)
		}
		for _, ev := range events.Items {
			records = append(records, eventToRecord(ev, name))
		}
	}

	if len(records) == 0 && len(missing) == len(names) {
		return nil, fmt.Errorf("none of the configured calendars found: %v", missing)
	}
	return records, nil
}

// eventToRecord converts a calendar event. Unparseable timestamps become
// nil rather than failing the batch.
func eventToRecord(ev *calendar.Event, calendarName string) types.RawRecord {
	start, allDay := eventTime(ev.Start)
	end, _ := eventTime(ev.End)
	return types.RawRecord{
		ID:          ev.Id,
		Title:       ev.Summary,
		Description: ev.Description,
		Start:       start,
		End:         end,
		AllDay:      allDay,
		Status:      "Scheduled",
		Group:       calendarName,
	}
}

// eventTime resolves an event boundary, reporting whether it was a
// date-only (all-day) value.
func eventTime(dt *calendar.EventDateTime) (*time.Time, bool) {
	if dt == nil {
		return nil, false
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return nil, false
		}
		return &t, false
	}
	if dt.Date != "" {
		t, err := time.Parse("2006-01-02", dt.Date)
		if err != nil {
			return nil, false
		}
		return &t, true
	}
	return nil, false
}
