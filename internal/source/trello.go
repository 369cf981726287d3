// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/taskmatrix/internal/httputil"
	"github.com/pdiddy/taskmatrix/pkg/types"
)

// trelloAPIBase is a var so tests can point it at a local server.
var trelloAPIBase = "https://api.trello.com"

// TrelloAPIKey fetches open cards from one board via the Trello REST API
// using an API key and member token.
type TrelloAPIKey struct {
	Key   string
	Token string

	// Board is the display name of the board to pull cards from.
	Board string

	// Client defaults to http.DefaultClient.
	Client *http.Client

	// UserAgent is sent with every request.
	UserAgent string

	// MaxRetries bounds throttle retries per request (0 means default).
	MaxRetries int

	// Log receives retry notices; nil means io.Discard.
	Log io.Writer
}

func (s *TrelloAPIKey) Name() string { return "api_key" }

// Trello REST JSON shapes, reduced to the fields the pipeline reads.
type trelloBoard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type trelloList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type trelloLabel struct {
	Name string `json:"name"`
}

type trelloCard struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Desc   string        `json:"desc"`
	Due    string        `json:"due"`
	Closed bool          `json:"closed"`
	IDList string        `json:"idList"`
	Labels []trelloLabel `json:"labels"`
}

func (s *TrelloAPIKey) Fetch(ctx context.Context) ([]types.RawRecord, error) {
	if s.Key == "" || s.Token == "" {
		return nil, fmt.Errorf("no Trello credentials configured")
	}
	if s.Board == "" {
		return nil, fmt.Errorf("no Trello board configured")
	}

	var boards []trelloBoard
	if err := s.get(ctx, "/1/members/me/boards", url.Values{"fields": {"name"}}, &boards); err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	var boardID string
	for _, b := range boards {
		if b.Name == s.Board {
			boardID = b.ID
			break
		}
	}
	if boardID == "" {
		return nil, fmt.Errorf("board %q not found", s.Board)
	}

	var lists []trelloList
	if err := s.get(ctx, "/1/boards/"+boardID+"/lists", url.Values{"fields": {"name"}}, &lists); err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	listNames := make(map[string]string, len(lists))
	for _, l := range lists {
		listNames[l.ID] = l.Name
	}

	var cards []trelloCard
	if err := s.get(ctx, "/1/boards/"+boardID+"/cards",
		url.Values{"fields": {"name,desc,due,closed,idList,labels"}}, &cards); err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	var records []types.RawRecord
	for _, c := range cards {
		if c.Closed {
			continue
		}
		records = append(records, cardToRecord(c, s.Board, listNames))
	}
	return records, nil
}

// cardToRecord converts a card, mapping its list name to status and the
// first label name to category. A malformed due date becomes nil.
func cardToRecord(c trelloCard, board string, listNames map[string]string) types.RawRecord {
	r := types.RawRecord{
		ID:          c.ID,
		Title:       c.Name,
		Description: c.Desc,
		Status:      listNames[c.IDList],
		Group:       board,
	}
	if c.Due != "" {
		if t, err := time.Parse(time.RFC3339, c.Due); err == nil {
			r.Due = &t
		}
	}
	if len(c.Labels) > 0 {
		r.Category = c.Labels[0].Name
	}
	return r
}

// get performs an authenticated GET against the Trello API and decodes
// the JSON response into out.
func (s *TrelloAPIKey) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", s.Key)
	params.Set("token", s.Token)

	req, err := http.NewRequest(http.MethodGet, trelloAPIBase+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	log := s.Log
	if log == nil {
		log = io.Discard
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, s.MaxRetries, log)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
