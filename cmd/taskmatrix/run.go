// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/taskmatrix/internal/export"
	"github.com/pdiddy/taskmatrix/internal/merge"
	"github.com/pdiddy/taskmatrix/internal/normalize"
	"github.com/pdiddy/taskmatrix/internal/secrets"
	"github.com/pdiddy/taskmatrix/internal/source"
	"github.com/pdiddy/taskmatrix/internal/summary"
	"github.com/pdiddy/taskmatrix/pkg/types"
)

const (
	defaultAttemptTimeout = 60 * time.Second
	defaultHTTPTimeout    = 30 * time.Second
	defaultUserAgent      = "taskmatrix/0.1"
	defaultCachePath      = "taskmatrix-cache.db"
	defaultImportDir      = "imports"
	defaultExportDir      = "output"

	sourceCalendar = "calendar"
	sourceCards    = "cards"
)

// liveStrategies name the tiers that talk to an upstream API. Only their
// results refresh the record cache; replaying a cache or fixture back into
// the cache would let stale data masquerade as fresh forever.
var liveStrategies = map[string]bool{
	"service_account": true,
	"cached_token":    true,
	"api_key":         true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full extraction and classification pipeline",
	Long: `Run acquires raw records for both sources through their fallback
chains, normalizes them into scored tasks, merges and classifies the result
into Eisenhower quadrants, prints a summary, and writes CSV exports plus an
acquisition report to the export directory.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().String("today", "", "reference date for urgency inference (YYYY-MM-DD, default: now)")
	runCmd.Flags().Bool("json", false, "print tasks and summary as JSON instead of a table")
	runCmd.Flags().Bool("no-export", false, "skip writing CSV exports and the acquisition report")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	today := time.Now()
	if s, _ := cmd.Flags().GetString("today"); s != "" {
		today, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("parsing --today: %w", err)
		}
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	noExport, _ := cmd.Flags().GetBool("no-export")

	cache, err := source.OpenCache(cfg.Sources.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record cache unavailable: %v\n", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	ctx := cmd.Context()
	calRes := source.Acquire(ctx, sourceCalendar,
		calendarChain(cfg, cache), cfg.Sources.AttemptTimeout, os.Stderr)
	cardRes := source.Acquire(ctx, sourceCards,
		trelloChain(cfg, cache), cfg.Sources.AttemptTimeout, os.Stderr)

	refreshCache(ctx, cache, calRes)
	refreshCache(ctx, cache, cardRes)

	n := normalize.New(today, cfg.Normalize.Keywords)
	calTasks := n.Normalize(types.SourceCalendar, calRes.Records)
	cardTasks := n.Normalize(types.SourceTaskCard, cardRes.Records)

	merged := merge.Merge(calTasks, cardTasks)
	sum := summary.Summarize(merged)

	if asJSON {
		if err := summary.FormatJSON(merged, sum, os.Stdout); err != nil {
			return err
		}
	} else {
		summary.FormatTable(merged, sum, os.Stdout)
	}

	if noExport {
		return nil
	}
	return writeExports(cfg, merged, sum, []source.Result{calRes, cardRes})
}

// loadConfig unmarshals the viper state into a PipelineConfig, fills
// defaults, and overlays credentials from .secrets/.
func loadConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Sources.AttemptTimeout == 0 {
		cfg.Sources.AttemptTimeout = defaultAttemptTimeout
	}
	if cfg.Sources.CachePath == "" {
		cfg.Sources.CachePath = defaultCachePath
	}
	if cfg.Sources.ImportDir == "" {
		cfg.Sources.ImportDir = defaultImportDir
	}
	if len(cfg.Sources.CalendarStrategies) == 0 {
		cfg.Sources.CalendarStrategies = []string{
			"service_account", "cached_token", "csv", "manual", "cache", "mock",
		}
	}
	if len(cfg.Sources.TrelloStrategies) == 0 {
		cfg.Sources.TrelloStrategies = []string{
			"api_key", "csv", "manual", "cache", "mock",
		}
	}
	if cfg.Trello.Timeout == 0 {
		cfg.Trello.Timeout = defaultHTTPTimeout
	}
	if cfg.Trello.UserAgent == "" {
		cfg.Trello.UserAgent = defaultUserAgent
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaultExportDir
	}

	cfg.Trello.APIKey = secretDefault(secrets.TrelloAPIKey, cfg.Trello.APIKey)
	cfg.Trello.Token = secretDefault(secrets.TrelloToken, cfg.Trello.Token)

	return cfg, nil
}

// calendarChain builds the ordered fallback strategies for calendar data.
func calendarChain(cfg types.PipelineConfig, cache *source.Cache) []source.Strategy {
	var chain []source.Strategy
	for _, name := range cfg.Sources.CalendarStrategies {
		switch name {
		case "service_account":
			chain = append(chain, &source.CalendarServiceAccount{
				CredentialsFile: cfg.Calendar.ServiceAccountFile,
				Calendars:       cfg.Calendar.Calendars,
				WindowDays:      cfg.Calendar.WindowDays,
			})
		case "cached_token":
			chain = append(chain, &source.CalendarCachedToken{
				CredentialsFile: cfg.Calendar.CredentialsFile,
				TokenFile:       cfg.Calendar.TokenFile,
				Calendars:       cfg.Calendar.Calendars,
				WindowDays:      cfg.Calendar.WindowDays,
			})
		case "csv":
			chain = append(chain, &source.CSVImport{
				Path: filepath.Join(cfg.Sources.ImportDir, "calendar.csv"),
			})
		case "manual":
			chain = append(chain, &source.ManualTemplate{
				Path: filepath.Join(cfg.Sources.ImportDir, "calendar-manual.csv"),
			})
		case "cache":
			chain = appendCacheTier(chain, cache, sourceCalendar)
		case "mock":
			chain = append(chain, &source.MockData{
				Kind:        types.SourceCalendar,
				FixturePath: cfg.Sources.MockFixture,
			})
		default:
			fmt.Fprintf(os.Stderr, "warning: unknown calendar strategy %q, skipping\n", name)
		}
	}
	return chain
}

// trelloChain builds the ordered fallback strategies for task-card data.
func trelloChain(cfg types.PipelineConfig, cache *source.Cache) []source.Strategy {
	var chain []source.Strategy
	for _, name := range cfg.Sources.TrelloStrategies {
		switch name {
		case "api_key":
			chain = append(chain, &source.TrelloAPIKey{
				Key:       cfg.Trello.APIKey,
				Token:     cfg.Trello.Token,
				Board:     cfg.Trello.Board,
				Client:    &http.Client{Timeout: cfg.Trello.Timeout},
				UserAgent: cfg.Trello.UserAgent,
				Log:       os.Stderr,
			})
		case "csv":
			chain = append(chain, &source.CSVImport{
				Path: filepath.Join(cfg.Sources.ImportDir, "cards.csv"),
			})
		case "manual":
			chain = append(chain, &source.ManualTemplate{
				Path: filepath.Join(cfg.Sources.ImportDir, "cards-manual.csv"),
			})
		case "cache":
			chain = appendCacheTier(chain, cache, sourceCards)
		case "mock":
			chain = append(chain, &source.MockData{
				Kind:        types.SourceTaskCard,
				FixturePath: cfg.Sources.MockFixture,
			})
		default:
			fmt.Fprintf(os.Stderr, "warning: unknown trello strategy %q, skipping\n", name)
		}
	}
	return chain
}

func appendCacheTier(chain []source.Strategy, cache *source.Cache, src string) []source.Strategy {
	if cache == nil {
		return chain
	}
	return append(chain, cache.Strategy(src))
}

// refreshCache stores records won by a live tier so the cache strategy has
// something to serve next time the network is down.
func refreshCache(ctx context.Context, cache *source.Cache, res source.Result) {
	if cache == nil || !liveStrategies[res.Strategy] {
		return
	}
	if err := cache.Put(ctx, res.Source, res.Records, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: caching %s records: %v\n", res.Source, err)
	}
}

func writeExports(cfg types.PipelineConfig, tasks []types.MergedTask, sum summary.Summary, results []source.Result) error {
	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := export.WriteTasks(filepath.Join(cfg.Export.Dir, "tasks.csv"), tasks); err != nil {
		return err
	}
	if err := export.WriteSummary(filepath.Join(cfg.Export.Dir, "summary.csv"), sum); err != nil {
		return err
	}
	reportPath := filepath.Join(cfg.Export.Dir, "acquisition-report.yaml")
	if err := source.WriteReport(reportPath, results, time.Now()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exports written to %s\n", cfg.Export.Dir)
	return nil
}
