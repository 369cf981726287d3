// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by strategies that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "taskmatrix/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CalendarConfig holds settings for the calendar source.
type CalendarConfig struct {
	// Calendars lists the calendar display names to pull events from.
	Calendars []string `json:"calendars" yaml:"calendars" mapstructure:"calendars"`

	// ServiceAccountFile is the path to a Google service-account JSON key.
	ServiceAccountFile string `json:"service_account_file,omitempty" yaml:"service_account_file,omitempty" mapstructure:"service_account_file"`

	// CredentialsFile is the OAuth client-secrets JSON used with a
	// previously cached token.
	CredentialsFile string `json:"credentials_file,omitempty" yaml:"credentials_file,omitempty" mapstructure:"credentials_file"`

	// TokenFile is the cached OAuth token location. The cached-token
	// strategy never prompts; no token here means the strategy fails
	// and the chain advances.
	TokenFile string `json:"token_file,omitempty" yaml:"token_file,omitempty" mapstructure:"token_file"`

	// WindowDays bounds how far ahead of today events are fetched
	// (default 14).
	WindowDays int `json:"window_days" yaml:"window_days" mapstructure:"window_days"`
}

// TrelloConfig holds settings for the task-card source.
type TrelloConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Board is the display name of the board to pull cards from.
	Board string `json:"board" yaml:"board" mapstructure:"board"`

	// APIKey and Token authenticate against the Trello REST API. Usually
	// loaded from .secrets/ rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
	Token  string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`
}

// NormalizeConfig holds settings for the record normalizer.
type NormalizeConfig struct {
	// Keywords keeps untagged calendar records whose title or description
	// matches any entry (case-sensitive; entries that compile as regular
	// expressions match as such, anything else as a plain substring).
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// SourcesConfig selects and orders acquisition strategies per logical source.
type SourcesConfig struct {
	// CalendarStrategies is the fallback order for calendar data
	// (default: service_account, cached_token, csv, manual, cache, mock).
	CalendarStrategies []string `json:"calendar_strategies" yaml:"calendar_strategies" mapstructure:"calendar_strategies"`

	// TrelloStrategies is the fallback order for task-card data
	// (default: api_key, csv, manual, cache, mock).
	TrelloStrategies []string `json:"trello_strategies" yaml:"trello_strategies" mapstructure:"trello_strategies"`

	// AttemptTimeout bounds each strategy attempt (default 60s).
	AttemptTimeout time.Duration `json:"attempt_timeout" yaml:"attempt_timeout" mapstructure:"attempt_timeout"`

	// CachePath is the SQLite record cache refreshed by live strategies
	// and read by the cache tier (default "taskmatrix-cache.db").
	CachePath string `json:"cache_path" yaml:"cache_path" mapstructure:"cache_path"`

	// ImportDir holds csv imports and manual templates
	// (default "imports").
	ImportDir string `json:"import_dir" yaml:"import_dir" mapstructure:"import_dir"`

	// MockFixture optionally points the mock tier at a YAML record file
	// instead of the built-in sample set.
	MockFixture string `json:"mock_fixture,omitempty" yaml:"mock_fixture,omitempty" mapstructure:"mock_fixture"`
}

// ExportConfig holds settings for flat-file exports.
type ExportConfig struct {
	// Dir is the directory exports and the acquisition report are
	// written to (default "output").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// PipelineConfig groups all stage configurations for one pipeline run.
type PipelineConfig struct {
	Calendar  CalendarConfig  `json:"calendar" yaml:"calendar" mapstructure:"calendar"`
	Trello    TrelloConfig    `json:"trello" yaml:"trello" mapstructure:"trello"`
	Normalize NormalizeConfig `json:"normalize" yaml:"normalize" mapstructure:"normalize"`
	Sources   SourcesConfig   `json:"sources" yaml:"sources" mapstructure:"sources"`
	Export    ExportConfig    `json:"export" yaml:"export" mapstructure:"export"`
}
