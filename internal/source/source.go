// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source acquires raw task records from external systems. Each
// logical source (calendar, task tracker) is served by an ordered chain of
// acquisition strategies; the first strategy that yields records wins and
// the rest are never tried.
package source

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

// Strategy is one way of obtaining records for a logical source: a live
// API in some authentication mode, a local file, the record cache, or
// built-in mock data.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context) ([]types.RawRecord, error)
}

// Attempt records the outcome of trying one strategy.
type Attempt struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Records  int    `json:"records" yaml:"records"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result is the outcome of running a fallback chain for one logical
// source. Strategy names the winner and is empty when every tier failed;
// Records is then empty as well, never nil-dereferencing the pipeline.
type Result struct {
	Source   string            `json:"source" yaml:"source"`
	Strategy string            `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Attempts []Attempt         `json:"attempts" yaml:"attempts"`
	Records  []types.RawRecord `json:"-" yaml:"-"`
}

// Acquire tries each strategy in order until one returns records. A
// strategy that errors or comes back empty is logged as a failed attempt
// and the chain advances; at most one strategy contributes data. Each
// attempt is bounded by attemptTimeout when it is positive. Acquire never
// fails: exhausting the chain yields an empty Result with the attempt log
// as diagnostics.
func Acquire(ctx context.Context, source string, strategies []Strategy, attemptTimeout time.Duration, w io.Writer) Result {
	result := Result{Source: source}

	for _, s := range strategies {
		records, err := fetchBounded(ctx, s, attemptTimeout)
		if err != nil {
			fmt.Fprintf(w, "warning: %s: strategy %s failed: %v\n", source, s.Name(), err)
			result.Attempts = append(result.Attempts, Attempt{Strategy: s.Name(), Error: err.Error()})
			continue
		}
		if len(records) == 0 {
			fmt.Fprintf(w, "warning: %s: strategy %s returned no records\n", source, s.Name())
			result.Attempts = append(result.Attempts, Attempt{Strategy: s.Name(), Error: "no records"})
			continue
		}

		fmt.Fprintf(w, "%s: %d records via %s\n", source, len(records), s.Name())
		result.Attempts = append(result.Attempts, Attempt{Strategy: s.Name(), Records: len(records)})
		result.Strategy = s.Name()
		result.Records = records
		return result
	}

	fmt.Fprintf(w, "warning: %s: all %d strategies exhausted, no data\n", source, len(strategies))
	return result
}

func fetchBounded(ctx context.Context, s Strategy, timeout time.Duration) ([]types.RawRecord, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.Fetch(ctx)
}
