// Package sync provides the options and result types of a table sync session.
package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

// Options controls one sync or clear session.
type Options struct {
	// Orchestration control
	DryRun  bool          // Build the new body but do not commit it
	Timeout time.Duration // Timeout for the entire session (0 means none beyond transport timeouts)

	// Row handling
	FilterOverride bool            // Insert every candidate, skipping the duplicate check
	Selection      table.Selection // Which table to parse and edit
	Sanitize       bool            // Strip markup from cell values before rendering

	// Output control
	SaveBodyPath string // Write the session body to this local file before any commit is attempted
}

// Apply applies the given options to the sync options.
func (s *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the default sync options: first table, filtering on, commit enabled.
func Defaults() *Options {
	return &Options{
		DryRun:         false,
		Timeout:        0,
		FilterOverride: false,
		Selection:      table.First,
		Sanitize:       false,
		SaveBodyPath:   "",
	}
}

// Option is a function that configures sync Options.
type Option func(*Options)

// Validate checks if the sync options are valid.
func (s *Options) Validate() error {
	if s.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   s.Timeout,
			Message: "timeout must be non-negative",
		}
	}

	if s.SaveBodyPath != "" {
		dir := filepath.Dir(s.SaveBodyPath)
		if dir != "." && dir != "/" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				return &errors.ValidationError{
					Field:   "SaveBodyPath",
					Value:   s.SaveBodyPath,
					Message: fmt.Sprintf("output directory '%s' does not exist", dir),
				}
			}
		}
	}

	return nil
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithTimeout configures the session timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithFilterOverride disables the duplicate check when override is true.
func WithFilterOverride(override bool) Option {
	return func(opts *Options) {
		opts.FilterOverride = override
	}
}

// WithSelection selects the table the session parses and edits.
func WithSelection(sel table.Selection) Option {
	return func(opts *Options) {
		opts.Selection = sel
	}
}

// WithTable selects the table at index i (negative counts from the end).
func WithTable(i int) Option {
	return WithSelection(table.Nth(i))
}

// WithSanitize configures sanitizing of cell values.
func WithSanitize(sanitize bool) Option {
	return func(opts *Options) {
		opts.Sanitize = sanitize
	}
}

// WithSaveBodyPath configures a local file the resulting body is written to.
func WithSaveBodyPath(path string) Option {
	return func(opts *Options) {
		opts.SaveBodyPath = path
	}
}
