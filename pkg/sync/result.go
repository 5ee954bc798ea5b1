package sync

import (
	"fmt"
	"strings"

	"github.com/agentstation/utc"

	"github.com/agentstation/tablesync/pkg/table"
)

// Result represents the outcome of one sync or clear session.
type Result struct {
	// Document identity
	DocumentID string `json:"document_id" yaml:"document_id"`
	Title      string `json:"title" yaml:"title"`

	// Versions: PreviousVersion is the version the commit was built on,
	// Version the version written (equal to PreviousVersion when nothing was committed).
	PreviousVersion int `json:"previous_version" yaml:"previous_version"`
	Version         int `json:"version" yaml:"version"`
	StatusCode      int `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	// Row outcomes, in candidate order
	Inserted []table.Row `json:"inserted" yaml:"inserted"`
	Skipped  []table.Row `json:"skipped" yaml:"skipped"`
	Cleared  int         `json:"cleared,omitempty" yaml:"cleared,omitempty"`

	// Operation metadata
	Committed   bool      `json:"committed" yaml:"committed"`
	DryRun      bool      `json:"dry_run" yaml:"dry_run"`
	CommittedAt *utc.Time `json:"committed_at,omitempty" yaml:"committed_at,omitempty"`

	// Body is the edited markup. It is set whether or not it was committed.
	Body string `json:"-" yaml:"-"`
}

// HasChanges returns true if the session produced a different body.
func (r *Result) HasChanges() bool {
	return len(r.Inserted) > 0 || r.Cleared > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if !r.HasChanges() {
		if len(r.Skipped) > 0 {
			return fmt.Sprintf("No changes: %d duplicate rows skipped", len(r.Skipped))
		}
		return "No changes detected"
	}

	var parts []string
	switch {
	case r.DryRun:
		parts = append(parts, "(Dry run)")
	case r.Committed:
		parts = append(parts, fmt.Sprintf("(version %d -> %d)", r.PreviousVersion, r.Version))
	default:
		parts = append(parts, "(not committed)")
	}

	var summary string
	if r.Cleared > 0 {
		summary = fmt.Sprintf("%d rows cleared from document %s", r.Cleared, r.DocumentID)
	} else {
		summary = fmt.Sprintf("%d rows inserted, %d skipped in document %s",
			len(r.Inserted), len(r.Skipped), r.DocumentID)
	}
	return summary + " " + strings.Join(parts, " ")
}
