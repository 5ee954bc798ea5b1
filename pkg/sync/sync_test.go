package sync

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := Defaults()
		assert.False(t, opts.DryRun)
		assert.False(t, opts.FilterOverride)
		assert.Equal(t, table.First, opts.Selection)
		assert.NoError(t, opts.Validate())
	})

	t.Run("apply", func(t *testing.T) {
		opts := Defaults().Apply(
			WithDryRun(true),
			WithFilterOverride(true),
			WithTable(-1),
			WithSanitize(true),
			WithTimeout(time.Minute),
			WithSaveBodyPath(filepath.Join(t.TempDir(), "body.html")),
		)
		assert.True(t, opts.DryRun)
		assert.True(t, opts.FilterOverride)
		assert.Equal(t, table.Last, opts.Selection)
		assert.True(t, opts.Sanitize)
		assert.Equal(t, time.Minute, opts.Timeout)
		assert.NoError(t, opts.Validate())
	})
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name  string
		opts  *Options
		field string
	}{
		{"negative timeout", Defaults().Apply(WithTimeout(-time.Second)), "Timeout"},
		{"missing save dir", Defaults().Apply(WithSaveBodyPath("/definitely/not/here/body.html")), "SaveBodyPath"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)
			var vErr *errors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestResultSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"nothing", Result{DocumentID: "1"}, "No changes detected"},
		{"all skipped", Result{DocumentID: "1", Skipped: []table.Row{{"a"}, {"b"}}}, "No changes: 2 duplicate rows skipped"},
		{
			"committed",
			Result{DocumentID: "1", Inserted: []table.Row{{"a"}}, Skipped: []table.Row{{"b"}}, Committed: true, PreviousVersion: 4, Version: 5},
			"1 rows inserted, 1 skipped in document 1 (version 4 -> 5)",
		},
		{
			"dry run",
			Result{DocumentID: "1", Inserted: []table.Row{{"a"}}, DryRun: true},
			"1 rows inserted, 0 skipped in document 1 (Dry run)",
		},
		{
			"cleared",
			Result{DocumentID: "9", Cleared: 3},
			"3 rows cleared from document 9 (not committed)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Summary())
		})
	}
}
