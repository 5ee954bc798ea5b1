package tablesync

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/utc"

	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/sync"
	"github.com/agentstation/tablesync/pkg/table"
)

// Sync inserts every row of rows that the selected table of documentID does
// not already hold, then commits the edited body as the next version.
//
// Rows are handled in order. Each candidate is checked against the table as
// it stands after the previous insertions, so identical candidates in one
// call are inserted once. With sync.WithFilterOverride every candidate is
// inserted. When no row is inserted nothing is committed.
//
// On error nothing was changed remotely: the commit is a single replace call.
// Errors raised before any row is handled return a nil Result. When saving
// or committing the edited body fails, the Result is returned with the error
// so callers can see which rows were spliced into the local body;
// Result.Committed is false.
func (c *client) Sync(ctx context.Context, documentID string, rows []table.Row, opts ...sync.Option) (*sync.Result, error) {
	// Step 1: Parse options
	options, err := c.sessionOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Step 2: Setup context with timeout and session logger
	ctx, cancel := withTimeout(ctx, options.Timeout)
	defer cancel()
	ctx, log := c.session(ctx, "sync", documentID)

	log.Info().
		Int("candidates", len(rows)).
		Bool("dry_run", options.DryRun).
		Bool("filter_override", options.FilterOverride).
		Str("table", options.Selection.String()).
		Msg("Starting sync")

	// Step 3: Fetch the document
	doc, err := c.fetch(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Step 4: Parse the table once
	model, err := table.Parse(doc.Body, options.Selection)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("version", doc.Version).
		Int("columns", model.ColumnCount()).
		Int("rows", model.Len()).
		Msg("Parsed table")

	// Step 5: Validate every candidate before touching the body
	if err := validateRows(rows, model.ColumnCount()); err != nil {
		return nil, err
	}

	// Step 6: Insert candidates, refreshing the model as rows go in
	editor := &table.Editor{Selection: options.Selection, Sanitize: options.Sanitize}
	result := &sync.Result{
		DocumentID:      documentID,
		Title:           doc.Title,
		PreviousVersion: doc.Version,
		Version:         doc.Version,
		DryRun:          options.DryRun,
	}

	body := doc.Body
	for _, row := range rows {
		if !options.FilterOverride && model.Contains(row) {
			log.Debug().Strs("row", row).Msg("Skipping duplicate row")
			result.Skipped = append(result.Skipped, row)
			c.hooks.triggerRowSkipped(documentID, row)
			continue
		}

		body, err = editor.InsertRow(body, row, model.ColumnCount())
		if err != nil {
			return nil, err
		}
		model.Append(row)

		log.Debug().Strs("row", row).Msg("Inserted row")
		result.Inserted = append(result.Inserted, row)
		c.hooks.triggerRowInserted(documentID, row)
	}
	result.Body = body

	log.Info().
		Int("inserted", len(result.Inserted)).
		Int("skipped", len(result.Skipped)).
		Msg("Rows processed")

	// Step 7: Commit unless there is nothing to write or this is a dry run
	if len(result.Inserted) == 0 {
		log.Info().Msg("No changes detected")
		return result, nil
	}
	if err := c.finish(ctx, result, options); err != nil {
		return result, err
	}
	return result, nil
}

// validateRows rejects empty candidates and candidates wider than the table.
func validateRows(rows []table.Row, columnCount int) error {
	for i, row := range rows {
		field := fmt.Sprintf("rows[%d]", i)
		switch {
		case len(row) == 0:
			return errors.NewValidationError(field, row, "row has no cells")
		case len(row) > columnCount:
			return errors.NewValidationError(field, row,
				fmt.Sprintf("%d cells exceed %d columns", len(row), columnCount))
		}
	}
	return nil
}

// finish saves the body locally when a path is configured, then commits it
// unless options ask for a dry run. The save comes first, so the file holds
// the session body even when the commit is rejected, and a failed save
// stops the session before anything is written remotely.
func (c *client) finish(ctx context.Context, result *sync.Result, options *sync.Options) error {
	if err := saveBody(options.SaveBodyPath, result.Body); err != nil {
		return err
	}

	if options.DryRun {
		logFrom(ctx).Info().Bool("dry_run", true).Msg("Dry run completed - no changes applied")
		return nil
	}

	if err := c.commit(ctx, result); err != nil {
		return err
	}

	c.hooks.triggerCommitted(*result)
	return nil
}

// commit re-reads the document's current title and version and replaces the
// body as version+1. A version conflict is returned as is, never retried.
func (c *client) commit(ctx context.Context, result *sync.Result) error {
	log := logFrom(ctx)

	current, err := c.fetch(ctx, result.DocumentID)
	if err != nil {
		return err
	}
	next := current.Version + 1

	log.Debug().
		Int("session_version", result.PreviousVersion).
		Int("current_version", current.Version).
		Msg("Committing")

	status, err := c.store.Replace(ctx, result.DocumentID, current.Title, next, result.Body)
	result.StatusCode = status
	if err != nil {
		log.Warn().Err(err).Int("status", status).Msg("Commit failed")
		if errors.IsConflict(err) || errors.IsCommit(err) {
			return err
		}
		return errors.NewCommitError(result.DocumentID, status, "replace failed", err)
	}

	now := utc.Now()
	result.Title = current.Title
	result.PreviousVersion = current.Version
	result.Version = next
	result.Committed = true
	result.CommittedAt = &now

	log.Info().
		Int("version", next).
		Int("status", status).
		Msg("Sync completed successfully")
	return nil
}

// saveBody writes body to path when path is set.
func saveBody(path, body string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(body), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
