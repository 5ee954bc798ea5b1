package tablesync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync/pkg/logging"
	"github.com/agentstation/tablesync/pkg/sync"
	"github.com/agentstation/tablesync/pkg/table"
)

// Clear removes every body row of the selected table of documentID and keeps
// the header row. The result is committed only when deploy is true; otherwise
// the cleared body is returned in Result.Body. As with Sync, a failed save or
// commit returns the Result alongside the error.
func (c *client) Clear(ctx context.Context, documentID string, deploy bool, opts ...sync.Option) (*sync.Result, error) {
	options, err := c.sessionOptions(opts...)
	if err != nil {
		return nil, err
	}
	if !deploy {
		options.DryRun = true
	}

	ctx, cancel := withTimeout(ctx, options.Timeout)
	defer cancel()
	ctx, log := c.session(ctx, "clear", documentID)

	doc, err := c.fetch(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// Parsing confirms the table and its header exist before anything is cut.
	model, err := table.Parse(doc.Body, options.Selection)
	if err != nil {
		return nil, err
	}

	editor := &table.Editor{Selection: options.Selection}
	body, err := editor.ClearBody(doc.Body)
	if err != nil {
		return nil, err
	}

	result := &sync.Result{
		DocumentID:      documentID,
		Title:           doc.Title,
		PreviousVersion: doc.Version,
		Version:         doc.Version,
		Cleared:         model.Len(),
		DryRun:          options.DryRun,
		Body:            body,
	}

	log.Info().
		Int("cleared", result.Cleared).
		Bool("deploy", deploy).
		Msg("Table body cleared")

	if result.Cleared == 0 {
		log.Info().Msg("No changes detected")
		return result, nil
	}
	if err := c.finish(ctx, result, options); err != nil {
		return result, err
	}
	return result, nil
}

// logFrom returns the session logger stored in ctx.
func logFrom(ctx context.Context) *zerolog.Logger {
	return logging.FromContext(ctx)
}
