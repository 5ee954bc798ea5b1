// Package tablesync keeps a table inside a versioned remote document in step
// with rows supplied by a caller.
//
// A session fetches the document, parses the selected table, inserts every
// candidate row that is not already present (matching on the columns the
// candidate supplies), and writes the edited body back as the next version.
// Markup outside the edited table is preserved byte for byte.
//
// Example usage:
//
//	store, err := confluence.New(confluence.Config{
//	    BaseURL:  "https://example.atlassian.net/wiki",
//	    Username: "kate@example.com",
//	    Token:    os.Getenv("TABLESYNC_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ts, err := tablesync.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ts.OnRowInserted(func(documentID string, row table.Row) {
//	    log.Printf("added %v to %s", row, documentID)
//	})
//
//	result, err := ts.Sync(ctx, "377094384", []table.Row{
//	    {"Cathy Chatterly", "Public Speaker"},
//	    {"Rod Handler"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package tablesync

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync/pkg/document"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/logging"
	"github.com/agentstation/tablesync/pkg/sync"
	"github.com/agentstation/tablesync/pkg/table"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Syncer inserts missing rows into a document table.
type Syncer interface {
	Sync(ctx context.Context, documentID string, rows []table.Row, opts ...sync.Option) (*sync.Result, error)
}

// Clearer removes the body rows of a document table.
type Clearer interface {
	// Clear builds the body with every body row of the selected table removed.
	// The header row is kept. The body is committed only when deploy is true.
	Clear(ctx context.Context, documentID string, deploy bool, opts ...sync.Option) (*sync.Result, error)
}

// Reader reads a document table without changing it.
type Reader interface {
	Table(ctx context.Context, documentID string, opts ...sync.Option) (*table.Model, error)
}

// Client syncs tables in documents held by a document.Store.
type Client interface {
	Syncer
	Clearer
	Reader

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
// It holds no per-session state; every call owns its own buffer.
type client struct {
	options *options
	store   document.Store
	hooks   *hooks
}

// New creates a new Client bound to store.
func New(store document.Store, opts ...Option) (Client, error) {
	if store == nil {
		return nil, errors.NewValidationError("store", nil, "document store is required")
	}

	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	return &client{
		options: o,
		store:   store,
		hooks:   newHooks(),
	}, nil
}

// sessionOptions merges the client defaults with per-call options.
func (c *client) sessionOptions(opts ...sync.Option) (*sync.Options, error) {
	o := sync.Defaults().Apply(c.options.sessionDefaults...).Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// session decorates ctx with a logger carrying a fresh session id and the document.
func (c *client) session(ctx context.Context, operation, documentID string) (context.Context, *zerolog.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.options.logger != nil {
		ctx = logging.WithLogger(ctx, c.options.logger)
	}
	ctx = logging.WithSessionID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, operation)
	ctx = logging.WithDocument(ctx, documentID)
	return ctx, logging.FromContext(ctx)
}

// fetch reads documentID and guarantees a *errors.FetchError on failure.
func (c *client) fetch(ctx context.Context, documentID string) (*document.Document, error) {
	doc, err := c.store.Fetch(ctx, documentID)
	if err != nil {
		if errors.IsFetch(err) {
			return nil, err
		}
		return nil, errors.NewFetchError(documentID, err)
	}
	if doc == nil {
		return nil, errors.NewFetchError(documentID, errors.NewNotFoundError("document", documentID))
	}
	return doc, nil
}

// Table fetches documentID and returns a snapshot of its selected table.
func (c *client) Table(ctx context.Context, documentID string, opts ...sync.Option) (*table.Model, error) {
	options, err := c.sessionOptions(opts...)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, options.Timeout)
	defer cancel()
	ctx, log := c.session(ctx, "table", documentID)

	doc, err := c.fetch(ctx, documentID)
	if err != nil {
		return nil, err
	}

	model, err := table.Parse(doc.Body, options.Selection)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("table", model.Index).
		Int("columns", model.ColumnCount()).
		Int("rows", model.Len()).
		Msg("Parsed table")
	return model, nil
}
