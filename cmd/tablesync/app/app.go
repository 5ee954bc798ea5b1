// Package app provides the application context and dependency management
// for the tablesync CLI. Configuration, logging and the sync client are
// built here once and handed to commands.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync"
	"github.com/agentstation/tablesync/internal/confluence"
	"github.com/agentstation/tablesync/pkg/document"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/logging"
)

// App represents the tablesync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Store and client (lazy-initialized, singleton)
	mu     sync.RWMutex
	store  document.Store
	client tablesync.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the sync client, creating it and its store lazily.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (tablesync.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	if a.store == nil {
		store, err := confluence.New(a.config.Confluence)
		if err != nil {
			return nil, err
		}
		a.store = store
	}

	c, err := tablesync.New(a.store, tablesync.WithLogger(a.logger))
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.logger)
}

// Shutdown performs graceful shutdown of the application.
// Sessions are synchronous, so there is nothing left running; the call only logs.
func (a *App) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets the document store the client is built on (useful for testing).
func WithStore(store document.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}
