// Package context provides the application context interface for tablesync commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be exercised in tests with MockContext and an in-memory store.
//
//	func NewCommand(appCtx context.Context) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := appCtx.Client()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use client
//	            return nil
//	        },
//	    }
//	}
package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync"
)

// Context provides the application context that commands need.
// The App struct from cmd/tablesync/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Context interface {
	// Client returns the sync client, lazily created on first use.
	Client() (tablesync.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// An empty string means auto-detect.
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
