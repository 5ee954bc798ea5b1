// Package constants provides shared constants used throughout the tablesync codebase.
// This includes timeouts, file permissions and the defaults of the document store
// protocol that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the document store
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for a whole sync session
	DefaultTimeout = 2 * time.Minute

	// ShutdownTimeout bounds graceful shutdown of the CLI after an error
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Document store protocol constants
const (
	// ContentAPIPath is the REST path prefix for content resources
	ContentAPIPath = "/rest/api/content"

	// ContentExpand lists the fields requested when fetching a document
	ContentExpand = "body.storage,version,space"

	// StorageRepresentation is the body representation written back on replace
	StorageRepresentation = "storage"

	// ContentTypePage is the content type echoed in replace payloads
	ContentTypePage = "page"

	// ContentStatusCurrent is the content status echoed in replace payloads
	ContentStatusCurrent = "current"
)

// Path constants
const (
	// ConfigFileName is the base name of the optional YAML config in $HOME or the working directory
	ConfigFileName = ".tablesync"

	// EnvPrefix prefixes every environment variable read by the CLI
	EnvPrefix = "TABLESYNC"
)
