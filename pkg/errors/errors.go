// Package errors provides custom error types for the tablesync system.
// These errors let callers tell apart the failure stages of a sync session
// (fetch, parse, markup edit, commit) and check them programmatically with
// errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the tablesync system
var (
	// ErrNotFound indicates that a requested document was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates that the store rejected the credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable indicates that the document store is temporarily unavailable
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrFetch indicates that a document could not be retrieved
	ErrFetch = errors.New("fetch failed")

	// ErrNoTable indicates that the markup holds no (selected) table element
	ErrNoTable = errors.New("no table element")

	// ErrNoHeader indicates that the selected table has no header row
	ErrNoHeader = errors.New("no header row")

	// ErrNoTableBody indicates that the selected table has no closing body marker
	ErrNoTableBody = errors.New("no closing table body marker")

	// ErrVersionConflict indicates the store rejected a write built on a stale version
	ErrVersionConflict = errors.New("version conflict")

	// ErrCommit indicates that the store rejected a write for a reason other than a conflict
	ErrCommit = errors.New("commit failed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success response from the document store API
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode >= 500:
		return target == ErrStoreUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// FetchError represents a failure to retrieve a document from the store.
// Nothing was changed remotely when a session fails with a FetchError.
type FetchError struct {
	DocumentID string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch document %s: %v", e.DocumentID, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError creates a new FetchError
func NewFetchError(documentID string, err error) *FetchError {
	return &FetchError{DocumentID: documentID, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "html", "json", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// MarkupError represents a failed textual edit of document markup.
type MarkupError struct {
	Operation string // "insert", "clear"
	Table     int
	Err       error
}

// Error implements the error interface
func (e *MarkupError) Error() string {
	return fmt.Sprintf("markup %s on table %d: %v", e.Operation, e.Table, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MarkupError) Unwrap() error {
	return e.Err
}

// NewMarkupError creates a new MarkupError
func NewMarkupError(operation string, table int, err error) *MarkupError {
	return &MarkupError{Operation: operation, Table: table, Err: err}
}

// CommitConflictError is returned when the store rejects a replace because the
// version written no longer follows the stored one. Callers may re-fetch and
// retry; the session never does so itself.
type CommitConflictError struct {
	DocumentID string
	Version    int
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *CommitConflictError) Error() string {
	msg := fmt.Sprintf("version conflict committing document %s at version %d", e.DocumentID, e.Version)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is implements errors.Is support
func (e *CommitConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// NewCommitConflictError creates a new CommitConflictError
func NewCommitConflictError(documentID string, version, statusCode int, message string) *CommitConflictError {
	return &CommitConflictError{
		DocumentID: documentID,
		Version:    version,
		StatusCode: statusCode,
		Message:    message,
	}
}

// CommitError represents any other non-success outcome of a replace call.
type CommitError struct {
	DocumentID string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *CommitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("commit of document %s failed with status %d: %s", e.DocumentID, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("commit of document %s failed: %s", e.DocumentID, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *CommitError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CommitError) Is(target error) bool {
	return target == ErrCommit
}

// NewCommitError creates a new CommitError
func NewCommitError(documentID string, statusCode int, message string, err error) *CommitError {
	return &CommitError{
		DocumentID: documentID,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "encode", "decode", "send"
	Resource  string // "request", "document", "payload"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// AuthenticationError represents an authentication/authorization error
type AuthenticationError struct {
	Method  string // "basic", "bearer"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnauthorized checks if an error is an authentication failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsFetch checks if an error happened while fetching a document
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsConflict checks if an error is a commit version conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsCommit checks if an error is a non-conflict commit failure
func IsCommit(err error) bool {
	return errors.Is(err, ErrCommit)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
