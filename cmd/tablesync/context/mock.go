package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tablesync"
)

// MockContext provides a mock implementation of Context for testing.
// If a function field is nil, the method returns a default/zero value.
type MockContext struct {
	ClientFunc       func() (tablesync.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

// Client returns a client using the mock function or nil.
func (m *MockContext) Client() (tablesync.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *MockContext) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *MockContext) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *MockContext) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}
