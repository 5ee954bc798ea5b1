package tablesync

import (
	"sync"

	tssync "github.com/agentstation/tablesync/pkg/sync"
	"github.com/agentstation/tablesync/pkg/table"
)

// Hook function types for session events
type (
	// RowInsertedHook is called when a row is spliced into a document body
	RowInsertedHook func(documentID string, row table.Row)

	// RowSkippedHook is called when a candidate row is already present
	RowSkippedHook func(documentID string, row table.Row)

	// CommittedHook is called after a body has been written to the store
	CommittedHook func(result tssync.Result)
)

// Hooks provides event callback registration.
type Hooks interface {
	OnRowInserted(fn RowInsertedHook)
	OnRowSkipped(fn RowSkippedHook)
	OnCommitted(fn CommittedHook)
}

// hooks manages event callbacks for session events
type hooks struct {
	mu            sync.RWMutex
	onRowInserted []RowInsertedHook
	onRowSkipped  []RowSkippedHook
	onCommitted   []CommittedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRowInserted registers a callback for inserted rows
func (c *client) OnRowInserted(fn RowInsertedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onRowInserted = append(c.hooks.onRowInserted, fn)
}

// OnRowSkipped registers a callback for duplicate rows
func (c *client) OnRowSkipped(fn RowSkippedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onRowSkipped = append(c.hooks.onRowSkipped, fn)
}

// OnCommitted registers a callback for successful commits
func (c *client) OnCommitted(fn CommittedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onCommitted = append(c.hooks.onCommitted, fn)
}

func (h *hooks) triggerRowInserted(documentID string, row table.Row) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRowInserted {
		hook(documentID, row)
	}
}

func (h *hooks) triggerRowSkipped(documentID string, row table.Row) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRowSkipped {
		hook(documentID, row)
	}
}

func (h *hooks) triggerCommitted(result tssync.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCommitted {
		hook(result)
	}
}
