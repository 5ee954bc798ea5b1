package app

import (
	"github.com/agentstation/tablesync/cmd/tablesync/context"
)

// Ensure App implements context.Context at compile time.
var _ context.Context = (*App)(nil)
