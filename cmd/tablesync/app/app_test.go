package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tablesync"
	"github.com/agentstation/tablesync/pkg/document"
	"github.com/agentstation/tablesync/pkg/document/memory"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

const rosterBody = `<p>Roster</p><table><tbody>` +
	`<tr><th>Name</th><th>Role</th></tr>` +
	`<tr><td>Cathy Chatterly</td><td>Public Speaker</td></tr>` +
	`</tbody></table><p>Footer</p>`

func newTestApp(t *testing.T) (*App, *memory.Store) {
	t.Helper()

	store, err := memory.New(memory.WithDocument(document.Document{
		ID:      "42",
		Title:   "Team",
		Version: 3,
		Body:    rosterBody,
	}))
	require.NoError(t, err)

	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithStore(store),
		WithLogger(&logger),
		WithConfig(&Config{LogFormat: "json", LogOutput: "stderr", LogLevel: "error"}),
	)
	require.NoError(t, err)
	return app, store
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := app.createRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(app.Context(context.Background()))
	return out.String(), err
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app, _ := newTestApp(t)

	c1, err := app.Client()
	require.NoError(t, err)
	c2, err := app.Client()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app, _ := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	clients := make([]tablesync.Client, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			clients[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, clients[0], clients[i])
	}
}

// TestApp_Client_InvalidConfig verifies a missing URL is reported when no store is injected.
func TestApp_Client_InvalidConfig(t *testing.T) {
	logger := zerolog.Nop()
	app, err := New("dev", "", "", "", WithLogger(&logger), WithConfig(&Config{}))
	require.NoError(t, err)

	_, err = app.Client()
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestExecute_Sync(t *testing.T) {
	app, store := newTestApp(t)

	out, err := run(t, app, "sync", "42",
		"--row", "Cathy Chatterly, Public Speaker",
		"--row", "Dan, Engineer",
		"-o", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, true, result["committed"])
	assert.EqualValues(t, 4, result["version"])

	doc, ok := store.Get("42")
	require.True(t, ok)
	assert.Equal(t, 4, doc.Version)
	assert.Contains(t, doc.Body, "<tr><td>Dan</td><td>Engineer</td></tr></tbody>")
	assert.Equal(t, 1, store.Replaces())
}

func TestExecute_SyncDryRunSave(t *testing.T) {
	app, store := newTestApp(t)
	path := filepath.Join(t.TempDir(), "body.html")

	_, err := run(t, app, "sync", "42", "--row", "Eve", "--dry-run", "--save", path, "-o", "yaml")
	require.NoError(t, err)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "<tr><td>Eve</td><td></td></tr>")

	doc, _ := store.Get("42")
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, 0, store.Replaces())
}

func TestExecute_SyncFromFile(t *testing.T) {
	app, store := newTestApp(t)
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [Frank, Tester]\n- [Cathy Chatterly]\n"), 0o600))

	_, err := run(t, app, "sync", "42", "--file", path, "-o", "json")
	require.NoError(t, err)

	doc, _ := store.Get("42")
	assert.Contains(t, doc.Body, "<td>Frank</td><td>Tester</td>")
	assert.NotContains(t, doc.Body, "<td>Cathy Chatterly</td><td></td>")
}

func TestExecute_SyncNoRows(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := run(t, app, "sync", "42")
	assert.Error(t, err)
}

func TestExecute_Show(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "show", "42", "-o", "json")
	require.NoError(t, err)

	var model table.Model
	require.NoError(t, json.Unmarshal([]byte(out), &model))
	assert.Equal(t, []string{"Name", "Role"}, model.Columns)
	assert.Equal(t, []table.Row{{"Cathy Chatterly", "Public Speaker"}}, model.Rows)
}

func TestExecute_Clear(t *testing.T) {
	app, store := newTestApp(t)

	_, err := run(t, app, "clear", "42", "-o", "json")
	require.NoError(t, err)
	doc, _ := store.Get("42")
	assert.Equal(t, 3, doc.Version, "clear without --deploy must not commit")

	_, err = run(t, app, "clear", "42", "--deploy", "-o", "json")
	require.NoError(t, err)
	doc, _ = store.Get("42")
	assert.Equal(t, 4, doc.Version)
	assert.NotContains(t, doc.Body, "Cathy")
	assert.Contains(t, doc.Body, "<tr><th>Name</th><th>Role</th></tr>")
}

func TestExecute_UnknownDocument(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := run(t, app, "show", "missing")
	require.Error(t, err)
	var fetchErr *errors.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestExecute_Version(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tablesync 1.0.0")
}
