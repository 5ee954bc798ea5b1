package rows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []table.Row
	}{
		{"single cell", []string{"Rod Handler"}, []table.Row{{"Rod Handler"}}},
		{"two cells", []string{"Cathy Chatterly, Public Speaker"}, []table.Row{{"Cathy Chatterly", "Public Speaker"}}},
		{"quoted comma", []string{`"Handler, Rod",Worker`}, []table.Row{{"Handler, Rod", "Worker"}}},
		{"empty trailing cell", []string{"a,"}, []table.Row{{"a", ""}}},
		{"several", []string{"a", "b,c"}, []table.Row{{"a"}, {"b", "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("bad quoting", func(t *testing.T) {
		_, err := ParseArgs([]string{`"unterminated`})
		assert.True(t, errors.IsParse(err))
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "rows.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- [Cathy Chatterly, Public Speaker]\n- [Rod Handler]\n"), 0o644))

	jsonPath := filepath.Join(dir, "rows.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[["a","b"],["c"]]`), 0o644))

	got, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"Cathy Chatterly", "Public Speaker"}, {"Rod Handler"}}, got)

	got, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"a", "b"}, {"c"}}, got)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Decode("bad.yaml", []byte("name: [unclosed"))
	assert.True(t, errors.IsParse(err))
}

func TestCollect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- [from file]\n"), 0o644))

	got, err := Collect([]string{"from flag"}, path)
	require.NoError(t, err)
	assert.Equal(t, []table.Row{{"from flag"}, {"from file"}}, got)

	got, err = Collect(nil, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
