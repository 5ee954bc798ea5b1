package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/tablesync/pkg/table"
)

func TestIsDuplicate(t *testing.T) {
	t.Run("prefix scenario", func(t *testing.T) {
		model := &table.Model{
			Columns: []string{"Name", "Role"},
			Rows:    []table.Row{{"Cathy Chatterly", "Public Speaker"}},
		}

		assert.True(t, model.Contains(table.Row{"Cathy Chatterly", "Public Speaker"}))
		assert.True(t, model.Contains(table.Row{"Cathy Chatterly"}), "one-column prefix matches")

		assert.False(t, model.Contains(table.Row{"Rod Handler"}))
		model.Append(table.Row{"Rod Handler"})
		assert.Equal(t, table.Row{"Rod Handler", ""}, model.Rows[1])

		assert.False(t, model.Contains(table.Row{"Rod Handler", "Nuclear Power Plant Worker"}),
			"two-column prefix does not match the padded row")
		assert.True(t, model.Contains(table.Row{"Rod Handler"}))
		assert.True(t, model.Contains(table.Row{"Rod Handler", ""}))
	})

	t.Run("exact comparison", func(t *testing.T) {
		model := &table.Model{Columns: []string{"Name"}, Rows: []table.Row{{"Cathy Chatterly"}}}
		assert.False(t, table.IsDuplicate(model, table.Row{"cathy chatterly"}))
		assert.False(t, table.IsDuplicate(model, table.Row{"Cathy Chatterly "}))
	})

	t.Run("empty table never matches", func(t *testing.T) {
		assert.False(t, table.IsDuplicate(&table.Model{Columns: []string{"A", "B"}}, table.Row{"x"}))
		assert.False(t, table.IsDuplicate(&table.Model{Columns: []string{"A"}}, table.Row{}))
		assert.False(t, table.IsDuplicate(nil, table.Row{"x"}))
	})

	t.Run("short existing rows compare as empty", func(t *testing.T) {
		model := &table.Model{Columns: []string{"A", "B"}, Rows: []table.Row{{"x"}}}
		assert.True(t, model.Contains(table.Row{"x", ""}))
		assert.False(t, model.Contains(table.Row{"x", "y"}))
	})
}

func TestModelHelpers(t *testing.T) {
	model := &table.Model{Columns: []string{"A", "B", "C"}, Rows: []table.Row{{"1", "2"}}}
	clone := model.Clone()
	clone.Rows[0][0] = "changed"
	clone.Append(table.Row{"x"})

	assert.Equal(t, "1", model.Rows[0][0])
	assert.Equal(t, 1, model.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, 3, clone.ColumnCount())
	assert.Equal(t, table.Row{"x", "", ""}, clone.Rows[1])

	var empty *table.Model
	assert.Equal(t, 0, empty.ColumnCount())
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Clone())

	assert.Equal(t, table.Row{"a", "b"}, table.Pad(table.Row{"a", "b"}, 1))
	assert.Equal(t, table.Row{"", ""}, table.Pad(nil, 2))
}
