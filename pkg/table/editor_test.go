package table_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

func TestInsertRow(t *testing.T) {
	t.Run("pads and splices before tbody close", func(t *testing.T) {
		span, ok := table.Find(rosterPage, table.First)
		require.True(t, ok)

		out, err := table.InsertRow(rosterPage, table.Row{"Rod Handler"}, 2)
		require.NoError(t, err)

		inserted := `<tr><td>Rod Handler</td><td></td></tr>`
		want := rosterPage[:span.BodyClose] + inserted + rosterPage[span.BodyClose:]
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("InsertRow() mismatch (-want +got):\n%s", diff)
		}

		model, err := table.Parse(out, table.First)
		require.NoError(t, err)
		assert.Equal(t, []table.Row{
			{"Cathy Chatterly", "Public Speaker"},
			{"Rod Handler", ""},
		}, model.Rows)
	})

	t.Run("bytes outside the table are preserved", func(t *testing.T) {
		span, ok := table.Find(rosterPage, table.First)
		require.True(t, ok)

		out, err := table.InsertRow(rosterPage, table.Row{"a", "b"}, 2)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, rosterPage[:span.Start]))
		assert.True(t, strings.HasSuffix(out, rosterPage[span.End:]))
		assert.Contains(t, out, `<!-- keep me -->`)
		assert.Contains(t, out, `Footer  &nbsp; text`)
	})

	t.Run("row longer than column count", func(t *testing.T) {
		out, err := table.InsertRow(rosterPage, table.Row{"a", "b", "c"}, 2)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.Equal(t, rosterPage, out)
	})

	t.Run("missing tbody close is an error", func(t *testing.T) {
		markup := `<table><tr><th>A</th></tr></table>`
		out, err := table.InsertRow(markup, table.Row{"x"}, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkgerrors.ErrNoTableBody))
		assert.Equal(t, markup, out)
	})

	t.Run("missing table is an error", func(t *testing.T) {
		_, err := table.InsertRow(`<p>no table</p>`, table.Row{"x"}, 1)
		assert.True(t, errors.Is(err, pkgerrors.ErrNoTable))
	})

	t.Run("selected table only", func(t *testing.T) {
		out, err := table.NewEditor(table.Last).InsertRow(twoTables, table.Row{"d"}, 2)
		require.NoError(t, err)

		first, err := table.Parse(out, table.First)
		require.NoError(t, err)
		assert.Equal(t, []table.Row{{"a"}}, first.Rows)

		last, err := table.Parse(out, table.Last)
		require.NoError(t, err)
		assert.Equal(t, []table.Row{{"b", "c"}, {"d", ""}}, last.Rows)
		assert.True(t, strings.HasSuffix(out, `</tbody></table><p>end</p>`))
	})

	t.Run("outer table skips nested close markers", func(t *testing.T) {
		out, err := table.InsertRow(nestedTables, table.Row{"y"}, 1)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, `</table></td></tr><tr><td>y</td></tr></tbody></table>`))

		inner, err := table.Parse(out, table.Nth(1))
		require.NoError(t, err)
		assert.Equal(t, []table.Row{{"x"}}, inner.Rows)
	})

	t.Run("inner table", func(t *testing.T) {
		out, err := table.NewEditor(table.Nth(1)).InsertRow(nestedTables, table.Row{"y"}, 1)
		require.NoError(t, err)
		assert.Contains(t, out, `<tr><td>x</td></tr><tr><td>y</td></tr></tbody></table></td></tr>`)
	})
}

func TestInsertRowAfterCodeMacro(t *testing.T) {
	out, err := table.InsertRow(codeMacroPage, table.Row{"Rod Handler"}, 2)
	require.NoError(t, err)

	prefix := `<p>Example:</p>` + codeMacro
	if diff := cmp.Diff(prefix, out[:len(prefix)]); diff != "" {
		t.Errorf("code macro changed (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasSuffix(out, `<tr><td>Rod Handler</td><td></td></tr></tbody></table>`))

	model, err := table.Parse(out, table.First)
	require.NoError(t, err)
	assert.Equal(t, []table.Row{
		{"Cathy Chatterly", "Public Speaker"},
		{"Rod Handler", ""},
	}, model.Rows)
}

func TestInsertRowPadding(t *testing.T) {
	for columns := 1; columns <= 4; columns++ {
		for supplied := 0; supplied <= columns; supplied++ {
			t.Run(fmt.Sprintf("%d of %d", supplied, columns), func(t *testing.T) {
				header := strings.Repeat("<th>h</th>", columns)
				markup := "<table><tbody><tr>" + header + "</tr></tbody></table>"

				row := make(table.Row, supplied)
				for i := range row {
					row[i] = fmt.Sprintf("v%d", i)
				}

				out, err := table.InsertRow(markup, row, columns)
				require.NoError(t, err)

				model, err := table.Parse(out, table.First)
				require.NoError(t, err)
				require.Len(t, model.Rows, 1)
				require.Len(t, model.Rows[0], columns)
				for i, cell := range model.Rows[0] {
					if i < supplied {
						assert.Equal(t, row[i], cell)
					} else {
						assert.Empty(t, cell)
					}
				}
			})
		}
	}
}

func TestClearBody(t *testing.T) {
	t.Run("header inside tbody is kept", func(t *testing.T) {
		out, err := table.ClearBody(rosterPage)
		require.NoError(t, err)
		assert.Contains(t, out, `<tbody><tr><th>Name</th><th>Role</th></tr></tbody></table>`)
		assert.NotContains(t, out, "Cathy")

		model, err := table.Parse(out, table.First)
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Role"}, model.Columns)
		assert.Empty(t, model.Rows)

		span, _ := table.Find(rosterPage, table.First)
		assert.True(t, strings.HasPrefix(out, rosterPage[:span.Start]))
		assert.True(t, strings.HasSuffix(out, rosterPage[span.End:]))
	})

	t.Run("header in thead", func(t *testing.T) {
		out, err := table.ClearBody(theadTable)
		require.NoError(t, err)
		assert.Equal(t, `<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody></tbody></table>`, out)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		once, err := table.ClearBody(rosterPage)
		require.NoError(t, err)
		twice, err := table.ClearBody(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("insert after clear", func(t *testing.T) {
		cleared, err := table.ClearBody(rosterPage)
		require.NoError(t, err)
		out, err := table.InsertRow(cleared, table.Row{"Rod Handler", "Worker"}, 2)
		require.NoError(t, err)

		model, err := table.Parse(out, table.First)
		require.NoError(t, err)
		assert.Equal(t, []table.Row{{"Rod Handler", "Worker"}}, model.Rows)
	})

	t.Run("footer and extra header rows", func(t *testing.T) {
		out, err := table.ClearBody(footedTable)
		require.NoError(t, err)
		assert.Contains(t, out, `<tfoot><tr><td>total</td></tr></tfoot>`)
		assert.Contains(t, out, `<tr><th>sub</th></tr></thead><tbody></tbody>`)

		model, err := table.Parse(out, table.First)
		require.NoError(t, err)
		assert.Equal(t, []string{"N"}, model.Columns)
		assert.Empty(t, model.Rows)
	})

	t.Run("code macro ahead of the table", func(t *testing.T) {
		out, err := table.ClearBody(codeMacroPage)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, `<p>Example:</p>`+codeMacro))
		assert.NotContains(t, out, "Cathy")
	})

	t.Run("missing tbody", func(t *testing.T) {
		markup := `<table><tr><th>A</th></tr><tr><td>1</td></tr></table>`
		out, err := table.ClearBody(markup)
		assert.True(t, errors.Is(err, pkgerrors.ErrNoTableBody))
		assert.Equal(t, markup, out)
	})
}

func TestRenderRow(t *testing.T) {
	value := `<b>R&D</b>`

	plain := table.NewEditor(table.First)
	assert.Equal(t, `<tr><td><b>R&D</b></td><td></td></tr>`, plain.RenderRow(table.Row{value}, 2))

	sanitized := &table.Editor{Sanitize: true}
	assert.Equal(t, `<tr><td>R&amp;D</td></tr>`, sanitized.RenderRow(table.Row{value}, 1))
}
