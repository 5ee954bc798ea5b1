package table

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agentstation/tablesync/pkg/errors"
)

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// Editor splices rows into, and clears rows out of, the table its Selection
// picks. It works on the markup text directly; bytes outside the edited
// range are never touched.
type Editor struct {
	// Selection picks the table to edit. The zero value edits the first table.
	Selection Selection

	// Sanitize strips markup from cell values and escapes the remaining text
	// before rendering. When false, values are inserted verbatim and callers
	// must pre-escape markup-unsafe characters.
	Sanitize bool
}

// NewEditor creates an editor bound to sel.
func NewEditor(sel Selection) *Editor {
	return &Editor{Selection: sel}
}

// InsertRow pads row to columnCount cells, renders it, and splices it in
// immediately before the selected table's last </tbody>. It fails with a
// MarkupError wrapping ErrNoTable or ErrNoTableBody when the table or its
// close marker cannot be found, leaving nothing changed.
func (e *Editor) InsertRow(markup string, row Row, columnCount int) (string, error) {
	if len(row) > columnCount {
		return markup, errors.NewValidationError("row", row,
			fmt.Sprintf("%d cells exceed %d columns", len(row), columnCount))
	}

	span, err := e.find(markup, "insert")
	if err != nil {
		return markup, err
	}
	if span.BodyClose < 0 {
		return markup, errors.NewMarkupError("insert", span.Index, errors.ErrNoTableBody)
	}

	return markup[:span.BodyClose] + e.RenderRow(row, columnCount) + markup[span.BodyClose:], nil
}

// ClearBody removes every body row of the selected table and keeps its header
// row. Everything between the end of the header row (or the end of the
// <tbody> start tag when the header lives in <thead>) and the last </tbody>
// is dropped.
func (e *Editor) ClearBody(markup string) (string, error) {
	span, err := e.find(markup, "clear")
	if err != nil {
		return markup, err
	}
	if span.BodyClose < 0 {
		return markup, errors.NewMarkupError("clear", span.Index, errors.ErrNoTableBody)
	}

	from := span.BodyOpenEnd
	if span.HeaderInBody && span.HeaderEnd >= 0 {
		from = span.HeaderEnd
	}
	if from < 0 || from > span.BodyClose {
		return markup, errors.NewMarkupError("clear", span.Index, errors.ErrNoTableBody)
	}

	return markup[:from] + markup[span.BodyClose:], nil
}

// RenderRow renders row, padded to columnCount, as one <tr> element with a
// <td> per cell. Padding cells are emitted empty, never omitted.
func (e *Editor) RenderRow(row Row, columnCount int) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, value := range Pad(row, columnCount) {
		if e.Sanitize {
			value = sanitizer().Sanitize(value)
		}
		b.WriteString("<td>")
		b.WriteString(value)
		b.WriteString("</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func (e *Editor) find(markup, operation string) (Span, error) {
	span, ok := Find(markup, e.Selection)
	if !ok {
		return Span{}, errors.NewMarkupError(operation, e.Selection.Index, errors.ErrNoTable)
	}
	return span, nil
}

func sanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		cellPolicy = bluemonday.StrictPolicy()
	})
	return cellPolicy
}

// InsertRow inserts row into the first table of markup.
func InsertRow(markup string, row Row, columnCount int) (string, error) {
	return NewEditor(First).InsertRow(markup, row, columnCount)
}

// ClearBody clears the body rows of the first table of markup.
func ClearBody(markup string) (string, error) {
	return NewEditor(First).ClearBody(markup)
}
