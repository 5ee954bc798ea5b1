package table

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/tablesync/pkg/errors"
)

// Parse builds a Model from the table sel selects in markup.
//
// The header row is the table's first row; it must sit in a <thead> or
// consist solely of <th> cells. Every other row inside the table's own
// <tbody> sections becomes a model row; <thead> and <tfoot> rows and rows of
// nested tables are not part of the model. Cell values are the rendered
// text of each cell: markup removed, entities decoded, whitespace runs
// collapsed and trimmed. Cells past the column count are dropped.
func Parse(markup string, sel Selection) (*Model, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(unwrapCDATA(markup)))
	if err != nil {
		return nil, errors.NewParseError("html", "", "reading markup", err)
	}

	tables := doc.Find("table")
	idx, ok := sel.resolve(tables.Length())
	if !ok {
		msg := "document contains no table element"
		if tables.Length() > 0 {
			msg = fmt.Sprintf("%s table not found among %d tables", sel, tables.Length())
		}
		return nil, errors.NewParseError("html", "", msg, errors.ErrNoTable)
	}
	tbl := tables.Eq(idx)

	rows := tbl.ChildrenFiltered("thead, tbody, tfoot").ChildrenFiltered("tr")
	if rows.Length() == 0 {
		return nil, errors.NewParseError("html", "", fmt.Sprintf("table %d has no rows", idx), errors.ErrNoHeader)
	}

	header := rows.First()
	if !isHeaderRow(header) {
		return nil, errors.NewParseError("html", "", fmt.Sprintf("table %d has no header row", idx), errors.ErrNoHeader)
	}

	model := &Model{
		Index:   idx,
		Columns: cellTexts(header),
		Rows:    make([]Row, 0),
	}

	tbl.ChildrenFiltered("tbody").ChildrenFiltered("tr").NotSelection(header).Each(func(_ int, tr *goquery.Selection) {
		cells := cellTexts(tr)
		if len(cells) > len(model.Columns) {
			cells = cells[:len(model.Columns)]
		}
		model.Rows = append(model.Rows, Row(cells))
	})

	return model, nil
}

func isHeaderRow(tr *goquery.Selection) bool {
	if tr.Parent().Is("thead") {
		return true
	}
	cells := tr.ChildrenFiltered("th, td")
	return cells.Length() > 0 && cells.Length() == cells.Filter("th").Length()
}

func cellTexts(tr *goquery.Selection) []string {
	cells := tr.ChildrenFiltered("th, td")
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, renderedText(cell.Text()))
	})
	return texts
}

// renderedText collapses whitespace the way a browser renders it.
// strings.Fields splits on unicode.IsSpace, which includes U+00A0.
func renderedText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
