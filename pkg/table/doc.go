// Package table extracts a column/row model from HTML tables embedded in
// document markup and edits that markup in place.
//
// Parsing goes through a full HTML tree (goquery over golang.org/x/net/html),
// but editing never re-serializes the tree: the Editor locates byte offsets
// with the html tokenizer and splices strings, so every byte outside the
// edited range survives untouched. Macros, comments and formatting directives
// that a DOM round-trip would normalize are preserved exactly.
//
// Parsing and editing bind to the same table through a single Selection.
//
//	model, err := table.Parse(body, table.First)
//	if err != nil {
//	    return err
//	}
//	if !model.Contains(row) {
//	    body, err = table.NewEditor(table.First).InsertRow(body, row, model.ColumnCount())
//	}
package table
