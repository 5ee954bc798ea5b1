package table

import "fmt"

// Selection chooses which table element, in document order, parsing and
// editing bind to. Nested tables are counted. A negative Index counts from the
// end of the document, so -1 is the last table.
//
// The zero value selects the first table.
type Selection struct {
	Index int
}

var (
	// First selects the first table in the document.
	First = Selection{Index: 0}

	// Last selects the last table in the document.
	Last = Selection{Index: -1}
)

// Nth selects the table at index i (negative counts from the end).
func Nth(i int) Selection {
	return Selection{Index: i}
}

// resolve maps the selection onto a document holding n tables.
func (s Selection) resolve(n int) (int, bool) {
	idx := s.Index
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch {
	case s.Index == 0:
		return "first"
	case s.Index == -1:
		return "last"
	default:
		return fmt.Sprintf("table[%d]", s.Index)
	}
}
