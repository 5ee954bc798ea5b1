package table

// Row is an ordered sequence of cell values.
type Row []string

// Model is a point-in-time snapshot of one table: its header and body rows.
// It is not kept in sync with the markup it came from; callers that keep
// inserting rows use Append to refresh it.
type Model struct {
	// Index is the position of the table element in document order.
	Index int `json:"index" yaml:"index"`

	// Columns holds the header cell text. Position is significant, names need not be unique.
	Columns []string `json:"columns" yaml:"columns"`

	// Rows holds body rows. Every row has at most len(Columns) cells.
	Rows []Row `json:"rows" yaml:"rows"`
}

// ColumnCount returns the number of header columns.
func (m *Model) ColumnCount() int {
	if m == nil {
		return 0
	}
	return len(m.Columns)
}

// Len returns the number of body rows.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Rows)
}

// Contains reports whether candidate is already represented in the table.
// See IsDuplicate for the matching rule.
func (m *Model) Contains(candidate Row) bool {
	return IsDuplicate(m, candidate)
}

// Append adds row, padded to the column count, to the snapshot.
func (m *Model) Append(row Row) {
	m.Rows = append(m.Rows, Pad(row, len(m.Columns)))
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	c := &Model{
		Index:   m.Index,
		Columns: append([]string(nil), m.Columns...),
		Rows:    make([]Row, len(m.Rows)),
	}
	for i, row := range m.Rows {
		c.Rows[i] = append(Row(nil), row...)
	}
	return c
}

// Pad returns a copy of row right-padded with empty cells up to n cells.
// Rows already n cells or longer are copied unchanged.
func Pad(row Row, n int) Row {
	size := len(row)
	if n > size {
		size = n
	}
	padded := make(Row, size)
	copy(padded, row)
	return padded
}
