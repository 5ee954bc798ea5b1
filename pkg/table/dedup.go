package table

// IsDuplicate reports whether candidate is already represented in existing.
//
// Only the leading len(candidate) columns are compared: those are the columns
// the caller supplied values for. Trailing model-only columns (notes, status)
// are ignored, so a row matching an existing row on that prefix is a duplicate
// whatever its remaining cells hold. Cells are compared by exact string
// equality; cells an existing row lacks compare as "".
//
// An empty table never holds a duplicate.
func IsDuplicate(existing *Model, candidate Row) bool {
	if existing == nil || len(existing.Rows) == 0 {
		return false
	}
	for _, row := range existing.Rows {
		if prefixEqual(row, candidate) {
			return true
		}
	}
	return false
}

func prefixEqual(row, candidate Row) bool {
	for i, want := range candidate {
		got := ""
		if i < len(row) {
			got = row[i]
		}
		if got != want {
			return false
		}
	}
	return true
}
