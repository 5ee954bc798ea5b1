// Package rows loads candidate rows for the sync command from flags and files.
package rows

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/table"
)

// ParseArgs parses each --row value as one comma-separated record. Fields may
// be double-quoted to carry commas; surrounding spaces are trimmed.
func ParseArgs(args []string) ([]table.Row, error) {
	out := make([]table.Row, 0, len(args))
	for _, arg := range args {
		r := csv.NewReader(strings.NewReader(arg))
		r.TrimLeadingSpace = true
		r.FieldsPerRecord = -1

		record, err := r.Read()
		if err != nil {
			return nil, errors.NewParseError("csv", "", "invalid --row value "+arg, err)
		}
		row := make(table.Row, len(record))
		for i, field := range record {
			row[i] = strings.TrimSpace(field)
		}
		out = append(out, row)
	}
	return out, nil
}

// LoadFile reads a YAML (or JSON) document holding a sequence of rows, each a
// sequence of cell values:
//
//	- [Cathy Chatterly, Public Speaker]
//	- [Rod Handler]
func LoadFile(path string) ([]table.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(path, data)
}

// Decode parses rows from data; name is used in error messages.
func Decode(name string, data []byte) ([]table.Row, error) {
	var rows []table.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, errors.NewParseError("yaml", name, err.Error(), err)
	}
	return rows, nil
}

// Collect merges rows from --row flags and an optional file, flags first.
func Collect(args []string, path string) ([]table.Row, error) {
	rows, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return rows, nil
	}
	fromFile, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return append(rows, fromFile...), nil
}
