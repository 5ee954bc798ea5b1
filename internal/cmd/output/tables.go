package output

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/tablesync/pkg/sync"
	"github.com/agentstation/tablesync/pkg/table"
)

// ModelData lays out a parsed table with its own header. Empty header cells
// are shown as their column number.
func ModelData(model *table.Model) Data {
	data := Data{Headers: make([]string, model.ColumnCount())}
	for i, col := range model.Columns {
		if col == "" {
			col = strconv.Itoa(i + 1)
		}
		data.Headers[i] = col
	}
	for _, row := range model.Rows {
		data.Rows = append(data.Rows, []string(table.Pad(row, model.ColumnCount())))
	}
	return data
}

// ResultData lays out a session result as a property/value table followed by
// one line per inserted or skipped row.
func ResultData(result *sync.Result) Data {
	caser := cases.Title(language.English)
	prop := func(name string) string {
		return caser.String(strings.ReplaceAll(name, "_", " "))
	}

	data := Data{
		Headers:         []string{"Property", "Value"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
	add := func(name string, value any) {
		data.Rows = append(data.Rows, []string{prop(name), fmt.Sprint(value)})
	}

	add("document_id", result.DocumentID)
	add("title", result.Title)
	add("previous_version", result.PreviousVersion)
	add("version", result.Version)
	add("committed", result.Committed)
	add("dry_run", result.DryRun)
	if result.CommittedAt != nil {
		add("committed_at", result.CommittedAt.Format("2006-01-02T15:04:05Z07:00"))
	}
	if result.Cleared > 0 {
		add("cleared", result.Cleared)
	}
	for _, row := range result.Inserted {
		add("inserted", strings.Join(row, " | "))
	}
	for _, row := range result.Skipped {
		add("skipped", strings.Join(row, " | "))
	}
	return data
}
