package store

import (
	"fmt"
	"strings"
	"time"
)

// Table is a raw tabular dataset as it arrives from a source: named columns
// and rows of untyped string cells. Column names are unique after CleanHeaders.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Snapshot is a cached copy of a fetched table.
type Snapshot struct {
	Source    string
	FetchedAt time.Time
	Table     Table
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the raw cell at row i for the given column index.
// Short rows are padded with empty strings.
func (t Table) Cell(i, col int) string {
	if col >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][col]
}

// CleanHeaders deduplicates header names and replaces blank ones,
// so every column has a stable, unique identifier. Blank headers become
// "Unnamed_<i>"; repeated names get a "_<n>" suffix.
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, 0, len(headers))
	seen := make(map[string]int, len(headers))

	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed_%d", i)
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = fmt.Sprintf("%s_%d", h, n+1)
		} else {
			seen[h] = 0
		}
		cleaned = append(cleaned, h)
	}
	return cleaned
}
