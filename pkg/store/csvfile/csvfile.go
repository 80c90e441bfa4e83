// Package csvfile loads a delimited text table from disk, used for the local
// sample dataset and as the fallback when no live source is reachable.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/trontec/extras-atlas/pkg/models/store"
)

// Load reads a CSV file into a raw table. Headers are cleaned the same way
// the remote loader cleans them; rows with a deviating field count are kept
// as-is (short rows read as empty cells downstream).
func Load(path string) (store.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return store.Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads CSV content from a reader into a raw table.
func Parse(r io.Reader) (store.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return store.Table{}, fmt.Errorf("read csv headers: %w", err)
	}

	t := store.Table{Columns: store.CleanHeaders(headers)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return store.Table{}, fmt.Errorf("read csv row: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
