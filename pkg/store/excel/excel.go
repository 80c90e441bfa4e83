// Package excel loads a worksheet of an .xlsx workbook as a raw table.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/trontec/extras-atlas/pkg/models/store"
)

// Load reads the named sheet (or the first sheet when sheet is empty) into a
// raw table. All cells arrive as strings, matching the CSV loader.
func Load(path, sheet string) (store.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return store.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return store.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return store.Table{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	return store.Table{
		Columns: store.CleanHeaders(rows[0]),
		Rows:    rows[1:],
	}, nil
}
