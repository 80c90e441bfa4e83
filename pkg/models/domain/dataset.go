package domain

import "time"

// Record is one normalized row of the dataset. Raw cells are kept verbatim for
// categorical grouping and filtering; the mapped date and monetary value are
// pre-parsed since every engine needs them typed.
type Record struct {
	Cells map[string]string
	Date  *time.Time
	Value float64
}

// Dataset is an ordered collection of records sharing a column set and a
// resolved column mapping. Engines never mutate a dataset; filters return new
// datasets whose record slices reference the same backing records.
type Dataset struct {
	Columns []string
	Mapping ColumnMapping
	Records []Record
}

func (d Dataset) Len() int {
	return len(d.Records)
}

func (d Dataset) Empty() bool {
	return len(d.Records) == 0
}

// Cell returns the raw cell of record i in the given column.
func (d Dataset) Cell(i int, column string) string {
	return d.Records[i].Cells[column]
}

// RoleCell returns the raw cell of record i for a mapped role.
// The second result is false when the role is unset.
func (d Dataset) RoleCell(i int, r Role) (string, bool) {
	col, ok := d.Mapping.Column(r)
	if !ok {
		return "", false
	}
	return d.Records[i].Cells[col], true
}

// WithRecords returns a dataset sharing columns and mapping with d but holding
// a different record slice. Used by the filter engine.
func (d Dataset) WithRecords(records []Record) Dataset {
	return Dataset{Columns: d.Columns, Mapping: d.Mapping, Records: records}
}
