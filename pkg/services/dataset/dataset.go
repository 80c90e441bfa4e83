// Package dataset builds a normalized domain.Dataset from a raw table and a
// resolved column mapping. Normalization happens once per load; the engines
// downstream only see typed values and canonical labels.
package dataset

import (
	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/models/store"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

// Build normalizes a raw table against a mapping. Per record: the mapped date
// column is parsed day-first (nil on failure), the value column is coerced to
// a float (0 on failure), and the billable / own-transport columns are
// rewritten in place to the canonical Yes/No labels so categorical filters and
// groupings see a two-valued domain.
func Build(t store.Table, mapping domain.ColumnMapping) domain.Dataset {
	dateCol, hasDate := mapping.Column(domain.RoleDate)
	valueCol, hasValue := mapping.Column(domain.RoleValue)
	billableCol, hasBillable := mapping.Column(domain.RoleBillable)
	transportCol, hasTransport := mapping.Column(domain.RoleOwnTransport)

	records := make([]domain.Record, 0, len(t.Rows))
	for i := range t.Rows {
		cells := make(map[string]string, len(t.Columns))
		for c, name := range t.Columns {
			cells[name] = t.Cell(i, c)
		}

		if hasBillable {
			cells[billableCol] = normalize.Boolean(cells[billableCol])
		}
		if hasTransport {
			cells[transportCol] = normalize.Boolean(cells[transportCol])
		}

		rec := domain.Record{Cells: cells}
		if hasDate {
			rec.Date = normalize.Date(cells[dateCol])
		}
		if hasValue {
			rec.Value = normalize.Currency(cells[valueCol])
		}
		records = append(records, rec)
	}

	return domain.Dataset{
		Columns: append([]string(nil), t.Columns...),
		Mapping: mapping,
		Records: records,
	}
}
