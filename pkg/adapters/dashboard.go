package adapters

import (
	"github.com/trontec/extras-atlas/pkg/models/api"
	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		RecordCount:       s.RecordCount,
		TotalValue:        s.TotalValue,
		TotalValueLabel:   normalize.FormatCurrency(s.TotalValue),
		BillableValue:     s.BillableValue,
		BillableLabel:     normalize.FormatCurrency(s.BillableValue),
		CollaboratorCount: s.CollaboratorCount,
		AverageTicket:     s.AverageTicket,
		AverageLabel:      normalize.FormatCurrency(s.AverageTicket),
	}
}

func MapCategoryTotalsDomainToApi(rows []domain.CategoryTotal) []api.CategoryTotal {
	out := make([]api.CategoryTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.CategoryTotal{
			Category: r.Category,
			Total:    r.Total,
			Label:    normalize.FormatCurrencyShort(r.Total),
		})
	}
	return out
}

func MapDonutResultDomainToApi(role domain.Role, d domain.DonutResult) api.DonutResponse {
	ranked := make([]api.DonutDetail, 0, len(d.Ranked))
	for _, r := range d.Ranked {
		pct := 0.0
		if d.Total > 0 {
			pct = r.Total / d.Total * 100
		}
		ranked = append(ranked, api.DonutDetail{
			Category:       r.Category,
			Total:          r.Total,
			Label:          normalize.FormatCurrency(r.Total),
			PercentOfTotal: pct,
		})
	}
	return api.DonutResponse{
		Role:   string(role),
		Chart:  MapCategoryTotalsDomainToApi(d.Chart),
		Ranked: ranked,
		Total:  d.Total,
	}
}

func MapParetoDomainToApi(chart []domain.CategoryTotal, a domain.ParetoAnalysis) api.ParetoResponse {
	rows := make([]api.ParetoRow, 0, len(a.Rows))
	for _, r := range a.Rows {
		rows = append(rows, api.ParetoRow{
			Category:          r.Category,
			Total:             r.Total,
			Label:             normalize.FormatCurrency(r.Total),
			CumulativePercent: r.CumulativePercent,
		})
	}
	return api.ParetoResponse{
		Chart:         MapCategoryTotalsDomainToApi(chart),
		Rows:          rows,
		Count80:       a.Count80,
		CutoffPercent: a.CutoffPercent,
		Total:         a.Total,
	}
}

func MapHourlyRowsDomainToApi(rows []domain.HourlyRow) []api.HourlyRow {
	out := make([]api.HourlyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.HourlyRow{
			Hour:        r.Hour,
			Label:       r.Label,
			Shift:       string(r.Shift),
			ShiftColor:  r.Shift.Color(),
			AvgCost:     r.AvgCost,
			EntryVolume: r.EntryVolume,
			ExitVolume:  r.ExitVolume,
		})
	}
	return out
}

func MapWeekdayTotalsDomainToApi(rows []domain.WeekdayTotal) []api.WeekdayTotal {
	out := make([]api.WeekdayTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.WeekdayTotal{Weekday: r.Weekday, Name: r.Name, Total: r.Total})
	}
	return out
}

func MapDateTotalsDomainToApi(rows []domain.DateTotal) []api.DateTotal {
	out := make([]api.DateTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.DateTotal{
			Date:      r.Date.Format("2006-01-02"),
			Total:     r.Total,
			MovingAvg: r.MovingAvg,
		})
	}
	return out
}

func MapMonthTotalsDomainToApi(rows []domain.MonthTotal) []api.MonthTotal {
	out := make([]api.MonthTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.MonthTotal{Year: r.Year, Month: int(r.Month), Total: r.Total})
	}
	return out
}

func MapLastWeekReportDomainToApi(r domain.LastWeekReport) api.LastWeekResponse {
	return api.LastWeekResponse{
		Range:            api.WeekRange{Start: r.Range.Start, End: r.Range.End},
		Empty:            r.Empty,
		Summary:          MapSummaryDomainToApi(r.Summary),
		RecoveryPercent:  r.RecoveryPercent,
		Daily:            MapWeekdayTotalsDomainToApi(r.Daily),
		TopSites:         MapCategoryTotalsDomainToApi(r.TopSites),
		TopCollaborators: MapCategoryTotalsDomainToApi(r.TopCollaborators),
		Sectors:          MapDonutResultDomainToApi(domain.RoleSector, r.Sectors),
		Hourly:           MapHourlyRowsDomainToApi(r.Hourly),
	}
}

func MapDatasetDomainToApiRecords(ds domain.Dataset) api.RecordsResponse {
	rows := make([]map[string]string, 0, ds.Len())
	for _, rec := range ds.Records {
		row := make(map[string]string, len(ds.Columns))
		for _, col := range ds.Columns {
			row[col] = rec.Cells[col]
		}
		rows = append(rows, row)
	}
	return api.RecordsResponse{Columns: ds.Columns, Rows: rows, Count: len(rows)}
}

func MapMappingDomainToApi(m domain.ColumnMapping) map[string]string {
	out := make(map[string]string, len(m))
	for _, role := range domain.Roles() {
		if col, ok := m.Column(role); ok {
			out[string(role)] = col
		}
	}
	return out
}
