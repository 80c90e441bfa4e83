package aggregate

import (
	"sort"
	"time"

	"github.com/trontec/extras-atlas/pkg/models/domain"
)

var weekdayNames = [7]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// DailyTotals groups records by calendar date and sums the value per day,
// chronologically. Records without a parseable date are skipped. Returns nil
// when the date or value role is unset.
func DailyTotals(ds domain.Dataset) []domain.DateTotal {
	if !ds.Mapping.IsSet(domain.RoleDate) || !ds.Mapping.IsSet(domain.RoleValue) {
		return nil
	}

	sums := make(map[time.Time]float64)
	for _, rec := range ds.Records {
		if rec.Date == nil {
			continue
		}
		d := rec.Date
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		sums[day] += rec.Value
	}

	out := make([]domain.DateTotal, 0, len(sums))
	for day, total := range sums {
		out = append(out, domain.DateTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// MovingAverage annotates daily totals with a trailing mean over window days.
// The average only appears once a full window is available; earlier rows keep
// a nil MovingAvg, matching how the dashboard draws the smoothing line.
func MovingAverage(rows []domain.DateTotal, window int) []domain.DateTotal {
	if window <= 0 {
		return rows
	}
	out := append([]domain.DateTotal(nil), rows...)
	var running float64
	for i := range out {
		running += out[i].Total
		if i >= window {
			running -= out[i-window].Total
		}
		if i >= window-1 {
			avg := running / float64(window)
			out[i].MovingAvg = &avg
		}
	}
	return out
}

// MonthlyTotals groups records into calendar months, chronologically.
func MonthlyTotals(ds domain.Dataset) []domain.MonthTotal {
	if !ds.Mapping.IsSet(domain.RoleDate) || !ds.Mapping.IsSet(domain.RoleValue) {
		return nil
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	sums := make(map[monthKey]float64)
	for _, rec := range ds.Records {
		if rec.Date == nil {
			continue
		}
		sums[monthKey{rec.Date.Year(), rec.Date.Month()}] += rec.Value
	}

	out := make([]domain.MonthTotal, 0, len(sums))
	for k, total := range sums {
		out = append(out, domain.MonthTotal{Year: k.year, Month: k.month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// DailyOfWeekTotals sums value per calendar date, then folds the dates onto
// days of the week, Monday-first. Only days present in the data appear; there
// is no zero-fill scaffold here, unlike the hourly view.
func DailyOfWeekTotals(ds domain.Dataset) []domain.WeekdayTotal {
	daily := DailyTotals(ds)
	if daily == nil {
		return nil
	}

	var sums [7]float64
	var present [7]bool
	for _, row := range daily {
		idx := (int(row.Date.Weekday()) + 6) % 7 // Monday = 0
		sums[idx] += row.Total
		present[idx] = true
	}

	out := make([]domain.WeekdayTotal, 0, 7)
	for i := 0; i < 7; i++ {
		if !present[i] {
			continue
		}
		out = append(out, domain.WeekdayTotal{Weekday: i, Name: weekdayNames[i], Total: sums[i]})
	}
	return out
}
