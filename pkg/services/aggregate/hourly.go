package aggregate

import (
	"fmt"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

// HourlyDualMetric buckets records by hour of day. Per entry hour it computes
// the mean value and the entry count; per exit hour, when an exit column is
// mapped, a separate count. Records whose hour cannot be determined are
// discarded from the respective metric. The result is always a fixed 24-row
// scaffold (hours 0-23) so gaps show as zeros, each row tagged with its shift.
// Returns nil when the entry-time or value role is unset.
func HourlyDualMetric(ds domain.Dataset) []domain.HourlyRow {
	entryCol, ok := ds.Mapping.Column(domain.RoleEntryTime)
	if !ok || !ds.Mapping.IsSet(domain.RoleValue) {
		return nil
	}
	exitCol, hasExit := ds.Mapping.Column(domain.RoleExitTime)

	var sums [24]float64
	var entries [24]int
	var exits [24]int

	for _, rec := range ds.Records {
		if h := normalize.Hour(rec.Cells[entryCol]); h != normalize.HourUnknown {
			sums[h] += rec.Value
			entries[h]++
		}
		if hasExit {
			if h := normalize.Hour(rec.Cells[exitCol]); h != normalize.HourUnknown {
				exits[h]++
			}
		}
	}

	rows := make([]domain.HourlyRow, 0, 24)
	for h := 0; h < 24; h++ {
		avg := 0.0
		if entries[h] > 0 {
			avg = sums[h] / float64(entries[h])
		}
		rows = append(rows, domain.HourlyRow{
			Hour:        h,
			Label:       fmt.Sprintf("%02d:00", h),
			Shift:       normalize.ClassifyShift(h),
			AvgCost:     avg,
			EntryVolume: entries[h],
			ExitVolume:  exits[h],
		})
	}
	return rows
}
