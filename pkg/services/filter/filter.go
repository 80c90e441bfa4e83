// Package filter applies categorical and date-range predicates to a dataset
// and computes the canonical "last complete week" range. Filters never mutate
// their input; they return views over the same backing records.
package filter

import (
	"sort"
	"time"

	"github.com/trontec/extras-atlas/pkg/models/domain"
)

// Categorical keeps records whose raw cell in column is a member of selected.
// An unset column or an empty selection means "all" and returns the dataset
// unchanged.
func Categorical(ds domain.Dataset, column string, selected []string) domain.Dataset {
	if column == "" || len(selected) == 0 {
		return ds
	}

	allowed := make(map[string]bool, len(selected))
	for _, v := range selected {
		allowed[v] = true
	}

	kept := make([]domain.Record, 0, ds.Len())
	for _, rec := range ds.Records {
		if allowed[rec.Cells[column]] {
			kept = append(kept, rec)
		}
	}
	return ds.WithRecords(kept)
}

// ByRole is Categorical over the column mapped to a role. Unset role is
// identity.
func ByRole(ds domain.Dataset, role domain.Role, selected []string) domain.Dataset {
	col, ok := ds.Mapping.Column(role)
	if !ok {
		return ds
	}
	return Categorical(ds, col, selected)
}

// DateRange keeps records whose parsed date falls in [start, end], inclusive
// on both ends. A nil bound, or an unset date role, is identity. Records
// without a parseable date are dropped once a range applies.
func DateRange(ds domain.Dataset, start, end *time.Time) domain.Dataset {
	if !ds.Mapping.IsSet(domain.RoleDate) || start == nil || end == nil {
		return ds
	}

	kept := make([]domain.Record, 0, ds.Len())
	for _, rec := range ds.Records {
		if rec.Date == nil {
			continue
		}
		if rec.Date.Before(*start) || rec.Date.After(*end) {
			continue
		}
		kept = append(kept, rec)
	}
	return ds.WithRecords(kept)
}

// LastCompleteWeek computes the Monday-Sunday range strictly preceding the
// week containing now. The end lands on the most recent Sunday before today;
// when today is Monday that Sunday is yesterday. EndInclusive pushes the end
// to Sunday 23:59:59.999999 so inclusive timestamp comparisons are exact.
func LastCompleteWeek(now time.Time) domain.WeekRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// ISO weekday with Monday = 0.
	weekdayIdx := (int(today.Weekday()) + 6) % 7
	weekdayIdx++

	end := today.AddDate(0, 0, -weekdayIdx)
	start := end.AddDate(0, 0, -6)
	endInclusive := end.Add(24*time.Hour - time.Microsecond)

	return domain.WeekRange{Start: start, End: end, EndInclusive: endInclusive}
}

// ByWeek keeps records dated inside [wr.Start, wr.EndInclusive].
func ByWeek(ds domain.Dataset, wr domain.WeekRange) domain.Dataset {
	return DateRange(ds, &wr.Start, &wr.EndInclusive)
}

// Values returns the sorted distinct raw values of a column, for building
// filter pickers. Unset column yields nil.
func Values(ds domain.Dataset, column string) []string {
	if column == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, rec := range ds.Records {
		v := rec.Cells[column]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
