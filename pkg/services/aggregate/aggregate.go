// Package aggregate turns a filtered dataset plus a target numeric column
// into small result tables ready for charting. Every function is pure and
// deterministic: no side effects, fresh result slices on each call, empty
// input in gives empty result out, and unset roles short-circuit to nil.
package aggregate

import (
	"sort"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

// Placeholder category values dropped by DonutBreakdown.
var placeholderCategories = map[string]bool{
	"0":    true,
	"0.0":  true,
	"nan":  true,
	"None": true,
	"":     true,
}

// SumByCategory groups records by the raw value of the role column and sums
// the monetary value per group. Groups appear in first-seen order. Distinct
// raw spellings of "the same" category (different casing, stray spaces) are
// distinct groups; merging them is out of scope here.
func SumByCategory(ds domain.Dataset, role domain.Role) []domain.CategoryTotal {
	col, ok := ds.Mapping.Column(role)
	if !ok || !ds.Mapping.IsSet(domain.RoleValue) {
		return nil
	}
	return groupValues(ds, col, false)
}

// MeanByCategory is SumByCategory with a per-group mean instead of a sum.
func MeanByCategory(ds domain.Dataset, role domain.Role) []domain.CategoryTotal {
	col, ok := ds.Mapping.Column(role)
	if !ok || !ds.Mapping.IsSet(domain.RoleValue) {
		return nil
	}
	return groupValues(ds, col, true)
}

func groupValues(ds domain.Dataset, column string, mean bool) []domain.CategoryTotal {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, rec := range ds.Records {
		key := rec.Cells[column]
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += rec.Value
		counts[key]++
	}

	out := make([]domain.CategoryTotal, 0, len(order))
	for _, key := range order {
		total := sums[key]
		if mean {
			total /= float64(counts[key])
		}
		out = append(out, domain.CategoryTotal{Category: key, Total: total})
	}
	return out
}

// RankDesc returns a copy of groups sorted by total descending. Ties keep
// their original relative order.
func RankDesc(groups []domain.CategoryTotal) []domain.CategoryTotal {
	ranked := append([]domain.CategoryTotal(nil), groups...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })
	return ranked
}

// TopNWithOthers ranks groups descending, keeps the first n, and folds the
// remainder into one synthetic row labeled othersLabel, appended after the
// top N. Ranking decides membership; when ascendingForDisplay is set a final
// ascending sort reorders the result for horizontal bar charts without
// changing which rows made the cut.
func TopNWithOthers(groups []domain.CategoryTotal, n int, othersLabel string, ascendingForDisplay bool) []domain.CategoryTotal {
	ranked := RankDesc(groups)

	var out []domain.CategoryTotal
	if len(ranked) > n {
		out = append([]domain.CategoryTotal(nil), ranked[:n]...)
		var others float64
		for _, g := range ranked[n:] {
			others += g.Total
		}
		out = append(out, domain.CategoryTotal{Category: othersLabel, Total: others})
	} else {
		out = append([]domain.CategoryTotal(nil), ranked...)
	}

	if ascendingForDisplay {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Total < out[j].Total })
	}
	return out
}

// TopN ranks groups descending and truncates to n, with no others bucket.
func TopN(groups []domain.CategoryTotal, n int) []domain.CategoryTotal {
	ranked := RankDesc(groups)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DonutBreakdown sums by category, drops placeholder categories and
// non-positive totals, then ranks and applies top-N-with-others. The ranked
// pre-bucketing rows and the grand total of the ranked (not bucketed) data
// are returned alongside the chart rows for detail tables and
// percentage-of-total math.
func DonutBreakdown(ds domain.Dataset, role domain.Role, n int, othersLabel string) domain.DonutResult {
	grouped := SumByCategory(ds, role)

	kept := make([]domain.CategoryTotal, 0, len(grouped))
	var total float64
	for _, g := range grouped {
		if placeholderCategories[g.Category] || g.Total <= 0 {
			continue
		}
		kept = append(kept, g)
		total += g.Total
	}

	ranked := RankDesc(kept)
	return domain.DonutResult{
		Chart:  TopNWithOthers(ranked, n, othersLabel, false),
		Ranked: ranked,
		Total:  total,
	}
}

// Summary computes the dashboard KPI block over a filtered dataset.
func Summary(ds domain.Dataset) domain.Summary {
	s := domain.Summary{RecordCount: ds.Len()}

	if ds.Mapping.IsSet(domain.RoleValue) {
		for _, rec := range ds.Records {
			s.TotalValue += rec.Value
		}
		if s.RecordCount > 0 {
			s.AverageTicket = s.TotalValue / float64(s.RecordCount)
		}
	}

	if billableCol, ok := ds.Mapping.Column(domain.RoleBillable); ok && ds.Mapping.IsSet(domain.RoleValue) {
		for _, rec := range ds.Records {
			if rec.Cells[billableCol] == normalize.Yes {
				s.BillableValue += rec.Value
			}
		}
	}

	if colabCol, ok := ds.Mapping.Column(domain.RoleCollaborator); ok {
		distinct := make(map[string]bool)
		for _, rec := range ds.Records {
			distinct[rec.Cells[colabCol]] = true
		}
		s.CollaboratorCount = len(distinct)
	}

	return s
}

// BillableRecovery returns the share of total value that is billable, in
// percent. Zero total yields 0.
func BillableRecovery(ds domain.Dataset) float64 {
	groups := SumByCategory(ds, domain.RoleBillable)
	var total, recoverable float64
	for _, g := range groups {
		total += g.Total
		if g.Category == normalize.Yes {
			recoverable += g.Total
		}
	}
	if total <= 0 {
		return 0
	}
	return recoverable / total * 100
}
