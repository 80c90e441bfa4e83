package aggregate

import "github.com/trontec/extras-atlas/pkg/models/domain"

// Pareto ranks all groups for a role descending by total, computes the
// running cumulative percentage over the full ranked list, and determines the
// 80/20 statistic. Count80 is the number of rows with cumulative share <= 80%
// plus the row that crosses the threshold, capped at the list length. The
// chart rows independently bucket into top-n plus othersLabel; the 80/20
// numbers always come from the full list regardless of n.
func Pareto(ds domain.Dataset, role domain.Role, n int, othersLabel string) ([]domain.CategoryTotal, domain.ParetoAnalysis) {
	ranked := RankDesc(SumByCategory(ds, role))
	if len(ranked) == 0 {
		return nil, domain.ParetoAnalysis{}
	}

	var total float64
	for _, g := range ranked {
		total += g.Total
	}

	rows := make([]domain.ParetoRow, 0, len(ranked))
	var cum float64
	for _, g := range ranked {
		cum += g.Total
		pct := 0.0
		if total > 0 {
			pct = cum / total * 100
		}
		rows = append(rows, domain.ParetoRow{
			Category:          g.Category,
			Total:             g.Total,
			CumulativePercent: pct,
		})
	}

	analysis := domain.ParetoAnalysis{Rows: rows, Total: total}
	if total > 0 {
		count := 0
		for _, r := range rows {
			if r.CumulativePercent <= 80 {
				count++
			} else {
				break
			}
		}
		// Include the row that crosses 80%, when there is one.
		if count < len(rows) {
			count++
		}
		analysis.Count80 = count
		analysis.CutoffPercent = rows[count-1].CumulativePercent
	}

	return TopNWithOthers(ranked, n, othersLabel, false), analysis
}
