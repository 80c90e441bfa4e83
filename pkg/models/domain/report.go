package domain

import "time"

// CategoryTotal is one row of a grouped aggregation: a category and its
// summed (or averaged) value.
type CategoryTotal struct {
	Category string
	Total    float64
}

// DonutResult carries both the chart-ready top-N rows and the full ranked
// breakdown the detail tables need, plus the grand total of the ranked data.
type DonutResult struct {
	Chart  []CategoryTotal
	Ranked []CategoryTotal
	Total  float64
}

// ParetoRow is one ranked category with its running cumulative share of the
// grand total.
type ParetoRow struct {
	Category          string
	Total             float64
	CumulativePercent float64
}

// ParetoAnalysis is the 80/20 statistic computed over the full ranked list.
// Count80 is the smallest number of leading rows whose cumulative share
// crosses 80%; CutoffPercent is the cumulative share at that row.
type ParetoAnalysis struct {
	Rows          []ParetoRow
	Count80       int
	CutoffPercent float64
	Total         float64
}

// HourlyRow is one hour of the dual-metric shift analysis. All 24 hours are
// always present; empty hours carry zeros.
type HourlyRow struct {
	Hour        int
	Label       string
	Shift       Shift
	AvgCost     float64
	EntryVolume int
	ExitVolume  int
}

// WeekdayTotal is a summed value for one day of the week, Monday-first.
type WeekdayTotal struct {
	Weekday int // Monday = 0 .. Sunday = 6
	Name    string
	Total   float64
}

// DateTotal is a summed value for one calendar date. MovingAvg is set only
// once the smoothing window is full.
type DateTotal struct {
	Date      time.Time
	Total     float64
	MovingAvg *float64
}

// MonthTotal is a summed value for one calendar month.
type MonthTotal struct {
	Year  int
	Month time.Month
	Total float64
}

// Summary is the KPI block shown at the top of the dashboard.
type Summary struct {
	RecordCount       int
	TotalValue        float64
	BillableValue     float64
	CollaboratorCount int
	AverageTicket     float64
}

// WeekRange is a Monday-to-Sunday span. EndInclusive extends End to the last
// representable instant of that Sunday so inclusive comparisons against
// timestamps are exact.
type WeekRange struct {
	Start        time.Time
	End          time.Time
	EndInclusive time.Time
}

// LastWeekReport is the full "previous complete week" view.
type LastWeekReport struct {
	Range            WeekRange
	Empty            bool
	Summary          Summary
	RecoveryPercent  float64
	Daily            []WeekdayTotal
	TopSites         []CategoryTotal
	TopCollaborators []CategoryTotal
	Sectors          DonutResult
	Hourly           []HourlyRow
}
