package api

import "time"

type ColumnsResponse struct {
	Columns          []string            `json:"columns"`
	SuggestedMapping map[string]string   `json:"suggested_mapping"`
	FilterValues     map[string][]string `json:"filter_values"`
	Notice           string              `json:"notice,omitempty"`
}

type Summary struct {
	RecordCount       int     `json:"record_count"`
	TotalValue        float64 `json:"total_value"`
	TotalValueLabel   string  `json:"total_value_label"`
	BillableValue     float64 `json:"billable_value"`
	BillableLabel     string  `json:"billable_label"`
	CollaboratorCount int     `json:"collaborator_count"`
	AverageTicket     float64 `json:"average_ticket"`
	AverageLabel      string  `json:"average_label"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Label    string  `json:"label"`
}

type TopResponse struct {
	Role string          `json:"role"`
	Rows []CategoryTotal `json:"rows"`
}

type DonutResponse struct {
	Role   string          `json:"role"`
	Chart  []CategoryTotal `json:"chart"`
	Ranked []DonutDetail   `json:"ranked"`
	Total  float64         `json:"total"`
}

type DonutDetail struct {
	Category       string  `json:"category"`
	Total          float64 `json:"total"`
	Label          string  `json:"label"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

type ParetoRow struct {
	Category          string  `json:"category"`
	Total             float64 `json:"total"`
	Label             string  `json:"label"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

type ParetoResponse struct {
	Chart         []CategoryTotal `json:"chart"`
	Rows          []ParetoRow     `json:"rows"`
	Count80       int             `json:"count_80"`
	CutoffPercent float64         `json:"cutoff_percent"`
	Total         float64         `json:"total"`
}

type HourlyRow struct {
	Hour        int     `json:"hour"`
	Label       string  `json:"label"`
	Shift       string  `json:"shift"`
	ShiftColor  string  `json:"shift_color"`
	AvgCost     float64 `json:"avg_cost"`
	EntryVolume int     `json:"entry_volume"`
	ExitVolume  int     `json:"exit_volume"`
}

type WeekdayTotal struct {
	Weekday int     `json:"weekday"`
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
}

type DateTotal struct {
	Date      string   `json:"date"`
	Total     float64  `json:"total"`
	MovingAvg *float64 `json:"moving_avg,omitempty"`
}

type MonthTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type EvolutionResponse struct {
	Granularity string       `json:"granularity"`
	Daily       []DateTotal  `json:"daily,omitempty"`
	Monthly     []MonthTotal `json:"monthly,omitempty"`
}

type BillableResponse struct {
	Rows            []CategoryTotal `json:"rows"`
	RecoveryPercent float64         `json:"recovery_percent"`
}

type WeekRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type LastWeekResponse struct {
	Range            WeekRange       `json:"range"`
	Empty            bool            `json:"empty"`
	Summary          Summary         `json:"summary"`
	RecoveryPercent  float64         `json:"recovery_percent"`
	Daily            []WeekdayTotal  `json:"daily"`
	TopSites         []CategoryTotal `json:"top_sites"`
	TopCollaborators []CategoryTotal `json:"top_collaborators"`
	Sectors          DonutResponse   `json:"sectors"`
	Hourly           []HourlyRow     `json:"hourly"`
}

type RecordsResponse struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Count   int                 `json:"count"`
}
