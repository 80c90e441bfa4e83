// Package dashboard orchestrates the engines per user interaction: load the
// current table, normalize it against the session mapping, apply the selected
// filters, and run the requested aggregation. It holds no state between
// calls; every view is computed fresh from the loaded dataset.
package dashboard

import (
	"context"
	"time"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/models/store"
	"github.com/trontec/extras-atlas/pkg/services/aggregate"
	"github.com/trontec/extras-atlas/pkg/services/dataset"
	"github.com/trontec/extras-atlas/pkg/services/filter"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

// TableLoader supplies the current raw table plus an optional user-facing
// notice about its provenance.
type TableLoader interface {
	Load(ctx context.Context) (store.Table, string, error)
}

// Selection is the user's filter state for one interaction.
type Selection struct {
	Collaborators []string
	Sites         []string
	Sectors       []string
	Billable      []string
	Start         *time.Time
	End           *time.Time
}

// ColumnInfo describes the loaded table for the mapping/filter UI.
type ColumnInfo struct {
	Columns      []string
	Suggested    domain.ColumnMapping
	FilterValues map[domain.Role][]string
	Notice       string
}

type Service interface {
	Columns(ctx context.Context) (*ColumnInfo, error)
	Summary(ctx context.Context, sel Selection) (domain.Summary, error)
	DailyEvolution(ctx context.Context, sel Selection, maWindow int) ([]domain.DateTotal, error)
	MonthlyEvolution(ctx context.Context, sel Selection) ([]domain.MonthTotal, error)
	Top(ctx context.Context, sel Selection, role domain.Role, n int, ascending bool) ([]domain.CategoryTotal, error)
	Donut(ctx context.Context, sel Selection, role domain.Role, n int) (domain.DonutResult, error)
	Pareto(ctx context.Context, sel Selection, n int) ([]domain.CategoryTotal, domain.ParetoAnalysis, error)
	Hourly(ctx context.Context, sel Selection) ([]domain.HourlyRow, error)
	Weekday(ctx context.Context, sel Selection) ([]domain.WeekdayTotal, error)
	Transport(ctx context.Context, sel Selection) ([]domain.CategoryTotal, error)
	Billable(ctx context.Context, sel Selection) ([]domain.CategoryTotal, float64, error)
	LastWeek(ctx context.Context, sel Selection) (domain.LastWeekReport, error)
	Records(ctx context.Context, sel Selection) (domain.Dataset, error)
}

type service struct {
	loader  TableLoader
	mapping domain.ColumnMapping // explicit session mapping; nil means auto-suggest
	now     func() time.Time
}

// Option tweaks a Service.
type Option func(*service)

// WithMapping pins an explicit column mapping instead of the header
// heuristics.
func WithMapping(m domain.ColumnMapping) Option {
	return func(s *service) { s.mapping = m }
}

// WithClock overrides the service clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(loader TableLoader, opts ...Option) Service {
	s := &service{loader: loader, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// current loads the table and builds the normalized dataset for this request.
func (s *service) current(ctx context.Context) (domain.Dataset, string, error) {
	table, notice, err := s.loader.Load(ctx)
	if err != nil {
		return domain.Dataset{}, "", err
	}

	mapping := s.mapping
	if mapping == nil {
		mapping = normalize.SuggestMapping(table.Columns)
	}
	return dataset.Build(table, mapping), notice, nil
}

func (s *service) filtered(ctx context.Context, sel Selection) (domain.Dataset, error) {
	ds, _, err := s.current(ctx)
	if err != nil {
		return domain.Dataset{}, err
	}

	ds = filter.DateRange(ds, sel.Start, sel.End)
	ds = filter.ByRole(ds, domain.RoleCollaborator, sel.Collaborators)
	ds = filter.ByRole(ds, domain.RoleSite, sel.Sites)
	ds = filter.ByRole(ds, domain.RoleSector, sel.Sectors)
	ds = filter.ByRole(ds, domain.RoleBillable, sel.Billable)
	return ds, nil
}

func (s *service) Columns(ctx context.Context) (*ColumnInfo, error) {
	ds, notice, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[domain.Role][]string)
	for _, role := range []domain.Role{
		domain.RoleCollaborator, domain.RoleSite, domain.RoleSector, domain.RoleBillable,
	} {
		if col, ok := ds.Mapping.Column(role); ok {
			values[role] = filter.Values(ds, col)
		}
	}

	return &ColumnInfo{
		Columns:      ds.Columns,
		Suggested:    ds.Mapping,
		FilterValues: values,
		Notice:       notice,
	}, nil
}

func (s *service) Summary(ctx context.Context, sel Selection) (domain.Summary, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return domain.Summary{}, err
	}
	return aggregate.Summary(ds), nil
}

func (s *service) DailyEvolution(ctx context.Context, sel Selection, maWindow int) ([]domain.DateTotal, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	return aggregate.MovingAverage(aggregate.DailyTotals(ds), maWindow), nil
}

func (s *service) MonthlyEvolution(ctx context.Context, sel Selection) ([]domain.MonthTotal, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	return aggregate.MonthlyTotals(ds), nil
}

func (s *service) Top(ctx context.Context, sel Selection, role domain.Role, n int, ascending bool) ([]domain.CategoryTotal, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	grouped := aggregate.SumByCategory(ds, role)
	if grouped == nil {
		return nil, nil
	}
	return aggregate.TopNWithOthers(grouped, n, othersLabel, ascending), nil
}

func (s *service) Donut(ctx context.Context, sel Selection, role domain.Role, n int) (domain.DonutResult, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return domain.DonutResult{}, err
	}
	return aggregate.DonutBreakdown(ds, role, n, othersSectorsLabel), nil
}

func (s *service) Pareto(ctx context.Context, sel Selection, n int) ([]domain.CategoryTotal, domain.ParetoAnalysis, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, domain.ParetoAnalysis{}, err
	}
	chart, analysis := aggregate.Pareto(ds, domain.RoleSite, n, paretoOthersLabel)
	return chart, analysis, nil
}

func (s *service) Hourly(ctx context.Context, sel Selection) ([]domain.HourlyRow, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	return aggregate.HourlyDualMetric(ds), nil
}

func (s *service) Weekday(ctx context.Context, sel Selection) ([]domain.WeekdayTotal, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	return aggregate.DailyOfWeekTotals(ds), nil
}

func (s *service) Transport(ctx context.Context, sel Selection) ([]domain.CategoryTotal, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, err
	}
	return aggregate.MeanByCategory(ds, domain.RoleOwnTransport), nil
}

func (s *service) Billable(ctx context.Context, sel Selection) ([]domain.CategoryTotal, float64, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return nil, 0, err
	}
	return aggregate.SumByCategory(ds, domain.RoleBillable), aggregate.BillableRecovery(ds), nil
}

func (s *service) LastWeek(ctx context.Context, sel Selection) (domain.LastWeekReport, error) {
	ds, err := s.filtered(ctx, sel)
	if err != nil {
		return domain.LastWeekReport{}, err
	}

	wr := filter.LastCompleteWeek(s.now())
	week := filter.ByWeek(ds, wr)

	report := domain.LastWeekReport{Range: wr}
	if week.Empty() {
		report.Empty = true
		return report, nil
	}

	report.Summary = aggregate.Summary(week)
	report.RecoveryPercent = aggregate.BillableRecovery(week)
	report.Daily = aggregate.DailyOfWeekTotals(week)
	report.TopSites = aggregate.TopN(aggregate.SumByCategory(week, domain.RoleSite), 5)
	report.TopCollaborators = aggregate.TopN(aggregate.SumByCategory(week, domain.RoleCollaborator), 10)
	report.Sectors = aggregate.DonutBreakdown(week, domain.RoleSector, 5, othersSectorsLabel)
	report.Hourly = aggregate.HourlyDualMetric(week)
	return report, nil
}

func (s *service) Records(ctx context.Context, sel Selection) (domain.Dataset, error) {
	return s.filtered(ctx, sel)
}

const (
	othersLabel        = "Outros"
	othersSectorsLabel = "Outros Setores"
	paretoOthersLabel  = "Demais"
)
