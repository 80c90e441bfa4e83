package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trontec/extras-atlas/pkg/adapters"
	"github.com/trontec/extras-atlas/pkg/models/api"
	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/dashboard"
)

const (
	defaultTopN     = 10
	defaultDonutN   = 5
	defaultParetoN  = 15
	defaultMAWindow = 7
)

type Handler struct {
	svc dashboard.Service
}

func NewHandler(svc dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

// parseSelection reads the filter state from query parameters. Repeated
// params are multi-select values; start/end are dates in YYYY-MM-DD form.
func parseSelection(r *http.Request) dashboard.Selection {
	q := r.URL.Query()
	sel := dashboard.Selection{
		Collaborators: q["collaborator"],
		Sites:         q["site"],
		Sectors:       q["sector"],
		Billable:      q["billable"],
	}
	if t, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
		sel.Start = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
		end := t.Add(24*time.Hour - time.Microsecond)
		sel.End = &end
	}
	return sel
}

func intParam(r *http.Request, name string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any, err error) {
	logger := zerolog.Ctx(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) GetColumns(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Columns(r.Context())
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}

	values := make(map[string][]string, len(info.FilterValues))
	for role, v := range info.FilterValues {
		values[string(role)] = v
	}
	h.respond(w, r, api.ColumnsResponse{
		Columns:          info.Columns,
		SuggestedMapping: adapters.MapMappingDomainToApi(info.Suggested),
		FilterValues:     values,
		Notice:           info.Notice,
	}, nil)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapSummaryDomainToApi(s), nil)
}

func (h *Handler) GetEvolution(w http.ResponseWriter, r *http.Request) {
	sel := parseSelection(r)
	granularity := r.URL.Query().Get("granularity")
	if granularity == "monthly" {
		monthly, err := h.svc.MonthlyEvolution(r.Context(), sel)
		if err != nil {
			h.respond(w, r, nil, err)
			return
		}
		h.respond(w, r, api.EvolutionResponse{
			Granularity: "monthly",
			Monthly:     adapters.MapMonthTotalsDomainToApi(monthly),
		}, nil)
		return
	}

	daily, err := h.svc.DailyEvolution(r.Context(), sel, intParam(r, "ma", defaultMAWindow))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, api.EvolutionResponse{
		Granularity: "daily",
		Daily:       adapters.MapDateTotalsDomainToApi(daily),
	}, nil)
}

var topRoles = map[string]domain.Role{
	"site":         domain.RoleSite,
	"collaborator": domain.RoleCollaborator,
	"reason":       domain.RoleReason,
}

func (h *Handler) GetTop(w http.ResponseWriter, r *http.Request) {
	roleName := r.URL.Query().Get("role")
	role, ok := topRoles[roleName]
	if !ok {
		http.Error(w, "unknown role "+roleName, http.StatusBadRequest)
		return
	}

	rows, err := h.svc.Top(r.Context(), parseSelection(r),
		role, intParam(r, "n", defaultTopN), r.URL.Query().Get("order") == "asc")
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, api.TopResponse{
		Role: roleName,
		Rows: adapters.MapCategoryTotalsDomainToApi(rows),
	}, nil)
}

func (h *Handler) GetDonut(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Donut(r.Context(), parseSelection(r),
		domain.RoleSector, intParam(r, "n", defaultDonutN))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapDonutResultDomainToApi(domain.RoleSector, result), nil)
}

func (h *Handler) GetPareto(w http.ResponseWriter, r *http.Request) {
	chart, analysis, err := h.svc.Pareto(r.Context(), parseSelection(r), intParam(r, "n", defaultParetoN))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapParetoDomainToApi(chart, analysis), nil)
}

func (h *Handler) GetHourly(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Hourly(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapHourlyRowsDomainToApi(rows), nil)
}

func (h *Handler) GetWeekday(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Weekday(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapWeekdayTotalsDomainToApi(rows), nil)
}

func (h *Handler) GetTransport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Transport(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, api.TopResponse{
		Role: string(domain.RoleOwnTransport),
		Rows: adapters.MapCategoryTotalsDomainToApi(rows),
	}, nil)
}

func (h *Handler) GetBillable(w http.ResponseWriter, r *http.Request) {
	rows, recovery, err := h.svc.Billable(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, api.BillableResponse{
		Rows:            adapters.MapCategoryTotalsDomainToApi(rows),
		RecoveryPercent: recovery,
	}, nil)
}

func (h *Handler) GetLastWeek(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.LastWeek(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapLastWeekReportDomainToApi(report), nil)
}

func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Records(r.Context(), parseSelection(r))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, adapters.MapDatasetDomainToApiRecords(ds), nil)
}
