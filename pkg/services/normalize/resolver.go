package normalize

import (
	"strings"

	"github.com/trontec/extras-atlas/pkg/models/domain"
)

// roleKeywords are the default header keywords per role, in priority order.
// They only drive the suggested mapping; the user-confirmed mapping is the
// single source of truth consumed by the engines.
var roleKeywords = map[domain.Role][]string{
	domain.RoleDate:         {"data"},
	domain.RoleValue:        {"valor (r$)", "valor", "preço"},
	domain.RoleCollaborator: {"colaborador", "funcionário", "nome"},
	domain.RoleSite:         {"condomínio", "cliente", "local"},
	domain.RoleSector:       {"setor", "área"},
	domain.RoleReason:       {"motivo", "descrição"},
	domain.RoleBillable:     {"cobrar do condomínio", "cobrar"},
	domain.RoleEntryTime:    {"horário entrada", "entrada"},
	domain.RoleExitTime:     {"horário saída", "saída"},
	domain.RoleOwnTransport: {"condução própria", "transporte"},
}

// ResolveColumn returns the index of the first name containing any keyword,
// case-insensitive. Names are scanned in original order; keywords in priority
// order per name. The second result is false when nothing matches.
func ResolveColumn(names []string, keywords []string) (int, bool) {
	for i, name := range names {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i, true
			}
		}
	}
	return 0, false
}

// SuggestMapping builds a default column mapping from header text. Roles with
// no matching header are left unset.
func SuggestMapping(columns []string) domain.ColumnMapping {
	mapping := make(domain.ColumnMapping, len(roleKeywords))
	for _, role := range domain.Roles() {
		if idx, ok := ResolveColumn(columns, roleKeywords[role]); ok {
			mapping[role] = columns[idx]
		}
	}
	return mapping
}

// ClassifyShift buckets an hour of day into one of the three fixed shifts.
func ClassifyShift(hour int) domain.Shift {
	switch {
	case hour >= 0 && hour < 6:
		return domain.ShiftMadrugada
	case hour >= 6 && hour < 18:
		return domain.ShiftComercial
	default:
		return domain.ShiftNoturno
	}
}
