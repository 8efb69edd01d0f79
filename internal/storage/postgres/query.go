package postgres

import (
	"fmt"
	"strings"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

const incidentColumns = `
	i.id_incident, i.registration_date, i.id_category, c.description,
	i.latitude::text, i.longitude::text, i.summary, COALESCE(i.reference, ''),
	i.show_on_map, i.user_type, i.is_closed,
	i.inspector_id, iu.username,
	i.citizen_name, i.citizen_lastname, i.citizen_phone, i.citizen_email,
	i.id_priority, p.description, i.derivation_document,
	i.id_closure_type, ct.description, i.closure_description, i.closure_date,
	i.closure_user_id, cu.username`

// One joined read for every display name the serialized incident carries.
const incidentFrom = `
FROM incident i
JOIN incident_category c ON c.id_category = i.id_category
LEFT JOIN incident_priority p ON p.id_priority = i.id_priority
LEFT JOIN incident_closure_type ct ON ct.id_closure_type = i.id_closure_type
LEFT JOIN auth_user iu ON iu.id = i.inspector_id
LEFT JOIN auth_user cu ON cu.id = i.closure_user_id`

const incidentOrder = `
ORDER BY i.registration_date DESC, i.id_incident DESC`

// whereBuilder collects AND-ed conditions with positional args.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "\nWHERE " + strings.Join(w.conds, "\n  AND ")
}

func buildIncidentFilter(f domain.IncidentFilter) (string, []any, error) {
	w := &whereBuilder{}

	if f.IncidentID != nil {
		w.add("i.id_incident = ?", *f.IncidentID)
	}
	if f.CategoryID != nil {
		w.add("i.id_category = ?", *f.CategoryID)
	}
	if f.StateID != nil {
		pred, ok := domain.PredicateForState(*f.StateID)
		if !ok {
			return "", nil, e.NewValidationError("unknown state", "id_state")
		}
		w.add("i.is_closed = ?", pred.IsClosed)
		if pred.PriorityIsNull != nil {
			if *pred.PriorityIsNull {
				w.add("i.id_priority IS NULL")
			} else {
				w.add("i.id_priority IS NOT NULL")
			}
		}
	}
	if f.ShowOnMap != nil {
		w.add("i.show_on_map = ?", *f.ShowOnMap)
	}
	if q := strings.TrimSpace(f.TextSearch); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		w.add(`(i.summary ILIKE ? ESCAPE '\' OR COALESCE(i.reference, '') ILIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if f.From != nil {
		w.add("i.registration_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("i.registration_date <= ?", *f.To)
	}

	return w.sql(), w.args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
