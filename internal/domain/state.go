package domain

type State struct {
	ID          int    `json:"id_state"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

const (
	StateReported  = 1
	StateInProcess = 2
	StateResolved  = 3
)

var states = []State{
	{ID: StateReported, Description: "Reported", Color: "#C62828"},
	{ID: StateInProcess, Description: "In process", Color: "#F9A825"},
	{ID: StateResolved, Description: "Resolved", Color: "#2E7D32"},
}

// DeriveState is the only source of the lifecycle label. The order of the
// checks matters: a closed incident is resolved whatever its priority.
func DeriveState(isClosed, priorityIsSet bool) State {
	switch {
	case isClosed:
		return states[StateResolved-1]
	case priorityIsSet:
		return states[StateInProcess-1]
	default:
		return states[StateReported-1]
	}
}

func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// StatePredicate is the column condition equivalent to a state id.
// PriorityIsNull is nil when the priority column is not constrained.
type StatePredicate struct {
	IsClosed       bool
	PriorityIsNull *bool
}

func PredicateForState(id int) (StatePredicate, bool) {
	isNull, notNull := true, false
	switch id {
	case StateResolved:
		return StatePredicate{IsClosed: true}, true
	case StateInProcess:
		return StatePredicate{IsClosed: false, PriorityIsNull: &notNull}, true
	case StateReported:
		return StatePredicate{IsClosed: false, PriorityIsNull: &isNull}, true
	default:
		return StatePredicate{}, false
	}
}

// Matches reports whether an incident with the given stored fields falls
// under the predicate.
func (p StatePredicate) Matches(isClosed, priorityIsSet bool) bool {
	if p.IsClosed != isClosed {
		return false
	}
	if p.PriorityIsNull == nil {
		return true
	}
	return *p.PriorityIsNull == !priorityIsSet
}
