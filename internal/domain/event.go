package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventIncidentCreated EventType = "incident.created"
	EventIncidentUpdated EventType = "incident.updated"
	EventIncidentClosed  EventType = "incident.closed"
)

// IncidentEvent is what the dispatcher delivers to the webhook.
type IncidentEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	IncidentID int64     `json:"id_incident"`
	StateID    int       `json:"id_state"`
	ShowOnMap  bool      `json:"show_on_map"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewIncidentEvent(t EventType, inc *Incident, actor string) IncidentEvent {
	return IncidentEvent{
		ID:         uuid.New(),
		Type:       t,
		IncidentID: inc.ID,
		StateID:    inc.State().ID,
		ShowOnMap:  inc.ShowOnMap,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}
