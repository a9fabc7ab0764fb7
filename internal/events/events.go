package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics for collection change notifications. Each collection has its own
// topic; no delivery order is guaranteed across topics.
const (
	TopicContentChanged  = "content.changed"
	TopicUpdatesChanged  = "updates.changed"
	TopicFeedbackChanged = "feedback.changed"
)

// Actions recorded in change events.
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// Event is the envelope published on the change bus. Subscribers treat it
// as a pure invalidation signal: on receipt they re-query the collection
// and replace their snapshot, so a lost field here can never corrupt state.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// ChangeData describes what happened to a collection entity.
type ChangeData struct {
	Action   string `json:"action"`
	EntityID string `json:"entity_id"`
}

// NewChangeEvent builds a change event for the given topic.
func NewChangeEvent(topic, action, entityID string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      topic,
		Source:    "boldscholars-platform",
		Timestamp: time.Now().UTC(),
		Data: ChangeData{
			Action:   action,
			EntityID: entityID,
		},
	}
}
