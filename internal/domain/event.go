package domain

import "time"

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	InitiatorID       string     `json:"initiator_id"`
	State             EventState `json:"state"`
	EventDate         time.Time  `json:"event_date"`
	ParticipantLimit  int        `json:"participant_limit"`
	RequestModeration bool       `json:"request_moderation"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Unlimited reports whether the event has no seat limit.
// participant_limit = 0 means unlimited.
func (e *Event) Unlimited() bool {
	return e.ParticipantLimit <= 0
}

type CreateEventInput struct {
	Title             string
	Annotation        string
	Description       string
	EventDate         time.Time
	ParticipantLimit  int
	RequestModeration *bool
}

type UpdateEventInput struct {
	Title             *string
	Annotation        *string
	Description       *string
	EventDate         *time.Time
	ParticipantLimit  *int
	RequestModeration *bool
}
