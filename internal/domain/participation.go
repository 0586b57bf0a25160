package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// BlockingStatuses are the statuses that block a new request for the same
// (event, requester) pair. Only cancellation frees the pair: a rejected
// request stays on record and keeps blocking re-application.
var BlockingStatuses = []RequestStatus{RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected}

// transitions is the closed transition table for a participation request.
// Rejected and canceled are terminal.
var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusConfirmed, RequestStatusRejected, RequestStatusCanceled},
	RequestStatusConfirmed: {RequestStatusCanceled},
}

// CanTransition reports whether a request may move from its current status
// to the target one.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseRequestStatus validates a status value coming off the wire.
func ParseRequestStatus(raw string) (RequestStatus, error) {
	switch RequestStatus(raw) {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected, RequestStatusCanceled:
		return RequestStatus(raw), nil
	}
	return "", ErrUnknownStatus
}

// Participation is a single user's request to attend an event.
type Participation struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ReviewResult is the outcome of a batch confirm/reject. On a mid-batch
// conflict both lists reflect the transitions already persisted.
type ReviewResult struct {
	Confirmed []*Participation `json:"confirmed_requests"`
	Rejected  []*Participation `json:"rejected_requests"`
}
