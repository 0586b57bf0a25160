package dto

import (
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
)

type EventResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Annotation        string `json:"annotation"`
	Description       string `json:"description"`
	InitiatorID       string `json:"initiator_id"`
	State             string `json:"state"`
	EventDate         string `json:"event_date"`
	ParticipantLimit  int    `json:"participant_limit"`
	RequestModeration bool   `json:"request_moderation"`
	CreatedAt         string `json:"created_at"`
}

type ParticipationResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ReviewResponse struct {
	ConfirmedRequests []ParticipationResponse `json:"confirmed_requests"`
	RejectedRequests  []ParticipationResponse `json:"rejected_requests"`
}

// ReviewConflictResponse carries the transitions that were persisted before
// the batch hit a conflict.
type ReviewConflictResponse struct {
	Error  string         `json:"error"`
	Result ReviewResponse `json:"result"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		InitiatorID:       e.InitiatorID,
		State:             string(e.State),
		EventDate:         e.EventDate.Format(time.RFC3339),
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipationResponse(p *domain.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		RequesterID: p.RequesterID,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipationResponses(requests []*domain.Participation) []ParticipationResponse {
	resp := make([]ParticipationResponse, 0, len(requests))
	for _, p := range requests {
		resp = append(resp, ToParticipationResponse(p))
	}
	return resp
}

func ToReviewResponse(r *domain.ReviewResult) ReviewResponse {
	return ReviewResponse{
		ConfirmedRequests: ToParticipationResponses(r.Confirmed),
		RejectedRequests:  ToParticipationResponses(r.Rejected),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
