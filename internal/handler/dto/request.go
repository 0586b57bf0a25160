package dto

type CreateEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Annotation        string `json:"annotation"`
	Description       string `json:"description"`
	EventDate         string `json:"event_date" binding:"required"`
	ParticipantLimit  int    `json:"participant_limit" binding:"gte=0"`
	RequestModeration *bool  `json:"request_moderation"`
}

type UpdateEventRequest struct {
	Title             *string `json:"title"`
	Annotation        *string `json:"annotation"`
	Description       *string `json:"description"`
	EventDate         *string `json:"event_date"`
	ParticipantLimit  *int    `json:"participant_limit"`
	RequestModeration *bool   `json:"request_moderation"`
}

type CreateParticipationRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

type ReviewRequest struct {
	RequestIDs []string `json:"request_ids" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
