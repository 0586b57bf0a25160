package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, initiatorID, eventID string, input domain.UpdateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, eventID string) (*domain.Event, error)
	Reject(ctx context.Context, eventID string) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByInitiator(ctx context.Context, initiatorID string) ([]*domain.Event, error)
}

type ParticipationSvc interface {
	Create(ctx context.Context, requesterID, eventID string) (*domain.Participation, error)
	Review(ctx context.Context, initiatorID, eventID string, requestIDs []string, target domain.RequestStatus) (*domain.ReviewResult, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.Participation, error)
	ListMine(ctx context.Context, requesterID string) ([]*domain.Participation, error)
	ListForEvent(ctx context.Context, eventID, initiatorID string) ([]*domain.Participation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService   EventSvc
	requestService ParticipationSvc
	userService    UserSvc
}

func NewHandler(eventService EventSvc, requestService ParticipationSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		requestService: requestService,
		userService:    userService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	initiatorID := c.Param("id")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		EventDate:         eventDate,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}

	event, err := h.eventService.Create(c.Request.Context(), initiatorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	initiatorID := c.Param("id")
	eventID := c.Param("eventId")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected RFC3339",
			})
			return
		}
		input.EventDate = &eventDate
	}

	event, err := h.eventService.Update(c.Request.Context(), initiatorID, eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListMyEvents(c *ginext.Context) {
	initiatorID := c.Param("id")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	events, err := h.eventService.ListByInitiator(c.Request.Context(), initiatorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Publish(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) RejectEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Reject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Participation requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	requesterID := c.Param("id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.CreateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), requesterID, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipationResponse(request))
}

func (h *Handler) ListMyRequests(c *ginext.Context) {
	requesterID := c.Param("id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	requests, err := h.requestService.ListMine(c.Request.Context(), requesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipationResponses(requests))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	requesterID := c.Param("id")
	requestID := c.Param("reqId")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), requesterID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipationResponse(request))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	initiatorID := c.Param("id")
	eventID := c.Param("eventId")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), eventID, initiatorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipationResponses(requests))
}

func (h *Handler) ReviewRequests(c *ginext.Context) {
	initiatorID := c.Param("id")
	eventID := c.Param("eventId")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	target, err := domain.ParseRequestStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status"})
		return
	}

	result, err := h.requestService.Review(c.Request.Context(), initiatorID, eventID, req.RequestIDs, target)
	if err != nil {
		// Transitions applied before the conflict are already durable, so
		// the partial result rides along with the error.
		if errors.Is(err, domain.ErrLimitReached) || errors.Is(err, domain.ErrAlreadyConfirmed) {
			c.JSON(http.StatusConflict, dto.ReviewConflictResponse{
				Error:  err.Error(),
				Result: dto.ToReviewResponse(result),
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(result))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrLimitReached),
		errors.Is(err, domain.ErrRequestExists),
		errors.Is(err, domain.ErrSelfRequest),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrRequestFinalized),
		errors.Is(err, domain.ErrEventPublished),
		errors.Is(err, domain.ErrEventNotPending),
		errors.Is(err, domain.ErrWrongDate),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
