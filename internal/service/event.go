package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/service/ports"
	"github.com/google/uuid"
)

// publishLeadTime is the minimum gap between publication and the event start.
const publishLeadTime = time.Hour

type EventService struct {
	repo     ports.EventRepo
	userRepo ports.UserRepo
}

func NewEventService(repo ports.EventRepo, userRepo ports.UserRepo) *EventService {
	return &EventService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *EventService) Create(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.ParticipantLimit < 0 {
		return nil, fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrWrongDate)
	}

	moderation := true
	if input.RequestModeration != nil {
		moderation = *input.RequestModeration
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		InitiatorID:       initiatorID,
		State:             domain.EventStatePending,
		EventDate:         input.EventDate,
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: moderation,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Update applies the initiator's partial edit. Published events are frozen.
func (s *EventService) Update(ctx context.Context, initiatorID, eventID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByInitiator(ctx, eventID, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.State == domain.EventStatePublished {
		return nil, domain.ErrEventPublished
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Annotation != nil {
		event.Annotation = *input.Annotation
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		if input.EventDate.Before(time.Now()) {
			return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrWrongDate)
		}
		event.EventDate = *input.EventDate
	}
	if input.ParticipantLimit != nil {
		if *input.ParticipantLimit < 0 {
			return nil, fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
		}
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Publish moves a pending event to PUBLISHED. The event must start at least
// an hour after publication.
func (s *EventService) Publish(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.State != domain.EventStatePending {
		return nil, domain.ErrEventNotPending
	}
	if event.EventDate.Before(time.Now().Add(publishLeadTime)) {
		return nil, fmt.Errorf("%w: event must start at least %s after publication", domain.ErrWrongDate, publishLeadTime)
	}

	event.State = domain.EventStatePublished
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}

	return event, nil
}

// Reject moves a pending event to CANCELED. Published events cannot be
// rejected.
func (s *EventService) Reject(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.State != domain.EventStatePending {
		return nil, domain.ErrEventNotPending
	}

	event.State = domain.EventStateCanceled
	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("reject event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListByInitiator(ctx context.Context, initiatorID string) ([]*domain.Event, error) {
	return s.repo.ListByInitiator(ctx, initiatorID)
}
