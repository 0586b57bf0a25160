package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/guard"
	"github.com/GlebShishkov/explore-with-me/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// ParticipationService implements the request workflow: create, batch
// confirm/reject, cancel and the read projections. Every capacity-affecting
// path runs under the per-event guard, and the limit is always compared to a
// live confirmed count.
type ParticipationService struct {
	requestRepo ports.ParticipationRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	guard       *guard.EventGuard
	notifier    ports.RequestNotifier
	logger      logger.Logger
}

func NewParticipationService(
	requestRepo ports.ParticipationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	g *guard.EventGuard,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *ParticipationService {
	return &ParticipationService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		guard:       g,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *ParticipationService) Create(ctx context.Context, requesterID, eventID string) (*domain.Participation, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	release, err := s.guard.Acquire(ctx, eventID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err = s.requestRepo.FindBlocking(ctx, eventID, requesterID); err == nil {
		return nil, domain.ErrRequestExists
	} else if !errors.Is(err, domain.ErrRequestNotFound) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	if requesterID == event.InitiatorID {
		return nil, domain.ErrSelfRequest
	}

	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotPublished
	}

	if !event.Unlimited() {
		confirmed, err := s.requestRepo.CountConfirmed(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}
		if confirmed >= event.ParticipantLimit {
			return nil, domain.ErrLimitReached
		}
	}

	status := domain.RequestStatusPending
	if !event.RequestModeration {
		status = domain.RequestStatusConfirmed
	}

	now := time.Now().UTC()
	request := &domain.Participation{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("participation request created",
		logger.String("request_id", request.ID),
		logger.String("event_id", eventID),
		logger.String("requester_id", requesterID),
		logger.String("status", string(status)),
	)

	if status == domain.RequestStatusConfirmed {
		go s.notifier.NotifyRequestConfirmed(context.WithoutCancel(ctx), user, event)
	} else {
		go s.notifier.NotifyRequestQueued(context.WithoutCancel(ctx), user, event)
	}

	return request, nil
}

// Review applies target to each pending request in the order the ids were
// given. Every transition persists as it happens, so the returned result is
// meaningful even when an error cuts the batch short.
func (s *ParticipationService) Review(ctx context.Context, initiatorID, eventID string, requestIDs []string, target domain.RequestStatus) (*domain.ReviewResult, error) {
	result := &domain.ReviewResult{}

	if target != domain.RequestStatusConfirmed && target != domain.RequestStatusRejected {
		return result, fmt.Errorf("%w: review status must be CONFIRMED or REJECTED", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByInitiator(ctx, eventID, initiatorID)
	if err != nil {
		return result, fmt.Errorf("check event owner: %w", err)
	}

	release, err := s.guard.Acquire(ctx, eventID)
	if err != nil {
		return result, err
	}
	defer release()

	requests, err := s.requestRepo.ListByIDs(ctx, eventID, requestIDs)
	if err != nil {
		return result, fmt.Errorf("load requests: %w", err)
	}

	byID := make(map[string]*domain.Participation, len(requests))
	for _, p := range requests {
		byID[p.ID] = p
	}

	for _, id := range requestIDs {
		request, ok := byID[id]
		if !ok {
			continue
		}

		switch request.Status {
		case domain.RequestStatusRejected:
			result.Rejected = append(result.Rejected, request)

		case domain.RequestStatusConfirmed:
			// Approving twice is a caller protocol violation.
			return result, domain.ErrAlreadyConfirmed

		case domain.RequestStatusCanceled:
			// Already left the pending set, nothing to review.

		case domain.RequestStatusPending:
			if err = s.reviewPending(ctx, event, request, target, result); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

// reviewPending re-checks the limit against the current confirmed count.
// Each confirmation within a batch consumes a seat, so the count is taken
// per item, not once at batch start.
func (s *ParticipationService) reviewPending(ctx context.Context, event *domain.Event, request *domain.Participation, target domain.RequestStatus, result *domain.ReviewResult) error {
	if !event.Unlimited() {
		confirmed, err := s.requestRepo.CountConfirmed(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("count confirmed: %w", err)
		}
		if confirmed >= event.ParticipantLimit {
			// Exhausted limit overrides the requested status.
			request.Status = domain.RequestStatusRejected
			if err = s.requestRepo.UpdateStatus(ctx, request, domain.RequestStatusPending); err != nil {
				return fmt.Errorf("reject request: %w", err)
			}
			result.Rejected = append(result.Rejected, request)
			s.notifyOutcome(ctx, request)
			return domain.ErrLimitReached
		}
	}

	request.Status = target
	if err := s.requestRepo.UpdateStatus(ctx, request, domain.RequestStatusPending); err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	if target == domain.RequestStatusConfirmed {
		result.Confirmed = append(result.Confirmed, request)
	} else {
		result.Rejected = append(result.Rejected, request)
	}

	s.logger.Info("participation request reviewed",
		logger.String("request_id", request.ID),
		logger.String("event_id", event.ID),
		logger.String("status", string(target)),
	)

	s.notifyOutcome(ctx, request)
	return nil
}

func (s *ParticipationService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.Participation, error) {
	request, err := s.requestRepo.GetByIDAndRequester(ctx, requestID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	release, err := s.guard.Acquire(ctx, request.EventID)
	if err != nil {
		return nil, err
	}
	defer release()

	// Re-read under the guard: a review batch may have run in between.
	request, err = s.requestRepo.GetByIDAndRequester(ctx, requestID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	if !request.Status.CanTransition(domain.RequestStatusCanceled) {
		return nil, domain.ErrRequestFinalized
	}

	prior := request.Status
	request.Status = domain.RequestStatusCanceled
	if err = s.requestRepo.UpdateStatus(ctx, request, prior); err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	s.logger.Info("participation request canceled",
		logger.String("request_id", request.ID),
		logger.String("event_id", request.EventID),
		logger.String("requester_id", requesterID),
	)

	// No seat bookkeeping: the confirmed count is recomputed on the next
	// capacity check, so a canceled confirmation frees its seat implicitly.
	return request, nil
}

func (s *ParticipationService) ListMine(ctx context.Context, requesterID string) ([]*domain.Participation, error) {
	return s.requestRepo.ListByRequester(ctx, requesterID)
}

func (s *ParticipationService) ListForEvent(ctx context.Context, eventID, initiatorID string) ([]*domain.Participation, error) {
	if _, err := s.eventRepo.GetByInitiator(ctx, eventID, initiatorID); err != nil {
		return nil, fmt.Errorf("check event owner: %w", err)
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// DeclineStale rejects pending requests for events that already started.
// Invoked by the scheduler.
func (s *ParticipationService) DeclineStale(ctx context.Context) ([]*domain.Participation, error) {
	declined, err := s.requestRepo.DeclineStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("decline stale: %w", err)
	}

	if len(declined) > 0 {
		s.logger.Info("stale pending requests declined",
			logger.Int("count", len(declined)),
		)

		for _, p := range declined {
			s.notifyOutcome(ctx, p)
		}
	}

	return declined, nil
}

func (s *ParticipationService) notifyOutcome(ctx context.Context, request *domain.Participation) {
	user, err := s.userRepo.GetByID(ctx, request.RequesterID)
	if err != nil {
		s.logger.Error("failed to get requester for notification",
			logger.String("requester_id", request.RequesterID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, request.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", request.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch request.Status {
	case domain.RequestStatusConfirmed:
		go s.notifier.NotifyRequestConfirmed(context.WithoutCancel(ctx), user, event)
	case domain.RequestStatusRejected:
		go s.notifier.NotifyRequestRejected(context.WithoutCancel(ctx), user, event)
	}
}
