package ports

import (
	"context"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
)

type ParticipationRepo interface {
	Create(ctx context.Context, p *domain.Participation) error
	// FindBlocking returns the request that blocks a new one for the pair
	// (any non-canceled status), or domain.ErrRequestNotFound when none
	// exists.
	FindBlocking(ctx context.Context, eventID, requesterID string) (*domain.Participation, error)
	GetByIDAndRequester(ctx context.Context, requestID, requesterID string) (*domain.Participation, error)
	ListByIDs(ctx context.Context, eventID string, requestIDs []string) ([]*domain.Participation, error)
	// CountConfirmed recomputes the confirmed count from the stored rows.
	// It must never serve a cached value: capacity is derived, not stored.
	CountConfirmed(ctx context.Context, eventID string) (int, error)
	// UpdateStatus persists p.Status for the row still holding from. When
	// a concurrent writer moved the row first nothing is written and
	// domain.ErrRequestFinalized is returned.
	UpdateStatus(ctx context.Context, p *domain.Participation, from domain.RequestStatus) error
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Participation, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Participation, error)
	// DeclineStale rejects pending requests whose event already started and
	// returns the rejected rows.
	DeclineStale(ctx context.Context) ([]*domain.Participation, error)
}
