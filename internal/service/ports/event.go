package ports

import (
	"context"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetByInitiator(ctx context.Context, eventID, initiatorID string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByInitiator(ctx context.Context, initiatorID string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
}
