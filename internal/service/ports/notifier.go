package ports

import (
	"context"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
)

type RequestNotifier interface {
	NotifyRequestQueued(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event)
}
