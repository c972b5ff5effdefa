package ports

import (
	"context"

	"github.com/chirpnet/social-api/internal/core/domain"
)

// ActivityRepository persists activity trail entries.
type ActivityRepository interface {
	Record(ctx context.Context, activity *domain.Activity) error
	ListByActor(ctx context.Context, actorUID string, offset, limit int) ([]*domain.Activity, error)
}

// ActivityService processes a single activity record dequeued by a worker.
type ActivityService interface {
	Process(ctx context.Context, activity domain.Activity) error
}

// ActivityRecorder accepts activity records for asynchronous persistence.
// Implementations must not block the request path.
type ActivityRecorder interface {
	Enqueue(activity domain.Activity)
}
