package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

const defaultBuffer = 256

// ActivityRecorder persists auth activity records asynchronously so that
// audit writes never sit on the request path. Records are dropped (with a
// warning) when the buffer is full: the trail is observability, not logic.
type ActivityRecorder struct {
	ch   chan domain.AuthActivity
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityRecorder creates a recorder with the given buffer size.
// If buffer <= 0, defaultBuffer is used.
func NewActivityRecorder(repo ports.ActivityRepository, log zerolog.Logger, buffer int) *ActivityRecorder {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &ActivityRecorder{
		ch:   make(chan domain.AuthActivity, buffer),
		repo: repo,
		log:  log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is cancelled.
func (r *ActivityRecorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// Record enqueues an activity without blocking the caller.
func (r *ActivityRecorder) Record(activity domain.AuthActivity) {
	select {
	case r.ch <- activity:
	default:
		r.log.Warn().Str("action", activity.Action).Msg("activity buffer full, record dropped")
	}
}

func (r *ActivityRecorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity := <-r.ch:
			if err := r.repo.Insert(ctx, &activity); err != nil {
				r.log.Error().Err(err).
					Str("action", activity.Action).
					Msg("failed to persist auth activity")
			}
		}
	}
}
