package domain

import (
	"context"
	"time"

	"exercise-tracker/internal/repository"

	"go.uber.org/zap"
)

// Clock supplies the current time; "today" defaults derive from it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Option customizes a Usecase.
type Option func(*Usecase)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(u *Usecase) {
		if c != nil {
			u.clock = c
		}
	}
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	clock   Clock
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
