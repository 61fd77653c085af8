// Package memory implements the repository in process memory. It backs local
// development and tests; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"exercise-tracker/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Memory keeps users and exercises in insertion order.
type Memory struct {
	log *zap.SugaredLogger

	mu        sync.RWMutex
	users     []entities.User
	userIdx   map[string]int
	exercises []entities.Exercise
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:     log.Named("repo.memory"),
		userIdx: make(map[string]int),
	}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// CreateUser stores a new user under a random UUID.
func (m *Memory) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("create user", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u := entities.User{ID: uuid.NewString(), Username: username}
	m.userIdx[u.ID] = len(m.users)
	m.users = append(m.users, u)
	return &u, nil
}

// GetUser returns the user or entities.ErrUserNotFound.
func (m *Memory) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get user", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.userIdx[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	u := m.users[i]
	return &u, nil
}

// ListUsers returns a copy of all users.
func (m *Memory) ListUsers(ctx context.Context) ([]entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list users", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// DeleteAllUsers drops every user. Exercises are left in place.
func (m *Memory) DeleteAllUsers(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("delete users", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.users))
	m.users = nil
	m.userIdx = make(map[string]int)
	return n, nil
}

// CreateExercise appends an entry. The owner is not checked here.
func (m *Memory) CreateExercise(ctx context.Context, ex entities.Exercise) (*entities.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("create exercise", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ex.ID = uuid.NewString()
	ex.Date = entities.DateOf(ex.Date)
	m.exercises = append(m.exercises, ex)
	return &ex, nil
}

// ListExercises filters by owner and inclusive range; the sort is stable so equal
// dates keep insertion order.
func (m *Memory) ListExercises(ctx context.Context, filter entities.LogFilter) ([]entities.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list exercises", err)
	}

	m.mu.RLock()
	out := make([]entities.Exercise, 0)
	for _, ex := range m.exercises {
		if ex.UserID != filter.UserID {
			continue
		}
		if ex.Date.Before(filter.From) || ex.Date.After(filter.To) {
			continue
		}
		out = append(out, ex)
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// DeleteAllExercises drops every entry.
func (m *Memory) DeleteAllExercises(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeErr("delete exercises", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.exercises))
	m.exercises = nil
	return n, nil
}
