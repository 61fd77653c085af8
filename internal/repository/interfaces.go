// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"exercise-tracker/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, username string) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// ExerciseInterface exposes exercise log operations.
type ExerciseInterface interface {
	CreateExercise(ctx context.Context, ex entities.Exercise) (*entities.Exercise, error)
	// ListExercises returns the user's entries within the inclusive date range,
	// ordered by date then insertion, truncated to filter.Limit when positive.
	ListExercises(ctx context.Context, filter entities.LogFilter) ([]entities.Exercise, error)
	DeleteAllExercises(ctx context.Context) (int64, error)
}
