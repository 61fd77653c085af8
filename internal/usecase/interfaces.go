package usecase

import (
	"context"

	"exercise-tracker/internal/entities"
)

// UserUsecaseInterface abstracts user registry operations for delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, username string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// ExerciseUsecaseInterface abstracts exercise log operations.
type ExerciseUsecaseInterface interface {
	AddExercise(ctx context.Context, userID string, in entities.ExerciseInput) (*entities.Exercise, error)
	Log(ctx context.Context, userID string, q entities.LogQuery) (*entities.Log, error)
}

// AdminUsecaseInterface abstracts development-only bulk wipes.
type AdminUsecaseInterface interface {
	DeleteAllUsers(ctx context.Context) (entities.DeleteResult, error)
	DeleteAllExercises(ctx context.Context) (entities.DeleteResult, error)
}
