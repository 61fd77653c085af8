// Package domain contains application usecases for development-only bulk wipes.
package domain

import (
	"context"

	"exercise-tracker/internal/entities"
)

// DeleteAllUsers wipes the user registry. Exercises are not cascaded.
func (u *Usecase) DeleteAllUsers(ctx context.Context) (entities.DeleteResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	n, err := u.repo.DeleteAllUsers(ctx)
	if err != nil {
		return entities.DeleteResult{}, err
	}
	u.log.Warnw("users wiped", "deleted", n)
	return entities.DeleteResult{Deleted: n}, nil
}

// DeleteAllExercises wipes every exercise entry.
func (u *Usecase) DeleteAllExercises(ctx context.Context) (entities.DeleteResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	n, err := u.repo.DeleteAllExercises(ctx)
	if err != nil {
		return entities.DeleteResult{}, err
	}
	u.log.Warnw("exercises wiped", "deleted", n)
	return entities.DeleteResult{Deleted: n}, nil
}
