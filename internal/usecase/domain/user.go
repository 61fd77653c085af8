// Package domain contains application usecases orchestrating the user registry.
package domain

import (
	"context"
	"fmt"
	"strings"

	"exercise-tracker/internal/entities"
)

// CreateUser registers a user. Duplicate names are allowed.
func (u *Usecase) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" {
		u.log.Errorw("failed to create user: missing username")
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.CreateUser(ctx, username)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user create", "user_id", user.ID)
	return user, nil
}

// ListUsers returns every user; never nil.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]entities.User, 0)
	}
	return users, nil
}
