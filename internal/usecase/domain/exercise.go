// Package domain contains application usecases orchestrating the exercise log.
package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"exercise-tracker/internal/entities"
)

// AddExercise appends an entry to an existing user's log.
func (u *Usecase) AddExercise(ctx context.Context, userID string, in entities.ExerciseInput) (*entities.Exercise, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", entities.ErrInvalidArgument)
	}

	durationRaw := strings.TrimSpace(in.Duration)
	if durationRaw == "" {
		return nil, fmt.Errorf("%w: duration is required", entities.ErrInvalidArgument)
	}
	duration, err := strconv.Atoi(durationRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: duration must be an integer number of minutes", entities.ErrInvalidArgument)
	}

	date := u.today()
	if strings.TrimSpace(in.Date) != "" {
		if date, err = entities.ParseDate(in.Date); err != nil {
			return nil, err
		}
	}

	owner, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ex, err := u.repo.CreateExercise(ctx, entities.Exercise{
		UserID:      owner.ID,
		Username:    owner.Username,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return nil, err
	}
	ex.Username = owner.Username
	u.log.Infow("exercise add", "user_id", owner.ID, "exercise_id", ex.ID)
	return ex, nil
}

// Log returns the user's entries between From and To inclusive, earliest first,
// capped at Limit when it is a positive integer.
func (u *Usecase) Log(ctx context.Context, userID string, q entities.LogQuery) (*entities.Log, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}

	filter := entities.LogFilter{
		UserID: userID,
		From:   entities.Epoch,
		To:     u.today(),
		Limit:  parseLimit(q.Limit),
	}
	var err error
	if strings.TrimSpace(q.From) != "" {
		if filter.From, err = entities.ParseDate(q.From); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(q.To) != "" {
		if filter.To, err = entities.ParseDate(q.To); err != nil {
			return nil, err
		}
	}

	owner, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.Exercise, 0)
	if !filter.From.After(filter.To) {
		if entries, err = u.repo.ListExercises(ctx, filter); err != nil {
			return nil, err
		}
	}
	if entries == nil {
		entries = make([]entities.Exercise, 0)
	}

	return &entities.Log{User: *owner, Count: len(entries), Entries: entries}, nil
}

func (u *Usecase) today() time.Time {
	return entities.DateOf(u.clock.Now())
}

// parseLimit treats anything that is not a positive integer as unbounded.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
