package postgres

import (
	"context"

	"exercise-tracker/internal/entities"
)

const (
	insertExerciseQuery = `
INSERT INTO exercises(user_id, description, duration, date)
VALUES ($1, $2, $3, $4)
RETURNING id::text, user_id::text, description, duration, date`
	selectExercisesQuery = `
SELECT id::text, user_id::text, description, duration, date
FROM exercises
WHERE user_id = $1 AND date >= $2 AND date <= $3
ORDER BY date, seq
LIMIT $4`
	deleteAllExercisesQuery = `DELETE FROM exercises`
)

// CreateExercise inserts an entry. The owner is validated by the caller.
func (p *Postgres) CreateExercise(ctx context.Context, ex entities.Exercise) (*entities.Exercise, error) {
	if !validID(ex.UserID) {
		return nil, entities.ErrUserNotFound
	}

	out := entities.Exercise{Username: ex.Username}
	err := p.db.QueryRow(ctx, insertExerciseQuery, ex.UserID, ex.Description, ex.Duration, entities.DateOf(ex.Date)).
		Scan(&out.ID, &out.UserID, &out.Description, &out.Duration, &out.Date)
	if err != nil {
		if isInvalidText(err) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to create exercise", "error", err, "user_id", ex.UserID)
		return nil, storeErr("create exercise", err)
	}

	out.Date = entities.DateOf(out.Date)
	p.log.Infow("exercise created", "exercise_id", out.ID, "user_id", out.UserID)
	return &out, nil
}

// ListExercises returns the user's entries in the inclusive range. LIMIT NULL is unbounded.
func (p *Postgres) ListExercises(ctx context.Context, filter entities.LogFilter) ([]entities.Exercise, error) {
	if !validID(filter.UserID) {
		return make([]entities.Exercise, 0), nil
	}

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	rows, err := p.db.Query(ctx, selectExercisesQuery,
		filter.UserID, entities.DateOf(filter.From), entities.DateOf(filter.To), limit)
	if err != nil {
		p.log.Errorw("failed to list exercises", "error", err, "user_id", filter.UserID)
		return nil, storeErr("list exercises", err)
	}
	defer rows.Close()

	exercises := make([]entities.Exercise, 0)
	for rows.Next() {
		var ex entities.Exercise
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			p.log.Errorw("failed to scan exercises", "error", err, "user_id", filter.UserID)
			return nil, storeErr("scan exercises", err)
		}
		ex.Date = entities.DateOf(ex.Date)
		exercises = append(exercises, ex)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate exercises", "error", err, "user_id", filter.UserID)
		return nil, storeErr("iterate exercises", err)
	}

	return exercises, nil
}

// DeleteAllExercises removes every entry and reports how many were deleted.
func (p *Postgres) DeleteAllExercises(ctx context.Context) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteAllExercisesQuery)
	if err != nil {
		p.log.Errorw("failed to delete exercises", "error", err)
		return 0, storeErr("delete exercises", err)
	}

	p.log.Warnw("all exercises deleted", "count", tag.RowsAffected())
	return tag.RowsAffected(), nil
}
