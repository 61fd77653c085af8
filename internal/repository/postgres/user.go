package postgres

import (
	"context"
	"errors"

	"exercise-tracker/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery     = `INSERT INTO users(username) VALUES ($1) RETURNING id::text, username`
	selectUserQuery     = `SELECT id::text, username FROM users WHERE id = $1`
	selectUsersQuery    = `SELECT id::text, username FROM users ORDER BY seq`
	deleteAllUsersQuery = `DELETE FROM users`
)

// CreateUser inserts a user and returns it with the generated id.
func (p *Postgres) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	if err := p.db.QueryRow(ctx, insertUserQuery, username).Scan(&u.ID, &u.Username); err != nil {
		p.log.Errorw("failed to create user", "error", err, "username", username)
		return nil, storeErr("create user", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUser fetches a user by id. Ids that are not UUIDs cannot exist and map to not found.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	if !validID(userID) {
		return nil, entities.ErrUserNotFound
	}

	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, userID).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, storeErr("get user", err)
	}
	return &u, nil
}

// ListUsers returns all users in creation order.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectUsersQuery)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			p.log.Errorw("failed to scan users", "error", err)
			return nil, storeErr("scan users", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, storeErr("iterate users", err)
	}

	return users, nil
}

// DeleteAllUsers removes every user and reports how many were deleted.
func (p *Postgres) DeleteAllUsers(ctx context.Context) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteAllUsersQuery)
	if err != nil {
		p.log.Errorw("failed to delete users", "error", err)
		return 0, storeErr("delete users", err)
	}

	p.log.Warnw("all users deleted", "count", tag.RowsAffected())
	return tag.RowsAffected(), nil
}
