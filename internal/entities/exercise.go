// Package entities contains core business entities.
package entities

import "time"

// Exercise is one logged activity of a user.
type Exercise struct {
	ID          string
	UserID      string
	Username    string
	Description string
	Duration    int
	// Date is a calendar date at 00:00 UTC, see DateOf.
	Date time.Time
}

// ExerciseInput carries raw, unvalidated fields of a new exercise.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// LogQuery carries raw, unvalidated log filters.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// LogFilter is a validated log query handed to the repository.
// Limit <= 0 means unbounded.
type LogFilter struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
}

// Log is a user's filtered exercise history.
type Log struct {
	User    User
	Count   int
	Entries []Exercise
}
