// Package dto declares the JSON shapes of the HTTP API.
package dto

import (
	"bytes"
	"encoding/json"
)

// Loose holds a scalar field that clients send either as a JSON string or a JSON
// number, or as a form value. Validation happens in the usecase layer.
type Loose string

// UnmarshalJSON accepts strings, numbers and null.
func (l *Loose) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Loose(s)
		return nil
	}
	*l = Loose(data)
	return nil
}

// UnmarshalText is used for form-encoded bodies.
func (l *Loose) UnmarshalText(text []byte) error {
	*l = Loose(text)
	return nil
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// User is a registered user.
type User struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// AddExerciseRequest is the body of POST /api/users/:id/exercises.
type AddExerciseRequest struct {
	Description string `json:"description" form:"description"`
	Duration    Loose  `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

// Exercise is a created entry together with its owner.
type Exercise struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is an exercise projected without owner fields.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// Log is a user's filtered exercise history.
type Log struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// DeleteResult mirrors the document store's bulk delete report.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteResponse is returned by the admin wipe routes.
type DeleteResponse struct {
	Message string       `json:"message"`
	Result  DeleteResult `json:"result"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
