// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"exercise-tracker/internal/entities"
	"exercise-tracker/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{Username: u.Username, ID: u.ID}
}

// ToDTOUserList maps users and never returns nil.
func ToDTOUserList(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToDTOUser(u))
	}
	return res
}

// FromDTOExercise builds raw usecase input from a request body.
func FromDTOExercise(src dto.AddExerciseRequest) entities.ExerciseInput {
	return entities.ExerciseInput{
		Description: src.Description,
		Duration:    string(src.Duration),
		Date:        src.Date,
	}
}

// ToDTOExercise maps a created exercise; the id is the owner's, as the API has always returned.
func ToDTOExercise(ex entities.Exercise, layout string) dto.Exercise {
	return dto.Exercise{
		ID:          ex.UserID,
		Username:    ex.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        FormatDate(ex.Date, layout),
	}
}

// ToDTOLog maps a log, carrying owner fields once at the top level.
func ToDTOLog(l entities.Log, layout string) dto.Log {
	entries := make([]dto.LogEntry, 0, len(l.Entries))
	for _, ex := range l.Entries {
		entries = append(entries, dto.LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        FormatDate(ex.Date, layout),
		})
	}

	return dto.Log{
		ID:       l.User.ID,
		Username: l.User.Username,
		Count:    len(entries),
		Log:      entries,
	}
}

// ToDTODelete maps a bulk wipe outcome.
func ToDTODelete(msg string, res entities.DeleteResult) dto.DeleteResponse {
	return dto.DeleteResponse{Message: msg, Result: dto.DeleteResult{DeletedCount: res.Deleted}}
}

// FormatDate renders a canonical date for responses. Empty layout means ISO.
func FormatDate(d time.Time, layout string) string {
	if layout == "" {
		layout = entities.DateLayout
	}
	return d.UTC().Format(layout)
}
