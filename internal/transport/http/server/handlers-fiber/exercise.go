package handlers_fiber

import (
	"net/http"

	"exercise-tracker/internal/entities"
	"exercise-tracker/internal/mapper"
	"exercise-tracker/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUserExercises appends an exercise to the user in the path.
func (h *Handler) PostUserExercises(c *fiber.Ctx) error {
	var body dto.AddExerciseRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	userID := c.Params("id")
	ex, err := h.uc.AddExercise(c.Context(), userID, mapper.FromDTOExercise(body))
	if err != nil {
		h.log.Errorw("failed to add exercise", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOExercise(*ex, h.dateLayout))
}

// GetUserLogs returns the user's log filtered by ?from, ?to and ?limit.
func (h *Handler) GetUserLogs(c *fiber.Ctx) error {
	userID := c.Params("id")
	log, err := h.uc.Log(c.Context(), userID, entities.LogQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		h.log.Errorw("failed to get log", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOLog(*log, h.dateLayout))
}
