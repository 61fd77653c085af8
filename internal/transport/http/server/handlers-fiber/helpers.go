package handlers_fiber

import (
	"errors"
	"net/http"

	"exercise-tracker/internal/entities"
	"exercise-tracker/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "unknown user id"
	case errors.Is(err, entities.ErrStorage):
		msg = "storage unavailable"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: msg}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
}
