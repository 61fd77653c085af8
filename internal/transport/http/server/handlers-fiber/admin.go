package handlers_fiber

import (
	"net/http"

	"exercise-tracker/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostDeleteUsers wipes the user registry.
func (h *Handler) PostDeleteUsers(c *fiber.Ctx) error {
	res, err := h.uc.DeleteAllUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to delete users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTODelete("All users have been deleted!", res))
}

// PostDeleteExercises wipes every exercise.
func (h *Handler) PostDeleteExercises(c *fiber.Ctx) error {
	res, err := h.uc.DeleteAllExercises(c.Context())
	if err != nil {
		h.log.Errorw("failed to delete exercises", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTODelete("All exercises have been deleted!", res))
}
