package handlers_fiber

import (
	"net/http"

	"exercise-tracker/internal/mapper"
	"exercise-tracker/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUsers registers a user.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	usr, err := h.uc.CreateUser(c.Context(), body.Username)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*usr))
}

// GetUsers lists all users; an empty registry yields [].
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOUserList(users))
}
