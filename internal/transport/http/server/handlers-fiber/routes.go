package handlers_fiber

import (
	"crypto/subtle"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// AdminHeader carries the admin token when one is configured.
const AdminHeader = "X-Admin-Token"

// RouteOptions controls which route groups are mounted.
type RouteOptions struct {
	// AdminEnabled mounts the bulk wipe routes.
	AdminEnabled bool
	// AdminToken, when set, must be sent in AdminHeader.
	AdminToken string
}

// RegisterHandlers mounts the API under /api.
func RegisterHandlers(router fiber.Router, h *Handler, opts RouteOptions) {
	api := router.Group("/api")

	if opts.AdminEnabled {
		guard := adminGuard(opts.AdminToken)
		api.Post("/users/delete", guard, h.PostDeleteUsers)
		api.Post("/exercises/delete", guard, h.PostDeleteExercises)
	}

	api.Post("/users", h.PostUsers)
	api.Get("/users", h.GetUsers)
	api.Post("/users/:id/exercises", h.PostUserExercises)
	api.Get("/users/:id/logs", h.GetUserLogs)
}

func adminGuard(token string) fiber.Handler {
	if token == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + AdminHeader,
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(http.StatusUnauthorized).JSON(errorResponse("admin token required"))
		},
	})
}
