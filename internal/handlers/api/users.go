package api

import (
	"github.com/gofiber/fiber/v3"

	"dsanotes/internal/db"
	"dsanotes/internal/models"
)

// UserHandler exposes the progress-derived user registry. There is no user
// table; whoever has a progress record is a user.
type UserHandler struct {
	db *db.DB
}

// NewUserHandler creates a new API user handler.
func NewUserHandler(database *db.DB) *UserHandler {
	return &UserHandler{db: database}
}

// List returns all known identities, most recently active first. Admin only.
func (h *UserHandler) List(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	users, err := h.db.ListUsers(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch users")
	}

	if users == nil {
		users = []models.UserSummary{}
	}
	return jsonSuccess(c, users)
}
