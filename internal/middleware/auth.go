package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"dsanotes/internal/config"
	"dsanotes/internal/models"
)

// Session keys written by the auth handler on login.
const (
	SessionKeySub     = "user_sub"
	SessionKeyEmail   = "user_email"
	SessionKeyName    = "user_name"
	SessionKeyPicture = "user_picture"
)

// AuthMiddleware resolves the caller's identity from the session and derives
// their role from the admin allow-list. There is no user table; the session
// claims are the identity.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// userFromSession rebuilds the identity stored at login, or nil for
// anonymous callers. Role is recomputed on every request so allow-list
// changes take effect without re-login.
func (m *AuthMiddleware) userFromSession(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	sub, _ := sess.Get(SessionKeySub).(string)
	if sub == "" {
		return nil
	}

	email, _ := sess.Get(SessionKeyEmail).(string)
	name, _ := sess.Get(SessionKeyName).(string)
	picture, _ := sess.Get(SessionKeyPicture).(string)

	role := models.RoleVisitor
	if m.cfg.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	return &models.User{
		Sub:     sub,
		Email:   email,
		Name:    name,
		Picture: picture,
		Role:    role,
	}
}

// OptionalAuth loads the user if authenticated but never rejects the request.
// Anonymous callers proceed with no user in locals.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := m.userFromSession(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// RequireAuth ensures the caller is signed in with some identity.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user := m.userFromSession(c)
	if user == nil || user.Email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}
	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin ensures the caller is signed in and on the admin allow-list.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	user := m.userFromSession(c)
	if user == nil || user.Email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}
	if !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error":  "admin access required",
		})
	}
	c.Locals("user", user)
	return c.Next()
}
