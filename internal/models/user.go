package models

// Role constants. Role is derived per request from the admin email
// allow-list; there is no persisted user record behind it.
const (
	RoleAdmin   = "admin"
	RoleVisitor = "visitor"
)

// User is the authenticated identity resolved from the OIDC session.
// A nil *User means the caller is anonymous.
type User struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}

// IsAdmin returns true if the user holds the admin role. Safe on nil.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Identity returns the email used to attribute submissions and progress,
// or AnonymousSubmitter when the caller is not signed in.
func (u *User) Identity() string {
	if u == nil || u.Email == "" {
		return AnonymousSubmitter
	}
	return u.Email
}
