package models

// Session describes the authenticated session as reported by the remote API.
// The role comes from the server; the client never assumes admin privileges
// on its own.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role"`
}

// RoleAdmin is the server-side role granting access to the admin views.
const RoleAdmin = "ADMIN"

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}
