package auth

// Role is the authorization role carried in the session token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the identity the core reads from the session collaborator.
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Session is the current authentication state. It is passed explicitly into
// anything that needs it; there is no global session singleton.
type Session struct {
	Authenticated bool
	User          *User
}

// Anonymous is the unauthenticated session.
var Anonymous = Session{}

// UserID returns the session subject, or "" when unauthenticated.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.User != nil && s.User.Role == RoleAdmin
}
