package models

// Role distinguishes the three kinds of authenticated actors.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Actor is the authenticated identity attempting an operation. The role
// is resolved once per session from the actor's profile record and
// trusted for the session's lifetime.
type Actor struct {
	ID   string `json:"actorId"`
	Role Role   `json:"role"`
}
