package types

// User is the display-level view of an account owned by the external
// login subsystem. The core only ever receives user IDs and resolves
// names for display.
type User struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// AnonymousName is substituted when a user ID cannot be resolved.
// Directory lookup failures must never fail the surrounding operation.
const AnonymousName = "unknown user"

// Directory resolves user IDs to display users. Implementations are
// owned by the excluded login/session subsystem; the core treats a
// failed lookup as "unknown user", never as an operation failure.
type Directory interface {
	// GetUser returns the user with the given ID.
	// Returns ErrNotFound if the ID is unknown.
	GetUser(id int64) (User, error)
}
