package models

// Role represents a user's privilege level
type Role string

const (
	// RoleUser is the default role
	RoleUser Role = "user"

	// RoleModerator can top up the pot without being debited
	RoleModerator Role = "moderator"

	// RoleAdmin can top up the pot and force-start a rain
	RoleAdmin Role = "admin"
)

// User is a directory entry for a known user
type User struct {
	// ID is the unique identifier for the user
	ID string

	// Username is the display name of the user
	Username string

	// Avatar is the user's avatar URL
	Avatar string

	// Level is the user's current level
	Level int

	// Role is the user's privilege level
	Role Role
}

// CanManageRain reports whether the user may use privileged rain actions
func (u *User) CanManageRain() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}
