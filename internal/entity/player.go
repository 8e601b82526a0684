package entity

// Role is the side a player took when the connection was set up.
type Role string

const (
	// RoleServer listens for the opponent and moves second.
	RoleServer Role = "server"
	// RoleClient connects to the opponent and moves first.
	RoleClient Role = "client"
)

// Initiative reports whether the role makes the first move.
func (that Role) Initiative() bool {
	return that == RoleClient
}
