package entity

// Actor is the identity resolved by the session gate for the current caller.
type Actor struct {
	Email string
	Role  Role
}

// Is reports whether the actor holds one of the given roles.
func (a *Actor) Is(roles ...Role) bool {
	if a == nil {
		return false
	}

	return Roles(roles).Contains(a.Role)
}
