package auth

// RoleAllowed reports whether the claimed role is one of the required roles.
// A missing or unknown role never satisfies a requirement, so refresh tokens
// (which carry no role) always fail here.
func RoleAllowed(role string, required ...string) bool {
	if role == "" {
		return false
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// CanAccessOrder reports whether a subject may view an order: the owner
// always can, and admins can view anyone's.
func CanAccessOrder(subjectID, role, ownerID string) bool {
	return subjectID == ownerID || role == "admin"
}
