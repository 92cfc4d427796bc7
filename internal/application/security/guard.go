package security

// Allow is the authorization guard evaluated at the top of each handler,
// before any mutation. Access is granted if any rule matches, in order:
// admin authority, resource owner, declared collaborator.
func Allow(principal Principal, ownerID uint, collaboratorIDs []uint) bool {
	if principal.IsAdmin() {
		return true
	}
	if principal.ID == ownerID {
		return true
	}
	for _, id := range collaboratorIDs {
		if id == principal.ID {
			return true
		}
	}
	return false
}

// AllowSelf grants access to admins and to the resource owner only.
func AllowSelf(principal Principal, ownerID uint) bool {
	return Allow(principal, ownerID, nil)
}
