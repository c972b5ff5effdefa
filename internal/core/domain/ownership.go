package domain

// Ownable is any resource with a single owner, fixed at creation.
type Ownable interface {
	OwnerID() string
}

// IsOwner reports whether principal may mutate res. Ownership is a strict
// identity comparison on the public uid; a resource with no recorded owner
// belongs to nobody. Read access is never gated by this predicate.
func IsOwner(principal *User, res Ownable) bool {
	if principal == nil || res == nil {
		return false
	}
	owner := res.OwnerID()
	return owner != "" && owner == principal.UID
}
