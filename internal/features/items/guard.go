package items

import "github.com/xyz-asif/temuin/internal/features/auth"

// CanMutate reports whether the session may edit or delete the item: the
// session must be authenticated and either own the item or carry the admin
// role. Call it fresh at every decision point; identity and role can change
// between checks, so the result must never be cached.
func CanMutate(sess auth.Session, item *Item) bool {
	if item == nil || !sess.Authenticated || sess.User == nil {
		return false
	}
	if sess.User.Role == auth.RoleAdmin {
		return true
	}
	return sess.User.ID != "" && sess.User.ID == item.OwnerID
}
