// Package access holds the pure authorization decisions: given a resolved
// identity and a required capability, allow or deny. No I/O happens here;
// session resolution runs earlier and hands its result in.
package access

import "github.com/shopsmith/ecommerce-api/internal/core/domain"

// Identity is the per-request outcome of session resolution. The zero value
// means no authenticated user (absent identity).
type Identity struct {
	User *domain.User
}

// Absent is the identity attached when resolution found no valid session.
var Absent = Identity{}

// Present reports whether the identity carries an authenticated user.
func (id Identity) Present() bool {
	return id.User != nil
}

// RequireRole allows only a present identity holding exactly the given role.
// An absent identity denies with ErrUnauthenticated; a present identity with
// a different role denies with ErrForbidden.
func RequireRole(id Identity, role string) error {
	if !id.Present() {
		return domain.ErrUnauthenticated
	}
	if id.User.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin allows a present identity that either created the
// resource (createdBy matches the user id) or holds the admin role. Admin
// access is independent of ownership.
func RequireOwnerOrAdmin(id Identity, createdBy string) error {
	if !id.Present() {
		return domain.ErrUnauthenticated
	}
	if id.User.ID == createdBy || id.User.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}
