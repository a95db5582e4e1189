package auth

import (
	"fmt"

	"github.com/Casm101/leovegas-technical-test/internal/domain"
)

// Authorization decisions are pure functions of the caller's claims and the
// target record's owner id. Handlers resolve the target first, so a denial
// here always means 403, never a masked 404.

// CanReadUser allows admins and the record's owner.
func CanReadUser(caller Claims, ownerID string) error {
	if caller.Role == domain.RoleAdmin || caller.UserID == ownerID {
		return nil
	}
	return fmt.Errorf("%w, you don't have permissions to access this user", domain.ErrForbidden)
}

// CanListUsers allows admins only.
func CanListUsers(caller Claims) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w, you don't have permissions to read all users", domain.ErrForbidden)
}

// CanUpdateUser allows admins and the record's owner.
func CanUpdateUser(caller Claims, ownerID string) error {
	if caller.Role == domain.RoleAdmin || caller.UserID == ownerID {
		return nil
	}
	return fmt.Errorf("%w, you don't have permissions to update this user", domain.ErrForbidden)
}

// CanDeleteUser allows admins only, and never against their own record.
func CanDeleteUser(caller Claims, ownerID string) error {
	if caller.Role == domain.RoleAdmin && caller.UserID != ownerID {
		return nil
	}
	return fmt.Errorf("%w, you don't have permissions to delete this user", domain.ErrForbidden)
}
