package access

import (
	"padel-club/internal/domain/user"
	"padel-club/internal/pkg/errs"
)

// Actor is the caller as resolved from the current user record, not from
// token claims, so role and active flag changes apply immediately.
type Actor struct {
	UserID int64
	Role   user.Role
	Active bool
}

func ActorOf(u *user.User) Actor {
	return Actor{UserID: u.ID(), Role: u.Role(), Active: u.IsActive()}
}

func (a Actor) IsAdmin() bool { return a.Role.IsAdmin() }

// Admit rejects inactive accounts before any other check runs.
func Admit(a Actor) error {
	if !a.Active {
		return errs.Wrapf(errs.ErrInactiveAccount, "user %d", a.UserID)
	}
	return nil
}

func RequireAdmin(a Actor) error {
	if err := Admit(a); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return errs.Wrap(errs.ErrForbidden, "administrator role required")
	}
	return nil
}

// AuthorizeOwned decides access to a resource owned by ownerID. A player
// asking for someone else's record is refused whether or not it exists, so
// ids cannot be probed. Admins see NotFound for missing records.
func AuthorizeOwned(a Actor, ownerID int64, found bool) error {
	if err := Admit(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		if !found {
			return errs.ErrNotFound
		}
		return nil
	}
	if !found || ownerID != a.UserID {
		return errs.Wrap(errs.ErrForbidden, "resource belongs to another user")
	}
	return nil
}

// ScopeOwner returns the owner filter a listing must apply: admins may pick
// any user (0 means all), players are pinned to themselves.
func ScopeOwner(a Actor, requested int64) (int64, error) {
	if err := Admit(a); err != nil {
		return 0, err
	}
	if a.IsAdmin() {
		return requested, nil
	}
	if requested != 0 && requested != a.UserID {
		return 0, errs.Wrap(errs.ErrForbidden, "cannot list another user's records")
	}
	return a.UserID, nil
}
