package user

import (
	"time"

	"padel-club/internal/pkg/errs"
)

var (
	ErrSelfDemotion   = errs.Mark(errs.New("administrators cannot change their own role"), errs.ErrValidation)
	ErrSelfDeactivate = errs.Mark(errs.New("administrators cannot deactivate their own account"), errs.ErrValidation)
	ErrDuplicateDNI   = errs.Mark(errs.New("dni already registered"), errs.ErrConflict)
)

type User struct {
	id           int64
	dni          DNI
	email        Email
	profile      Profile
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a player. Admins are promoted afterwards by another admin.
func NewUser(dni DNI, email Email, profile Profile, passwordHash string) *User {
	return &User{
		dni:          dni,
		email:        email,
		profile:      profile,
		passwordHash: passwordHash,
		role:         RolePlayer,
		isActive:     true,
	}
}

func ReconstructUser(id int64, dni DNI, email Email, profile Profile, passwordHash string, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		dni:          dni,
		email:        email,
		profile:      profile,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeRole is performed by actorID; admins may not demote themselves.
func (u *User) ChangeRole(actorID int64, role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	if actorID == u.id && role != u.role {
		return ErrSelfDemotion
	}
	u.role = role
	return nil
}

func (u *User) SetActive(actorID int64, active bool) error {
	if actorID == u.id && !active {
		return ErrSelfDeactivate
	}
	u.isActive = active
	return nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) DNI() DNI             { return u.dni }
func (u *User) Email() Email         { return u.email }
func (u *User) Profile() Profile     { return u.profile }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
