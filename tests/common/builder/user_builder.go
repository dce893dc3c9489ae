//go:build unit || e2e

package builder

import (
	"time"

	"padel-club/internal/domain/user"
)

type UserBuilder struct {
	ID           int64
	DNI          string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		DNI:          "30123456",
		Email:        "jugador@example.com",
		FirstName:    "Juan",
		LastName:     "Pérez",
		Phone:        "1155554444",
		PasswordHash: "hashed_password",
		Role:         "jugador",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain builds a freshly registered user via the domain constructors.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	dni, err := user.NewDNI(u.DNI)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	profile, err := user.NewProfile(u.FirstName, u.LastName, u.Phone)
	if err != nil {
		return nil, err
	}
	return user.NewUser(dni, email, profile, u.PasswordHash), nil
}

// BuildStored builds a user as loaded from storage, keeping ID, role and flag.
func (u *UserBuilder) BuildStored() (*user.User, error) {
	dni, err := user.NewDNI(u.DNI)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	profile, err := user.NewProfile(u.FirstName, u.LastName, u.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return user.ReconstructUser(u.ID, dni, email, profile, u.PasswordHash, role, u.IsActive, now, now), nil
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithDNI(dni string) *UserBuilder {
	u.DNI = dni
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
