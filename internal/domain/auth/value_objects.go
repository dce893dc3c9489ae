package auth

import (
	"padel-club/internal/domain/user"
	"padel-club/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid dni or password")
	ErrEmptyPassword      = errs.Mark(errs.New("password is required"), errs.ErrValidation)
)

// Credentials is a login attempt. Password strength is only enforced at
// registration, so any non-empty password is accepted here.
type Credentials struct {
	dni      user.DNI
	password string
}

func NewCredentials(dniStr, password string) (Credentials, error) {
	dni, err := user.NewDNI(dniStr)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{dni: dni, password: password}, nil
}

func (c Credentials) DNI() user.DNI {
	return c.dni
}

func (c Credentials) Password() string {
	return c.password
}
