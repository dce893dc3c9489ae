package password

import (
	"padel-club/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errs.New("password hashing failed")
	// ErrMismatch is reported as an authentication failure, never as a
	// validation error, so the login response does not tell which part was wrong.
	ErrMismatch        = errs.Mark(errs.New("password does not match"), errs.ErrUnauthenticated)
	ErrInvalidPassword = errs.Mark(errs.New("password is required"), errs.ErrValidation)
)

const DefaultCost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	return HashWithCost(plain, DefaultCost)
}

// HashWithCost lets tests use bcrypt.MinCost.
func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "bcrypt"), ErrHashingFailed)
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return errs.Wrap(err, "compare password")
	}
	return nil
}
