package user

import (
	"regexp"
	"strings"

	"padel-club/internal/pkg/errs"
)

var (
	ErrInvalidDNI      = errs.Mark(errs.New("dni must have 7 or 8 digits"), errs.ErrValidation)
	ErrInvalidEmail    = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidRole     = errs.Mark(errs.New("role must be jugador or admin"), errs.ErrValidation)
	ErrPasswordTooWeak = errs.Mark(errs.New("password must be at least 6 characters long"), errs.ErrValidation)
	ErrInvalidName     = errs.Mark(errs.New("first and last name are required"), errs.ErrValidation)
)

var (
	dniRegex   = regexp.MustCompile(`^\d{7,8}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// DNI is the national identity number, also used as the login name.
// Dots are accepted on input ("30.123.456") and stripped.
type DNI struct {
	value string
}

func NewDNI(s string) (DNI, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if !dniRegex.MatchString(s) {
		return DNI{}, ErrInvalidDNI
	}
	return DNI{value: s}, nil
}

// ReconstructDNI trusts a value that was validated before it was stored.
func ReconstructDNI(s string) DNI {
	return DNI{value: s}
}

func (d DNI) Value() string {
	return d.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 6 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Profile struct {
	FirstName string
	LastName  string
	Phone     string
}

func NewProfile(firstName, lastName, phone string) (Profile, error) {
	p := Profile{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
	}
	if p.FirstName == "" || p.LastName == "" {
		return Profile{}, ErrInvalidName
	}
	return p, nil
}
