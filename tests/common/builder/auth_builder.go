//go:build unit || e2e

package builder

import (
	reqdto "padel-club/internal/handler/dto/request"
)

type AuthBuilder struct {
	DNI      string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		DNI:      "30123456",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithDNI(dni string) *AuthBuilder {
	a.DNI = dni
	return a
}

func (a *AuthBuilder) WithPassword(pw string) *AuthBuilder {
	a.Password = pw
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		DNI:      a.DNI,
		Password: a.Password,
	}
}

type RegisterBuilder struct {
	req reqdto.RegisterRequest
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{req: reqdto.RegisterRequest{
		DNI:      "40111222",
		Email:    "lucia@example.com",
		Nombre:   "Lucía",
		Apellido: "Sosa",
		Telefono: "1144443333",
		Clave:    "password123",
	}}
}

func (b *RegisterBuilder) With(mutate func(*reqdto.RegisterRequest)) *RegisterBuilder {
	mutate(&b.req)
	return b
}

func (b *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return b.req
}
