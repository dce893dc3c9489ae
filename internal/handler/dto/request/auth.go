package request

import (
	"strings"

	"padel-club/internal/usecase/commands"
)

type LoginRequest struct {
	DNI      string `json:"dni" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{DNI: strings.TrimSpace(r.DNI), Password: r.Password}
}

type RegisterRequest struct {
	DNI      string `json:"dni" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Telefono string `json:"telefono"`
	Clave    string `json:"clave" binding:"required,min=6"`
}

func (r RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		DNI:       strings.TrimSpace(r.DNI),
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.Nombre),
		LastName:  strings.TrimSpace(r.Apellido),
		Phone:     strings.TrimSpace(r.Telefono),
		Password:  r.Clave,
	}
}
