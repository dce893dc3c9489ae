package request

import (
	"padel-club/internal/usecase/commands"
)

type CreateCourtRequest struct {
	Numero      int    `json:"numero" binding:"required,gt=0"`
	Tipo        string `json:"tipo" binding:"required"`
	Descripcion string `json:"descripcion"`
}

func (r CreateCourtRequest) ToInput() commands.CreateCourtInput {
	return commands.CreateCourtInput{Number: r.Numero, Category: r.Tipo, Description: r.Descripcion}
}

// UpdateCourtRequest is a partial update; omitted fields are left unchanged.
type UpdateCourtRequest struct {
	Numero      *int    `json:"numero,omitempty" binding:"omitempty,gt=0"`
	Tipo        *string `json:"tipo,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activa      *bool   `json:"activa,omitempty"`
}

func (r UpdateCourtRequest) ToInput() commands.UpdateCourtInput {
	return commands.UpdateCourtInput{
		Number:      r.Numero,
		Category:    r.Tipo,
		Description: r.Descripcion,
		Active:      r.Activa,
	}
}
