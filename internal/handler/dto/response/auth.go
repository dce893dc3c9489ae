package response

import (
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
)

type LoginResponse struct {
	Token   string            `json:"token"`
	Usuario *queries.UserView `json:"usuario"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Usuario: r.User}
}
