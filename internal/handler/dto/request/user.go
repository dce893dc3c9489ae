package request

type ChangeRoleRequest struct {
	Rol string `json:"rol" binding:"required"`
}

type SetActiveRequest struct {
	Activo *bool `json:"activo" binding:"required"`
}
