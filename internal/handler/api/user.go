package api

import (
	"net/http"

	reqdto "padel-club/internal/handler/dto/request"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Failure 403 {object} httperr.Response
// @Router /usuarios [get]
func (h *UserHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get user
// @Description Players may only read their own record
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /usuarios/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), a, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.ChangeRoleRequest true "Role"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /usuarios/{id}/rol [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Rol inválido")
		return
	}
	view, err := h.cmds.ChangeRole(c.Request.Context(), a, id, req.Rol)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Activate or deactivate user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /usuarios/{id}/estado [patch]
func (h *UserHandler) SetActive(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Estado inválido")
		return
	}
	view, err := h.cmds.SetActive(c.Request.Context(), a, id, *req.Activo)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
