package api

import (
	"net/http"

	reqdto "padel-club/internal/handler/dto/request"
	resdto "padel-club/internal/handler/dto/response"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Login
// @Description Login with DNI and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "DNI y contraseña son obligatorios")
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Register
// @Description Create a player account and log it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Datos de registro inválidos")
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLoginResult(result))
}

// @Summary Profile
// @Description Current user as stored, not as encoded in the token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
