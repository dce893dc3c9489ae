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

type CourtHandler struct {
	cmds         commands.CourtCommands
	q            queries.CourtQueries
	availability queries.AvailabilityQueries
}

func NewCourtHandler(cmds commands.CourtCommands, q queries.CourtQueries, availability queries.AvailabilityQueries) *CourtHandler {
	return &CourtHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List courts
// @Description Active courts; admins may pass todas=true to include inactive ones
// @Tags courts
// @Security BearerAuth
// @Produce json
// @Param todas query bool false "Include inactive courts (admin only)"
// @Success 200 {array} resdto.CourtResponse
// @Failure 401 {object} httperr.Response
// @Router /canchas [get]
func (h *CourtHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), a, c.Query("todas") == "true")
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Get court
// @Tags courts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
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
	h.respond(c, http.StatusOK, view)
}

// @Summary Court availability
// @Description Slot template for the date with the occupied slots marked
// @Tags courts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Court ID"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id}/disponibilidad [get]
func (h *CourtHandler) Availability(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := queryDate(c, "fecha")
	if !ok {
		return
	}
	view, err := h.availability.ForCourt(c.Request.Context(), a, id, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create court
// @Tags courts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canchas [post]
func (h *CourtHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Datos de cancha inválidos")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary Update court
// @Tags courts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param request body reqdto.UpdateCourtRequest true "Fields to change"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canchas/{id} [patch]
func (h *CourtHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Datos de cancha inválidos")
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), a, id, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Deactivate court
// @Description Existing bookings are kept; new ones are refused
// @Tags courts
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id} [delete]
func (h *CourtHandler) Deactivate(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), a, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CourtHandler) respond(c *gin.Context, status int, view *queries.CourtView) {
	resp, err := resdto.FromCourtView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *CourtHandler) respondList(c *gin.Context, views []*queries.CourtView) {
	resp, err := resdto.FromCourtList(views)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
