package api

import (
	"bytes"
	"net/http"
	"strconv"

	reqdto "padel-club/internal/handler/dto/request"
	resdto "padel-club/internal/handler/dto/response"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Books one slot for the caller. horaFin is optional and must match the slot length.
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservas [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Datos de reserva inválidos")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), a, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservas/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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

// @Summary Reservations of a court on a date
// @Description Players see other players' bookings without DNI or name
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Court ID"
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Router /reservas/cancha/{id} [get]
func (h *ReservationHandler) ByCourtAndDate(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	courtID, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := queryDate(c, "fecha")
	if !ok {
		return
	}
	views, err := h.q.ListByCourtAndDate(c.Request.Context(), a, courtID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary My reservations
// @Description Newest first. Without limit or after every booking is returned; otherwise keyset pagination applies and the next cursor is returned in X-Next-Cursor
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (max 200; default 50 when after is set)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Router /reservas/mis-reservas [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.BadRequest(c, err, "Parámetros de paginación inválidos")
		return
	}
	views, next, err := h.q.ListMine(c.Request.Context(), a, page.Cursor(), page.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if next != nil {
		c.Header(resdto.NextCursorHeader, next.After)
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List reservations
// @Description Admin listing filtered by period, court, user and status
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date (YYYY-MM-DD)"
// @Param idCancha query int false "Court ID"
// @Param idUsuario query int false "User ID"
// @Param estado query string false "Status"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservas [get]
func (h *ReservationHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), a, filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Export reservations
// @Description Same filters as the admin listing, rendered as an xlsx workbook
// @Tags reservations
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservas/export [get]
func (h *ReservationHandler) Export(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	// Buffered so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.q.Export(c.Request.Context(), a, filter, &buf); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reservas.xlsx"`)
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// @Summary Cancel reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservas/{id} [delete]
// @Router /reservas/{id}/cancel [patch]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), a, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{Message: "Reserva cancelada", ID: id})
}

func bindFilter(c *gin.Context) (queries.ReservationFilter, bool) {
	var q reqdto.ReservationFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Filtros inválidos")
		return queries.ReservationFilter{}, false
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.FromError(c, err)
		return queries.ReservationFilter{}, false
	}
	return filter, true
}
