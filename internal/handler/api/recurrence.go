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

type RecurrenceHandler struct {
	cmds commands.RecurrenceCommands
	q    queries.RecurrenceQueries
}

func NewRecurrenceHandler(cmds commands.RecurrenceCommands, q queries.RecurrenceQueries) *RecurrenceHandler {
	return &RecurrenceHandler{cmds: cmds, q: q}
}

// @Summary Create recurring reservation
// @Description Weekly rule for the caller; occurrences inside the horizon are booked right away and conflicts are reported
// @Tags recurrences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRuleRequest true "Rule"
// @Success 201 {object} commands.CreateRuleResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservas/recurrente [post]
func (h *RecurrenceHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Datos de reserva recurrente inválidos")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), a, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// @Summary My recurring reservations
// @Tags recurrences
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.RuleView
// @Router /reservas/recurrente/mis-reservas [get]
func (h *RecurrenceHandler) ListMine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Cancel recurring reservation
// @Description Stops future materialization; bookings already created are kept
// @Tags recurrences
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservas/recurrente/{id} [delete]
func (h *RecurrenceHandler) Cancel(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.CancelResponse{Message: "Reserva recurrente cancelada", ID: id})
}

// @Summary Run materialization sweep
// @Tags recurrences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} commands.SweepReport
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservas/recurrente/materializar [post]
func (h *RecurrenceHandler) Sweep(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	report, err := h.cmds.Sweep(c.Request.Context(), a)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
