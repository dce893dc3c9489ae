package api

import (
	"net/http"

	"padel-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	availability queries.AvailabilityQueries
}

func NewScheduleHandler(availability queries.AvailabilityQueries) *ScheduleHandler {
	return &ScheduleHandler{availability: availability}
}

// @Summary Slot template
// @Description Fixed daily slots of the club, independent of any court
// @Tags schedule
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.SlotView
// @Router /horarios [get]
func (h *ScheduleHandler) Template(c *gin.Context) {
	c.JSON(http.StatusOK, h.availability.Template())
}
