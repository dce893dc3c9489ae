package api

import (
	"net/http"
	"strconv"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/handler/middleware"
	"padel-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingActor = errs.Mark(errs.New("no actor in request context"), errs.ErrUnauthenticated)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, errs.Validation("invalid "+name+" "+c.Param(name)), "Identificador inválido")
		return 0, false
	}
	return id, true
}

func queryDate(c *gin.Context, name string) (schedule.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, errs.Validation(name+" is required"), "Falta el parámetro "+name)
		return schedule.Date{}, false
	}
	d, err := schedule.ParseDate(raw)
	if err != nil {
		httperr.BadRequest(c, err, "Fecha inválida, use YYYY-MM-DD")
		return schedule.Date{}, false
	}
	return d, true
}

// actor is set by RequireAuth; a missing one means the route was mounted
// without it.
func actor(c *gin.Context) (access.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, httperr.CodeUnauthenticated, "No autenticado", nil)
		return access.Actor{}, false
	}
	return a, true
}
