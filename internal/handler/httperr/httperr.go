package httperr

import (
	"net/http"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error body the club client reads; it only looks at Message.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Detail  any    `json:"detail,omitempty"`
}

const (
	CodeInvalidSlot     = "INVALID_SLOT"
	CodeSlotOccupied    = "SLOT_OCCUPIED"
	CodeWeekdayMismatch = "WEEKDAY_MISMATCH"
	CodeValidation      = "VALIDATION"
	CodeConflict        = "CONFLICT"
	CodeForbidden       = "FORBIDDEN"
	CodeInactiveAccount = "INACTIVE_ACCOUNT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeUnavailable     = "UNAVAILABLE"
	CodeInternal        = "INTERNAL"
)

const (
	msgForbidden       = "No tiene permisos para realizar esta acción"
	msgInactiveAccount = "La cuenta está inactiva"
	msgUnauthenticated = "No autenticado o token inválido"
	msgUnavailable     = "Servicio no disponible, intente nuevamente"
	msgInternal        = "Error interno del servidor"
)

type WeekdayDetail struct {
	Actual   string `json:"actual"`
	Expected string `json:"expected"`
}

type SlotDetail struct {
	Value  string `json:"valor"`
	Reason string `json:"motivo"`
}

type OccupiedDetail struct {
	CourtID int64  `json:"idCancha"`
	Date    string `json:"fecha"`
	Start   string `json:"horaInicio"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Code: code, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest reports malformed input that never reached the usecase layer.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, CodeValidation, msg, nil)
}

// FromError aborts with the status and body the taxonomy assigns to err.
func FromError(c *gin.Context, err error) {
	resp := Classify(err)
	AbortWithError(c, resp.Status, err, resp.Code, resp.Message, resp.Detail)
}

// Classify maps an error to its response. Typed errors are checked before the
// generic sentinels they also match.
func Classify(err error) Response {
	var (
		slotErr     *errs.InvalidSlotError
		occupiedErr *errs.SlotOccupiedError
		weekdayErr  *errs.WeekdayMismatchError
	)
	switch {
	case errs.As(err, &weekdayErr):
		actual := schedule.WeekdayName(weekdayErr.Actual)
		expected := schedule.WeekdayName(weekdayErr.Expected)
		return Response{
			Status:  http.StatusUnprocessableEntity,
			Code:    CodeWeekdayMismatch,
			Message: "La fecha de inicio cae " + actual + " pero el día de la semana elegido es " + expected,
			Detail:  WeekdayDetail{Actual: actual, Expected: expected},
		}
	case errs.As(err, &slotErr):
		return Response{
			Status:  http.StatusUnprocessableEntity,
			Code:    CodeInvalidSlot,
			Message: "Horario inválido: " + slotErr.Reason,
			Detail:  SlotDetail{Value: slotErr.Value, Reason: slotErr.Reason},
		}
	case errs.As(err, &occupiedErr):
		return Response{
			Status:  http.StatusConflict,
			Code:    CodeSlotOccupied,
			Message: "El horario ya está reservado",
			Detail:  OccupiedDetail{CourtID: occupiedErr.CourtID, Date: occupiedErr.Date, Start: occupiedErr.Start},
		}
	case errs.Is(err, errs.ErrInvalidSlot):
		return Response{Status: http.StatusUnprocessableEntity, Code: CodeInvalidSlot, Message: "Horario inválido"}
	case errs.Is(err, errs.ErrSlotOccupied):
		return Response{Status: http.StatusConflict, Code: CodeSlotOccupied, Message: "El horario ya está reservado"}
	case errs.Is(err, errs.ErrInactiveAccount):
		return Response{Status: http.StatusForbidden, Code: CodeInactiveAccount, Message: msgInactiveAccount}
	case errs.Is(err, errs.ErrForbidden):
		return Response{Status: http.StatusForbidden, Code: CodeForbidden, Message: msgForbidden}
	case errs.Is(err, errs.ErrUnauthenticated):
		return Response{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: msgUnauthenticated}
	case errs.Is(err, errs.ErrNotFound):
		return Response{Status: http.StatusNotFound, Code: CodeNotFound, Message: firstLine(err)}
	case errs.Is(err, errs.ErrValidation):
		return Response{Status: http.StatusBadRequest, Code: CodeValidation, Message: firstLine(err)}
	case errs.Is(err, errs.ErrConflict):
		return Response{Status: http.StatusConflict, Code: CodeConflict, Message: firstLine(err)}
	case errs.Is(err, errs.ErrUnavailable):
		return Response{Status: http.StatusServiceUnavailable, Code: CodeUnavailable, Message: msgUnavailable}
	default:
		return Response{Status: http.StatusInternalServerError, Code: CodeInternal, Message: msgInternal}
	}
}

// firstLine drops wrapping context so only the domain message reaches the
// client.
func firstLine(err error) string {
	return errs.Cause(err).Error()
}
