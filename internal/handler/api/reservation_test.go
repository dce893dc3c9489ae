//go:build unit

package api_test

import (
	"context"
	"io"
	"net/http"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/handler/dto/response"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
	"padel-club/tests/common/builder"
	"padel-club/tests/common/httptest"
	"padel-club/tests/common/testutil"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) TestCreateReservation() {
	s.Run("parses the request into domain values", func() {
		s.SetupTest()
		b := builder.NewReservationBuilder().Until("21:30")
		end := schedule.MustClockTime("21:30")
		s.bookingCmds.EXPECT().Create(gomock.Any(), player, commands.CreateReservationInput{
			CourtID: 1,
			Date:    schedule.MustDate("2025-06-05"),
			Start:   schedule.MustClockTime("20:00"),
			End:     &end,
		}).Return(b.BuildView(11, player.UserID), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas", b.BuildDTO(), playerToken)
		var v queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &v)
		s.Equal(int64(11), v.ID)
		s.Equal("confirmada", v.Status)
	})

	s.Run("malformed start time", func() {
		s.SetupTest()
		body := builder.NewReservationBuilder().At("8pm").BuildDTO()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas", body, playerToken)
		res := httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, httperr.CodeInvalidSlot)
		s.Equal("8pm", res.Detail["valor"])
	})

	s.Run("occupied slot", func() {
		s.SetupTest()
		s.bookingCmds.EXPECT().Create(gomock.Any(), player, gomock.Any()).
			Return(nil, &errs.SlotOccupiedError{CourtID: 1, Date: "2025-06-05", Start: "20:00"})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas", builder.NewReservationBuilder().BuildDTO(), playerToken)
		res := httptest.AssertErrorCode(s.T(), w, http.StatusConflict, httperr.CodeSlotOccupied)
		s.Equal("2025-06-05", res.Detail["fecha"])
	})

	for _, field := range []string{"idCancha", "fechaReserva", "horaInicio"} {
		s.Run("missing "+field, func() {
			s.SetupTest()
			body := testutil.DtoMap(s.T(), builder.NewReservationBuilder().BuildDTO(), testutil.Field(field, nil))
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas", body, playerToken)
			httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
		})
	}
}

func (s *handlerSuite) TestCancelReservation() {
	s.Run("both routes cancel", func() {
		s.SetupTest()
		s.bookingCmds.EXPECT().Cancel(gomock.Any(), player, int64(11)).Return(nil).Times(2)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/11", nil, playerToken)
		var res response.CancelResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(11), res.ID)

		w = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservas/11/cancel", nil, playerToken)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid id", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/abc", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("forbidden", func() {
		s.SetupTest()
		s.bookingCmds.EXPECT().Cancel(gomock.Any(), player, int64(11)).Return(errs.ErrForbidden)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/11", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})
}

func (s *handlerSuite) TestListMineSetsCursorHeader() {
	rows := []*queries.ReservationView{builder.NewReservationBuilder().BuildView(3, player.UserID)}
	s.bookingQ.EXPECT().ListMine(gomock.Any(), player, &queries.Cursor{After: "abc"}, 1).
		Return(rows, &queries.Cursor{After: "next"}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/mis-reservas?limit=1&after=abc", nil, playerToken)
	var got []queries.ReservationView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Len(got, 1)
	s.Equal("next", w.Header().Get(response.NextCursorHeader))
}

func (s *handlerSuite) TestListMineWithoutParamsIsUnpaged() {
	rows := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(3, player.UserID),
		builder.NewReservationBuilder().BuildView(2, player.UserID),
	}
	s.bookingQ.EXPECT().ListMine(gomock.Any(), player, nil, 0).Return(rows, nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/mis-reservas", nil, playerToken)
	var got []queries.ReservationView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Len(got, 2)
	s.Empty(w.Header().Get(response.NextCursorHeader))
}

func (s *handlerSuite) TestByCourtAndDate() {
	s.Run("requires fecha", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/cancha/1", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("storage unavailable", func() {
		s.SetupTest()
		s.bookingQ.EXPECT().ListByCourtAndDate(gomock.Any(), player, int64(1), schedule.MustDate("2025-06-05")).
			Return(nil, errs.Unavailable(errs.New("timeout"), "list failed"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/cancha/1?fecha=2025-06-05", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusServiceUnavailable, httperr.CodeUnavailable)
	})
}

func (s *handlerSuite) TestAdminReservationRoutes() {
	s.Run("players are stopped by the admin gate", func() {
		s.SetupTest()
		for _, path := range []string{"/reservas", "/reservas/export"} {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, playerToken)
			httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
		}
	})

	s.Run("filter is parsed", func() {
		s.SetupTest()
		s.bookingQ.EXPECT().List(gomock.Any(), admin, queries.ReservationFilter{
			From:    schedule.MustDate("2025-06-01"),
			To:      schedule.MustDate("2025-06-30"),
			CourtID: 2,
			Status:  "confirmada",
		}).Return(nil, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservas?desde=2025-06-01&hasta=2025-06-30&idCancha=2&estado=confirmada", nil, adminToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("bad filter date", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas?desde=junio", nil, adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("export streams a workbook", func() {
		s.SetupTest()
		s.bookingQ.EXPECT().Export(gomock.Any(), admin, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Actor, _ queries.ReservationFilter, w io.Writer) error {
				_, err := w.Write([]byte("PK"))
				return err
			})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/export", nil, adminToken)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Header().Get("Content-Type"), "spreadsheetml")
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Content-Disposition": `attachment; filename="reservas.xlsx"`,
			"Content-Length":      "2",
		})
		s.Equal("PK", w.Body.String())
	})
}
