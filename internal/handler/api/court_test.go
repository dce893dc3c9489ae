//go:build unit

package api_test

import (
	"net/http"
	"time"

	"padel-club/internal/domain/court"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/handler/dto/request"
	"padel-club/internal/handler/dto/response"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
	"padel-club/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func courtView(id int64, number int) *queries.CourtView {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &queries.CourtView{ID: id, Number: number, Category: "indoor", Active: true, CreatedAt: at, UpdatedAt: at}
}

func (s *handlerSuite) TestCourtList() {
	s.Run("labels courts by number", func() {
		s.SetupTest()
		s.courtQ.EXPECT().List(gomock.Any(), player, false).Return([]*queries.CourtView{courtView(1, 1), courtView(2, 2)}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas", nil, playerToken)
		var got []response.CourtResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got, 2)
		s.Equal("Cancha 2", got[1].Label)
		s.Equal("indoor", got[1].Category)
	})

	s.Run("todas flag", func() {
		s.SetupTest()
		s.courtQ.EXPECT().List(gomock.Any(), admin, true).Return(nil, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas?todas=true", nil, adminToken)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})
}

func (s *handlerSuite) TestCourtAvailability() {
	s.Run("returns the grid", func() {
		s.SetupTest()
		date := schedule.MustDate("2025-06-05")
		s.availability.EXPECT().ForCourt(gomock.Any(), player, int64(1), date).Return(&queries.AvailabilityView{
			Date:    "2025-06-05",
			CourtID: 1,
			Slots:   []queries.SlotView{{Start: "08:00", End: "09:30", State: "libre", Available: true}},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/1/disponibilidad?fecha=2025-06-05", nil, playerToken)
		var got queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("libre", got.Slots[0].State)
	})

	s.Run("malformed date", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/1/disponibilidad?fecha=05-06-2025", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("unknown court", func() {
		s.SetupTest()
		s.availability.EXPECT().ForCourt(gomock.Any(), player, int64(9), gomock.Any()).Return(nil, queries.ErrCourtNotFound)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/9/disponibilidad?fecha=2025-06-05", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *handlerSuite) TestCourtAdministration() {
	s.Run("players cannot create", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/canchas",
			request.CreateCourtRequest{Numero: 3, Tipo: "indoor"}, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("create", func() {
		s.SetupTest()
		s.courtCmds.EXPECT().Create(gomock.Any(), admin, commands.CreateCourtInput{Number: 3, Category: "indoor", Description: "Nueva"}).
			Return(courtView(3, 3), nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/canchas",
			request.CreateCourtRequest{Numero: 3, Tipo: "indoor", Descripcion: "Nueva"}, adminToken)
		var got response.CourtResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("Cancha 3", got.Label)
	})

	s.Run("duplicate number", func() {
		s.SetupTest()
		s.courtCmds.EXPECT().Create(gomock.Any(), admin, gomock.Any()).Return(nil, court.ErrDuplicateCourtNumber)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/canchas",
			request.CreateCourtRequest{Numero: 1, Tipo: "indoor"}, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "court number already in use")
	})

	s.Run("partial update", func() {
		s.SetupTest()
		active := false
		s.courtCmds.EXPECT().Update(gomock.Any(), admin, int64(3), commands.UpdateCourtInput{Active: &active}).
			Return(courtView(3, 3), nil)
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/canchas/3", `{"activa":false}`, adminToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("deactivate", func() {
		s.SetupTest()
		s.courtCmds.EXPECT().Deactivate(gomock.Any(), admin, int64(3)).Return(nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/canchas/3", nil, adminToken)
		s.Equal(http.StatusNoContent, w.Code)
	})
}
