//go:build unit

package api_test

import (
	"net/http"

	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/queries"
	"padel-club/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) TestUserDirectory() {
	s.Run("admin lists users", func() {
		s.SetupTest()
		s.userQ.EXPECT().List(gomock.Any(), admin).Return([]*queries.UserView{{ID: 1}, {ID: 7}}, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usuarios", nil, adminToken)
		var got []queries.UserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
	})

	s.Run("players cannot list", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usuarios", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("reading another user is refused by the usecase", func() {
		s.SetupTest()
		s.userQ.EXPECT().GetByID(gomock.Any(), player, int64(1)).Return(nil, errs.ErrForbidden)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usuarios/1", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("unknown user", func() {
		s.SetupTest()
		s.userQ.EXPECT().GetByID(gomock.Any(), admin, int64(99)).Return(nil, errs.NotFound("user"))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usuarios/99", nil, adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *handlerSuite) TestUserAdministration() {
	s.Run("change role", func() {
		s.SetupTest()
		s.userCmds.EXPECT().ChangeRole(gomock.Any(), admin, int64(7), "admin").
			Return(&queries.UserView{ID: 7, Role: "admin"}, nil)
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/usuarios/7/rol", `{"rol":"admin"}`, adminToken)
		var got queries.UserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("admin", got.Role)
	})

	s.Run("unknown role", func() {
		s.SetupTest()
		s.userCmds.EXPECT().ChangeRole(gomock.Any(), admin, int64(7), "capitan").
			Return(nil, errs.Validation("unknown role capitan"))
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/usuarios/7/rol", `{"rol":"capitan"}`, adminToken)
		res := httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
		s.Equal("unknown role capitan", res.Message)
	})

	s.Run("deactivate", func() {
		s.SetupTest()
		s.userCmds.EXPECT().SetActive(gomock.Any(), admin, int64(7), false).
			Return(&queries.UserView{ID: 7, IsActive: false}, nil)
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/usuarios/7/estado", `{"activo":false}`, adminToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("activo is required", func() {
		s.SetupTest()
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/usuarios/7/estado", `{}`, adminToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("players are stopped", func() {
		s.SetupTest()
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/usuarios/7/estado", `{"activo":true}`, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})
}

func (s *handlerSuite) TestScheduleTemplate() {
	s.availability.EXPECT().Template().Return([]queries.SlotView{
		{Start: "08:00", End: "09:30", Available: true},
		{Start: "09:30", End: "11:00", Available: true},
	})
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/horarios", nil, playerToken)
	var got []queries.SlotView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Len(got, 2)
	s.Equal("09:30", got[1].Start)
}
