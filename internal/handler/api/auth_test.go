//go:build unit

package api_test

import (
	"context"
	"net/http"

	"padel-club/internal/handler/dto/response"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
	"padel-club/tests/common/builder"
	"padel-club/tests/common/httptest"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) TestLogin() {
	view := &queries.UserView{ID: 7, DNI: "30123456", Role: "jugador", IsActive: true}

	s.Run("trims the dni", func() {
		s.SetupTest()
		s.authCmds.EXPECT().
			Login(gomock.Any(), commands.LoginInput{DNI: "30123456", Password: "password123"}).
			Return(&commands.LoginResult{Token: "jwt", User: view}, nil)

		body := builder.NewAuthBuilder().WithDNI("  30123456 ").BuildDTO()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var res response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("jwt", res.Token)
		s.Equal("30123456", res.Usuario.DNI)
	})

	s.Run("missing fields never reach the usecase", func() {
		s.SetupTest()
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/auth/login", `{"dni":"30123456"}`, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("bad credentials", func() {
		s.SetupTest()
		s.authCmds.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrAuthenticationFailed)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", builder.NewAuthBuilder().BuildDTO(), "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, httperr.CodeUnauthenticated)
	})

	s.Run("inactive account", func() {
		s.SetupTest()
		s.authCmds.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInactiveAccount)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", builder.NewAuthBuilder().BuildDTO(), "")
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeInactiveAccount)
	})
}

func (s *handlerSuite) TestRegister() {
	s.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in commands.RegisterInput) (*commands.LoginResult, error) {
			s.Equal("Lucía", in.FirstName)
			s.Equal("Sosa", in.LastName)
			return &commands.LoginResult{Token: "jwt", User: &queries.UserView{DNI: in.DNI, Role: "jugador"}}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", builder.NewRegisterBuilder().BuildDTO(), "")
	var res response.LoginResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	s.Equal("40111222", res.Usuario.DNI)
}

func (s *handlerSuite) TestProfile() {
	s.Run("current user", func() {
		s.SetupTest()
		s.userQ.EXPECT().GetCurrentUser(gomock.Any(), player).Return(&queries.UserView{ID: 7, DNI: "30123456"}, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/profile", nil, playerToken)
		var v queries.UserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &v)
		s.Equal(int64(7), v.ID)
	})

	s.Run("no token", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/profile", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, httperr.CodeUnauthenticated)
	})

	s.Run("inactive account is stopped before the handler", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/profile", nil, inactiveToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeInactiveAccount)
	})
}
