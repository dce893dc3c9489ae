//go:build unit

package api_test

import (
	"context"
	"net/http"
	"time"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/handler/dto/request"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/commands"
	"padel-club/internal/usecase/queries"
	"padel-club/tests/common/builder"
	"padel-club/tests/common/httptest"
	"padel-club/tests/common/testutil"

	"go.uber.org/mock/gomock"
)

func (s *handlerSuite) TestCreateRule() {
	s.Run("created with expansion report", func() {
		s.SetupTest()
		to := schedule.MustDate("2025-06-24")
		s.ruleCmds.EXPECT().Create(gomock.Any(), player, commands.CreateRuleInput{
			CourtID:       1,
			Weekday:       2,
			Start:         schedule.MustClockTime("20:00"),
			EffectiveFrom: schedule.MustDate("2025-06-03"),
			EffectiveTo:   &to,
		}).Return(&commands.CreateRuleResult{
			Rule:      &queries.RuleView{ID: 4, Weekday: 2, Start: "20:00", End: "21:30", Active: true},
			Expansion: &commands.SweepReport{Rules: 1, Created: 4},
		}, nil)

		body := builder.NewRuleBuilder().With(func(r *request.CreateRuleRequest) {
			end := "2025-06-24"
			r.FechaFin = &end
		}).BuildDTO()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente", body, playerToken)

		var got commands.CreateRuleResult
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(int64(4), got.Rule.ID)
		s.Equal(4, got.Expansion.Created)
	})

	s.Run("sunday is a valid weekday", func() {
		s.SetupTest()
		s.ruleCmds.EXPECT().Create(gomock.Any(), player, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Actor, in commands.CreateRuleInput) (*commands.CreateRuleResult, error) {
				s.Equal(0, in.Weekday)
				return &commands.CreateRuleResult{Rule: &queries.RuleView{}, Expansion: &commands.SweepReport{}}, nil
			})
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente",
			`{"idCancha":1,"diaSemana":0,"horaInicio":"20:00","fechaInicio":"2025-06-08"}`, playerToken)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("weekday mismatch names both days", func() {
		s.SetupTest()
		s.ruleCmds.EXPECT().Create(gomock.Any(), player, gomock.Any()).
			Return(nil, &errs.WeekdayMismatchError{Actual: time.Wednesday, Expected: time.Tuesday})
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente", builder.NewRuleBuilder().BuildDTO(), playerToken)
		res := httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, httperr.CodeWeekdayMismatch)
		s.Contains(res.Message, "miércoles")
		s.Contains(res.Message, "martes")
	})

	s.Run("diaSemana is required", func() {
		s.SetupTest()
		body := testutil.DtoMap(s.T(), builder.NewRuleBuilder().BuildDTO(), testutil.Field("diaSemana", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente", body, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("malformed dates", func() {
		s.SetupTest()
		body := builder.NewRuleBuilder().With(func(r *request.CreateRuleRequest) { r.FechaInicio = "3/6/2025" }).BuildDTO()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente", body, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, httperr.CodeValidation)
	})
}

func (s *handlerSuite) TestRuleListAndCancel() {
	s.ruleQ.EXPECT().ListMine(gomock.Any(), player).Return([]*queries.RuleView{{ID: 4}}, nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/recurrente/mis-reservas", nil, playerToken)
	var rules []queries.RuleView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rules)
	s.Len(rules, 1)

	s.ruleCmds.EXPECT().Cancel(gomock.Any(), player, int64(4)).Return(nil)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/recurrente/4", nil, playerToken)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *handlerSuite) TestSweepRoute() {
	s.Run("admin only", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente/materializar", nil, playerToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("returns the report", func() {
		s.SetupTest()
		s.ruleCmds.EXPECT().Sweep(gomock.Any(), admin).Return(&commands.SweepReport{
			Rules: 2, Created: 1, Existing: 6, Conflicts: 1,
			Failures: []commands.RuleFailure{{RuleID: 3, Date: "2025-07-01", Error: "boom"}},
		}, nil)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/recurrente/materializar", nil, adminToken)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"reglas":2,"creadas":1,"existentes":6,"conflictos":1,"omitidas":0,
			"fallas":[{"idReservaRecurrente":3,"fecha":"2025-07-01","error":"boom"}]}`, w.Body.String())
	})
}
