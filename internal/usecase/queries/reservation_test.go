//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/queries"
	mock_queries "padel-club/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mock_queries.MockReservationReadStore
	exporter *mock_queries.MockBookingExporter
	q        queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mock_queries.NewMockReservationReadStore(s.ctrl)
	s.exporter = mock_queries.NewMockBookingExporter(s.ctrl)
	s.q = queries.NewReservationQueries(s.repo, s.exporter)
}

func TestReservationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	missing := infra.WrapRepoErr(discard, infra.KindNotFound, "reservation not found", nil)

	s.Run("owner", func() {
		s.SetupTest()
		s.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&queries.ReservationView{ID: 5, UserID: player.UserID}, nil)
		v, err := s.q.GetByID(ctx, player, 5)
		s.Require().NoError(err)
		s.Equal(int64(5), v.ID)
	})

	s.Run("someone else's booking", func() {
		s.SetupTest()
		s.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&queries.ReservationView{ID: 5, UserID: 99}, nil)
		_, err := s.q.GetByID(ctx, player, 5)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("player probing a missing id", func() {
		s.SetupTest()
		s.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, missing)
		_, err := s.q.GetByID(ctx, player, 5)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("admin on a missing id", func() {
		s.SetupTest()
		s.repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, missing)
		_, err := s.q.GetByID(ctx, admin, 5)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReservationQueriesTestSuite) TestListByCourtAndDateHidesOtherPlayers() {
	date := schedule.MustDate("2025-06-05")
	rows := func() []*queries.ReservationView {
		return []*queries.ReservationView{
			{ID: 1, UserID: player.UserID, UserDNI: "30123456", UserName: "Ana Pérez"},
			{ID: 2, UserID: 99, UserDNI: "28999111", UserName: "Juan Gómez"},
		}
	}

	s.repo.EXPECT().ListByCourtAndDate(gomock.Any(), int64(1), date).Return(rows(), nil)
	got, err := s.q.ListByCourtAndDate(context.Background(), player, 1, date)
	s.Require().NoError(err)
	s.Equal("Ana Pérez", got[0].UserName)
	s.Empty(got[1].UserName)
	s.Empty(got[1].UserDNI)

	s.repo.EXPECT().ListByCourtAndDate(gomock.Any(), int64(1), date).Return(rows(), nil)
	got, err = s.q.ListByCourtAndDate(context.Background(), admin, 1, date)
	s.Require().NoError(err)
	s.Equal("Juan Gómez", got[1].UserName)
}

func (s *ReservationQueriesTestSuite) TestListByCourtAndDateUnavailable() {
	date := schedule.MustDate("2025-06-05")
	s.repo.EXPECT().ListByCourtAndDate(gomock.Any(), int64(1), date).
		Return(nil, infra.WrapRepoErr(discard, infra.KindDBFailure, "failed", errs.New("timeout")))
	_, err := s.q.ListByCourtAndDate(context.Background(), player, 1, date)
	s.True(errs.Is(err, errs.ErrUnavailable))
}

func (s *ReservationQueriesTestSuite) TestListMinePaginates() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	page := []*queries.ReservationView{
		{ID: 9, UserID: player.UserID, CreatedAt: base.Add(3 * time.Minute)},
		{ID: 8, UserID: player.UserID, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 7, UserID: player.UserID, CreatedAt: base.Add(time.Minute)},
	}

	s.repo.EXPECT().ListByUser(gomock.Any(), player.UserID, queries.KeysetPage{Limit: 3}).Return(page, nil)
	got, next, err := s.q.ListMine(ctx, player, nil, 2)
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Require().NotNil(next)

	createdAt, id, err := queries.DecodeAfterCursor(next.After)
	s.Require().NoError(err)
	s.Equal(int64(8), id)
	s.True(createdAt.Equal(base.Add(2 * time.Minute)))

	s.repo.EXPECT().ListByUser(gomock.Any(), player.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p queries.KeysetPage) ([]*queries.ReservationView, error) {
			s.Equal(int64(8), p.AfterID)
			s.Equal(3, p.Limit)
			return page[2:], nil
		})
	got, next, err = s.q.ListMine(ctx, player, next, 2)
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Nil(next)
}

func (s *ReservationQueriesTestSuite) TestListMineWithoutLimitReturnsEverything() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]*queries.ReservationView, 120)
	for i := range rows {
		rows[i] = &queries.ReservationView{ID: int64(120 - i), UserID: player.UserID, CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}

	s.repo.EXPECT().ListByUser(gomock.Any(), player.UserID, queries.KeysetPage{}).Return(rows, nil)
	got, next, err := s.q.ListMine(context.Background(), player, nil, 0)
	s.Require().NoError(err)
	s.Len(got, 120)
	s.Nil(next)
}

func (s *ReservationQueriesTestSuite) TestListMineCursorWithoutLimitUsesDefaultPage() {
	after := &queries.Cursor{After: queries.EncodeAfterCursor(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), 80)}
	s.repo.EXPECT().ListByUser(gomock.Any(), player.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p queries.KeysetPage) ([]*queries.ReservationView, error) {
			s.Equal(51, p.Limit)
			s.Equal(int64(80), p.AfterID)
			return nil, nil
		})
	_, next, err := s.q.ListMine(context.Background(), player, after, 0)
	s.Require().NoError(err)
	s.Nil(next)
}

func (s *ReservationQueriesTestSuite) TestListMineRejectsBadCursor() {
	_, _, err := s.q.ListMine(context.Background(), player, &queries.Cursor{After: "not-a-cursor"}, 10)
	s.True(errs.Is(err, queries.ErrInvalidCursor))
}

func (s *ReservationQueriesTestSuite) TestListIsAdminOnly() {
	_, err := s.q.List(context.Background(), player, queries.ReservationFilter{})
	s.True(errs.Is(err, errs.ErrForbidden))
}

func (s *ReservationQueriesTestSuite) TestListRejectsInvertedPeriod() {
	_, err := s.q.List(context.Background(), admin, queries.ReservationFilter{
		From: schedule.MustDate("2025-06-10"),
		To:   schedule.MustDate("2025-06-01"),
	})
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ReservationQueriesTestSuite) TestExport() {
	filter := queries.ReservationFilter{From: schedule.MustDate("2025-06-01"), To: schedule.MustDate("2025-06-30")}
	rows := []*queries.ReservationView{{ID: 1}}
	var buf bytes.Buffer

	s.repo.EXPECT().List(gomock.Any(), filter).Return(rows, nil)
	s.exporter.EXPECT().Write(&buf, "2025-06-01 - 2025-06-30", rows).Return(nil)
	s.NoError(s.q.Export(context.Background(), admin, filter, &buf))

	s.True(errs.Is(s.q.Export(context.Background(), player, filter, &buf), errs.ErrForbidden))
}
