//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/pkg/jwt"
	"padel-club/internal/usecase"
	"padel-club/internal/usecase/queries"
	mock_queries "padel-club/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "token-validator-secret-with-enough-length"

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)
	token, err := svc.GenerateToken(7, user.RoleAdmin)
	require.NoError(t, err)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		token   string
		setup   func(store *mock_queries.MockUserReadStore)
		want    access.Actor
		wantErr error
	}{
		{
			name:    "garbage token",
			token:   "not-a-jwt",
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name:    "token signed with another key",
			token:   mustToken(t, jwt.NewService(secret+"-other", time.Hour)),
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name:  "role comes from the stored account",
			token: token,
			setup: func(store *mock_queries.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&queries.UserView{ID: 7, Role: "jugador", IsActive: true}, nil)
			},
			want: access.Actor{UserID: 7, Role: user.RolePlayer, Active: true},
		},
		{
			name:  "inactive account is still resolved",
			token: token,
			setup: func(store *mock_queries.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&queries.UserView{ID: 7, Role: "admin", IsActive: false}, nil)
			},
			want: access.Actor{UserID: 7, Role: user.RoleAdmin, Active: false},
		},
		{
			name:  "deleted account",
			token: token,
			setup: func(store *mock_queries.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(nil, infra.WrapRepoErr(quiet, infra.KindNotFound, "user not found", nil))
			},
			wantErr: usecase.ErrUnknownUser,
		},
		{
			name:  "store failure is passed through",
			token: token,
			setup: func(store *mock_queries.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(nil, infra.WrapRepoErr(quiet, infra.KindDBFailure, "select user", errs.New("conn reset")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_queries.NewMockUserReadStore(ctrl)
			if tt.setup != nil {
				tt.setup(store)
			}

			got, err := usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), tt.token)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			case tt.want == (access.Actor{}):
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, errs.Is(err, errs.ErrUnauthenticated))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func mustToken(t *testing.T, svc *jwt.Service) string {
	t.Helper()
	tok, err := svc.GenerateToken(7, user.RolePlayer)
	require.NoError(t, err)
	return tok
}
