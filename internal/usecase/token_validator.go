package usecase

//go:generate go run go.uber.org/mock/mockgen -source=token_validator.go -destination=../../tests/mock/usecase/mock_token_validator.go -package=mock_usecase

import (
	"context"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/pkg/jwt"
	"padel-club/internal/usecase/queries"
)

var ErrUnknownUser = errs.Mark(errs.New("token subject no longer exists"), errs.ErrUnauthenticated)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (access.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

// ValidateToken checks the signature and then reloads the account, so role
// and active flag changes apply to tokens already issued. Inactive accounts
// are returned as actors; the gate refuses them with InactiveAccount.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (access.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return access.Actor{}, errs.Mark(err, errs.ErrUnauthenticated)
	}

	v, err := t.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return access.Actor{}, ErrUnknownUser
		}
		return access.Actor{}, err
	}

	role, err := user.NewRole(v.Role)
	if err != nil {
		return access.Actor{}, errs.Mark(err, errs.ErrUnauthenticated)
	}
	return access.Actor{UserID: v.ID, Role: role, Active: v.IsActive}, nil
}
