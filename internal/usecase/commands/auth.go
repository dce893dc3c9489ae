package commands

//go:generate go run go.uber.org/mock/mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=mock_commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/auth"
	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/pkg/jwt"
	"padel-club/internal/pkg/password"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"
)

// ErrAuthenticationFailed is the single answer for unknown dni and wrong
// password alike.
var ErrAuthenticationFailed = errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthenticated)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginInput struct {
	DNI      string
	Password string
}

type RegisterInput struct {
	DNI       string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtService: jwtService, logger: logger}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.DNI, in.Password)
	if err != nil {
		if errs.Is(err, user.ErrInvalidDNI) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByDNI(ctx, credentials.DNI())
		if err != nil {
			return err
		}
		u = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := password.Compare(u.PasswordHash(), credentials.Password()); err != nil {
		if errs.Is(err, password.ErrMismatch) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, errs.Wrapf(errs.ErrInactiveAccount, "user %d", u.ID())
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, u.ID()); updateErr != nil {
			a.logger.Warn("failed to update last login", "user_id", u.ID(), "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded
		a.logger.Warn("transaction failed during login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{Token: token, User: userView(u)}, nil
}

// Register creates a player account and signs it in.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	dni, err := user.NewDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	profile, err := user.NewProfile(in.FirstName, in.LastName, in.Phone)
	if err != nil {
		return nil, err
	}
	pwd, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(pwd.Value())
	if err != nil {
		return nil, err
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, user.NewUser(dni, email, profile, hash))
		if err != nil {
			if infra.IsDuplicateOn(err, infra.IndexUserDNI) {
				return user.ErrDuplicateDNI
			}
			return err
		}
		u, err = tx.Users().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	a.logger.Info("user registered", "user_id", u.ID())
	return &LoginResult{Token: token, User: userView(u)}, nil
}
