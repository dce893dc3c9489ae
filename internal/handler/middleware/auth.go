package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"padel-club/internal/domain/access"
	"padel-club/internal/handler/httperr"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

var errMissingToken = errs.Mark(errs.New("access token required"), errs.ErrUnauthenticated)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token to the caller's current account.
// Inactive accounts are stopped here with 403 before any handler runs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.FromError(c, errMissingToken)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			if !errs.Is(err, errs.ErrUnauthenticated) {
				err = errs.Unavailable(err, "account lookup failed")
			}
			httperr.FromError(c, err)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": strconv.FormatInt(actor.UserID, 10),
			"role":    actor.Role.String(),
		})

		if err := access.Admit(actor); err != nil {
			httperr.FromError(c, err)
			return
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Classify(errs.New("actor missing")))
			return
		}
		if err := access.RequireAdmin(actor); err != nil {
			httperr.FromError(c, err)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (access.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}
