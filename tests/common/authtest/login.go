//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"padel-club/internal/handler/dto/request"
	"padel-club/internal/handler/dto/response"
	"padel-club/tests/common/dbtest"
	"padel-club/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, dni, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login",
		request.LoginRequest{DNI: dni, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	httptest.DecodeResponseBody(t, w, &res)
	require.NotEmpty(t, res.Token, "token missing from login response")
	return res.Token
}

// CreateAndLogin inserts an active user and returns its id with a fresh token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, dni, role string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, dni, role)
	return id, LoginUser(t, router, dni, dbtest.DefaultPassword)
}
