package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roster/config"
	cErr "roster/internal/pkg/error"
	"roster/internal/service"
	"roster/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*Auth, *service.AuthService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := &config.Configuration{}
	conf.Auth = config.Auth{
		SecretKey:    "test-signing-key",
		Username:     "testuser",
		PasswordHash: string(hash),
	}
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)

	authService := service.NewAuthService(trace, conf)
	return NewAuth(zap.NewNop(), trace, authService), authService
}

func runAuth(t *testing.T, m *Auth, authorization string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	m.Handler()(c)
	return c
}

func TestAuthHandlerAcceptsValidToken(t *testing.T) {
	m, authService := newTestAuth(t)

	token, err := authService.IssueToken(t.Context(), "testuser")
	require.NoError(t, err)

	c := runAuth(t, m, "Bearer "+token.AccessToken)
	assert.False(t, c.IsAborted())
	assert.Empty(t, c.Errors)
	assert.Equal(t, "testuser", c.GetString("username"))
}

func TestAuthHandlerRejectsMissingHeader(t *testing.T) {
	m, _ := newTestAuth(t)

	c := runAuth(t, m, "")
	assert.True(t, c.IsAborted())
	require.NotEmpty(t, c.Errors)
	assert.Equal(t, cErr.UNAUTHORIZED, cErr.From(c.Errors.Last().Err).ErrorCode())
}

func TestAuthHandlerRejectsWrongScheme(t *testing.T) {
	m, _ := newTestAuth(t)

	c := runAuth(t, m, "Basic dXNlcjpwYXNz")
	assert.True(t, c.IsAborted())
	assert.NotEmpty(t, c.Errors)
}

func TestAuthHandlerRejectsTamperedToken(t *testing.T) {
	m, authService := newTestAuth(t)

	token, err := authService.IssueToken(t.Context(), "testuser")
	require.NoError(t, err)

	c := runAuth(t, m, "Bearer "+token.AccessToken+"x")
	assert.True(t, c.IsAborted())
	require.NotEmpty(t, c.Errors)
	assert.Equal(t, cErr.UNAUTHORIZED, cErr.From(c.Errors.Last().Err).ErrorCode())
}
