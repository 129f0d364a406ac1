package service

import (
	"testing"
	"time"

	"roster/config"
	"roster/internal/core"
	cErr "roster/internal/pkg/error"
	"roster/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, mutate func(*config.Auth)) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := &config.Configuration{}
	conf.Auth = config.Auth{
		SecretKey:    "test-signing-key",
		Username:     "testuser",
		PasswordHash: string(hash),
	}
	if mutate != nil {
		mutate(&conf.Auth)
	}

	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	return NewAuthService(trace, conf)
}

func TestAuthenticate(t *testing.T) {
	s := newTestAuthService(t, nil)

	assert.NoError(t, s.Authenticate(t.Context(), "testuser", "s3cret"))

	err := s.Authenticate(t.Context(), "testuser", "wrong")
	require.Error(t, err)
	assert.Equal(t, cErr.UNAUTHORIZED, cErr.From(err).ErrorCode())

	err = s.Authenticate(t.Context(), "nobody", "s3cret")
	require.Error(t, err)
	assert.Equal(t, cErr.UNAUTHORIZED, cErr.From(err).ErrorCode())
}

func TestIssueAndVerifyToken(t *testing.T) {
	s := newTestAuthService(t, nil)

	resp, err := s.IssueToken(t.Context(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(30*60), resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := s.VerifyToken(t.Context(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "testuser", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	s := newTestAuthService(t, nil)

	_, err := s.VerifyToken(t.Context(), "not.a.token")
	require.Error(t, err)
	assert.Equal(t, cErr.UNAUTHORIZED, cErr.From(err).ErrorCode())
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	issuer := newTestAuthService(t, nil)
	verifier := newTestAuthService(t, func(a *config.Auth) { a.SecretKey = "another-key" })

	resp, err := issuer.IssueToken(t.Context(), "testuser")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(t.Context(), resp.AccessToken)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	s := newTestAuthService(t, nil)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, core.Claims{
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "testuser",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = s.VerifyToken(t.Context(), signed)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsForeignAlgorithm(t *testing.T) {
	s := newTestAuthService(t, nil)

	// HS384 簽出的 token 不應被 HS256 設定接受
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS384, core.Claims{
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "testuser",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := foreign.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = s.VerifyToken(t.Context(), signed)
	assert.Error(t, err)
}
