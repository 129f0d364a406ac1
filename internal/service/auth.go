package service

import (
	"context"
	"fmt"
	"time"

	"roster/config"
	"roster/internal/core"
	"roster/internal/dto"
	cErr "roster/internal/pkg/error"
	"roster/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 負責單一測試帳號的密碼驗證與 HS256 JWT 簽發/驗證
type AuthService struct {
	trace *telemetry.Trace
	conf  *config.Configuration
}

func NewAuthService(trace *telemetry.Trace, conf *config.Configuration) *AuthService {
	return &AuthService{trace: trace, conf: conf}
}

// Authenticate 比對帳號與 bcrypt 雜湊；失敗一律回 Unauthorized，不區分原因
func (s *AuthService) Authenticate(ctx context.Context, username, password string) error {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if username != s.conf.Auth.Username {
		return cErr.Unauthorized("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.conf.Auth.PasswordHash), []byte(password)); err != nil {
		return cErr.Unauthorized("invalid username or password")
	}
	return nil
}

// IssueToken 簽發 bearer token，sub 為帳號名稱
func (s *AuthService) IssueToken(ctx context.Context, username string) (*dto.TokenResponseDto, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	expire := time.Duration(s.conf.Auth.ExpireDurationMinutes()) * time.Minute
	now := time.Now().UTC()

	claims := core.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	method := jwt.GetSigningMethod(s.conf.Auth.SigningAlgorithm())
	if method == nil {
		return nil, cErr.InternalServer(fmt.Sprintf("unsupported signing algorithm %s", s.conf.Auth.SigningAlgorithm()))
	}
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(s.conf.Auth.SecretKey))
	if err != nil {
		return nil, cErr.InternalServer("failed to sign token")
	}

	return &dto.TokenResponseDto{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(expire.Seconds()),
	}, nil
}

// VerifyToken 驗證簽章與效期；演算法必須與設定一致，防止 alg 混淆
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*core.Claims, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.conf.Auth.SigningAlgorithm() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(s.conf.Auth.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, cErr.Unauthorized("invalid or expired token")
	}
	return claims, nil
}
