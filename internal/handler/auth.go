package handler

import (
	"roster/internal/dto"
	"roster/internal/pkg/response"
	"roster/internal/service"
	"roster/internal/telemetry"
	"roster/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Token 換發 bearer token
// @Summary 以帳號密碼換發 bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.TokenRequestDto true "帳號密碼"
// @Success 200 {object} dto.TokenResponseDto
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.TokenRequestDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.authService.Authenticate(ctx, req.Username, req.Password); err != nil {
		response.AbortWithError(c, err)
		return
	}

	token, err := h.authService.IssueToken(ctx, req.Username)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, token)
}
