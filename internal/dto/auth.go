package dto

// 換發 token
type TokenRequestDto struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponseDto struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 固定 "bearer"
	ExpiresIn   int64  `json:"expires_in"` // 秒
}
