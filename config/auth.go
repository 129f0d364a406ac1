package config

type Auth struct {
	// JWT 簽章密鑰
	SecretKey string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	// 簽章演算法（HS256 / HS384 / HS512）
	Algorithm string `mapstructure:"ALGORITHM" json:"algorithm" yaml:"algorithm"`
	// Token 有效期（分鐘）
	ExpireMinutes int `mapstructure:"EXPIRE_MINUTES" json:"expire_minutes" yaml:"expire_minutes"`
	// 操作員帳號與 bcrypt 密碼雜湊
	Username     string `mapstructure:"USERNAME" json:"username" yaml:"username"`
	PasswordHash string `mapstructure:"PASSWORD_HASH" json:"password_hash" yaml:"password_hash"`
	// /auth/token 限流（每個 IP 在視窗內的次數；0 表示關閉）
	TokenRateLimit  int   `mapstructure:"TOKEN_RATE_LIMIT" json:"token_rate_limit" yaml:"token_rate_limit"`
	TokenRateWindow int64 `mapstructure:"TOKEN_RATE_WINDOW" json:"token_rate_window" yaml:"token_rate_window"`
}

func (a Auth) SigningAlgorithm() string {
	if a.Algorithm != "" {
		return a.Algorithm
	}
	return "HS256"
}

func (a Auth) ExpireDurationMinutes() int {
	if a.ExpireMinutes > 0 {
		return a.ExpireMinutes
	}
	return 30
}
