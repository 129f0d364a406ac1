package core

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type RedisKey string
type FluentdSubTag string

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyTokenRateLimit RedisKey = "token_rate_limit" // /auth/token 限流計數
	RedisKeyServerName     RedisKey = "roster"           // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

// ListOptions 員工列表查詢條件
type ListOptions struct {
	Department string `json:"department,omitempty"`
	Skip       int64  `json:"skip,omitempty"`
	Limit      int64  `json:"limit,omitempty"`
}

// SkillSearchOptions 技能搜尋條件（whole-element match）
type SkillSearchOptions struct {
	Skill           string `json:"skill"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
	Skip            int64  `json:"skip,omitempty"`
	Limit           int64  `json:"limit,omitempty"`
}
