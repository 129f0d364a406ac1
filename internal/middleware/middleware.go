package middleware

import (
	"strings"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewLogger,
	NewCors,
	NewRecovery,
	NewResponse,
	NewAuth,
	NewRateLimit,
)

// skipEnvelope 判斷是否為不走統一回應封裝/追蹤的路徑
func skipEnvelope(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/swagger") ||
		strings.HasPrefix(endpoint, "/metrics") ||
		strings.HasPrefix(endpoint, "/version") ||
		strings.HasPrefix(endpoint, "/health") ||
		strings.HasPrefix(endpoint, "/debug")
}
