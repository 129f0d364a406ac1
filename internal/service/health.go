package service

import (
	"context"
	"sync/atomic"
	"time"

	client "roster/internal/database/client"
)

// HealthService 提供 liveness/readiness 狀態。
// liveness 恆為 true（行程活著就算活）；readiness 以 MongoDB ping 為準。
type HealthService struct {
	mongoClient *client.MongoClient
	ready       atomic.Bool
}

func NewHealthService(mongoClient *client.MongoClient) *HealthService {
	s := &HealthService{mongoClient: mongoClient}
	s.ready.Store(true)
	return s
}

func (s *HealthService) Alive() bool {
	return true
}

// Ready 短超時 ping MongoDB；關機流程可先呼叫 MarkNotReady 讓 LB 摘除流量
func (s *HealthService) Ready(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.mongoClient.Client().Ping(ctx, nil) == nil
}

func (s *HealthService) MarkNotReady() {
	s.ready.Store(false)
}
