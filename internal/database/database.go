package database

import (
	client "roster/internal/database/client"
	fluentdRepo "roster/internal/database/fluentd/repository"
	mongoRepo "roster/internal/database/mongodb/repository"
	redisRepo "roster/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
