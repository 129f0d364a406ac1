package repository

import (
	"errors"

	"github.com/google/wire"
)

// ErrNotInitialized 在連線建立前（或關閉後）呼叫任何操作時回傳。
// 屬於程式錯誤而非使用者錯誤，HTTP 層一律對應 500。
var ErrNotInitialized = errors.New("employee collection is not initialized")

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	employeeRepo *EmployeeRepository
}

func NewMongoDBRepository(
	employeeRepo *EmployeeRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		employeeRepo: employeeRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewEmployeeRepository,
	NewMongoDBRepository)
