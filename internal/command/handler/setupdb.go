package handler

import (
	"context"
	"time"

	"roster/internal/database/mongodb/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type SetupDBHandler struct {
	logger       *zap.Logger
	employeeRepo *repository.EmployeeRepository
}

func NewSetupDBHandler(logger *zap.Logger, employeeRepo *repository.EmployeeRepository) *SetupDBHandler {
	return &SetupDBHandler{
		logger:       logger,
		employeeRepo: employeeRepo,
	}
}

// Run 建立索引並安裝 $jsonSchema 驗證器（冪等，可重複執行）
func (handler *SetupDBHandler) Run(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := handler.employeeRepo.EnsureIndexes(ctx); err != nil {
		handler.logger.Error("failed to ensure indexes", zap.Error(err))
		cmd.PrintErrln("setup-db: ensure indexes failed:", err)
		return
	}
	cmd.Println("setup-db: indexes ensured")

	if err := handler.employeeRepo.EnsureValidator(ctx); err != nil {
		handler.logger.Error("failed to install collection validator", zap.Error(err))
		cmd.PrintErrln("setup-db: install validator failed:", err)
		return
	}
	cmd.Println("setup-db: collection validator installed")
}
