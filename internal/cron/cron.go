package cron

import (
	"context"

	"roster/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger          *zap.Logger
	server          *cron.Cron
	employeeService *service.EmployeeService
}

// NewCron .
func NewCron(logger *zap.Logger, employeeService *service.EmployeeService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:          logger,
		server:          server,
		employeeService: employeeService,
	}
}

func (c *Cron) Run() error {
	// 每天 02:00 輸出各部門人數到 log，給營運當日報
	if _, err := c.server.AddFunc("0 0 2 * * *", c.reportHeadcount); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) reportHeadcount() {
	rows, err := c.employeeService.HeadcountByDepartment(context.Background())
	if err != nil {
		c.logger.Error("headcount report failed", zap.Error(err))
		return
	}
	for _, row := range rows {
		c.logger.Info("department headcount",
			zap.String("department", row.Department),
			zap.Int64("headcount", row.Headcount),
		)
	}
}
