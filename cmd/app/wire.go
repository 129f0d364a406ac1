//go:build wireinject
// +build wireinject

package main

import (
	"roster/config"
	"roster/internal/command"
	"roster/internal/cron"
	"roster/internal/database"
	"roster/internal/handler"
	"roster/internal/middleware"
	"roster/internal/router"
	"roster/internal/service"
	"roster/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(
		command.ProviderSet,
		database.ProviderSet,
		telemetry.ProviderSet,
	))
}
