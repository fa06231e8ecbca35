//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/vitalink/wellness-backend/internal/bootstrap"
	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
	"github.com/vitalink/wellness-backend/internal/infra/config"
	httpiface "github.com/vitalink/wellness-backend/internal/interface/http"
	"github.com/vitalink/wellness-backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideTipsConfig,
		provideGenerator,
		providePostgresPool,
		provideTipCache,
		provideSnapshotSource,
		provideUserDirectory,
		provideScheduler,
		dailytips.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
