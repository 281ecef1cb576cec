package fx

import (
	"showdown-stats/internal/api"
	"showdown-stats/internal/config"
	"showdown-stats/internal/logger"
	"showdown-stats/internal/render"
	"showdown-stats/internal/server"
	"showdown-stats/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream client
	fx.Provide(api.NewStatsClient),
	// svc
	fx.Provide(service.NewSnapshotService),
	// rendering
	fx.Provide(render.New),
	// server
	fx.Provide(server.NewViewerServer),
)
