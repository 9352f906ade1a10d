package app

import (
	"go.uber.org/fx"

	"vigil/internal/app/cli"
	"vigil/internal/app/monitor"
	"vigil/internal/app/printer"
	"vigil/internal/app/stream"
	"vigil/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	monitor.Module,
	printer.Module,
	stream.Module,
	logger.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
