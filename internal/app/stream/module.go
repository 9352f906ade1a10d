package stream

import (
	"go.uber.org/fx"

	"vigil/internal/config"
)

// Module provides the fx dependency injection options for the stream package
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config) *Buffer { return NewBuffer(cfg.Stream.Buffer) },
		func(cfg *config.Config, buf *Buffer) Feed { return NewFeed(buf, cfg.Stream.Flush) },
	),
)
