package printer

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the printer package
var Module = fx.Options(
	fx.Provide(New),
)
