package app

import (
	"log/slog"

	"tubemap.nanjingmetro.org/internal/appconf"
	"tubemap.nanjingmetro.org/internal/tube"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the runtime configuration, a structured logger, and
// the metro network manager that answers every map query.
type Application struct {
	Config     appconf.Config
	TubeConfig tube.Config
	Logger     *slog.Logger
	Metro      *tube.Manager
}
