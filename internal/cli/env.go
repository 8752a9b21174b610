package cli

import (
	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/quarter"
	"github.com/Flyrell/coursecal/internal/ratings"
	"go.uber.org/zap"
)

// envFile is read from the working directory when present.
const envFile = ".env"

// environment is everything a command needs from outside the process.
type environment struct {
	cfg      *app.Config
	prefs    *prefs.Prefs
	quarters *quarter.Calendar
	logger   *zap.Logger
}

func loadEnvironment(debug bool) (*environment, error) {
	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}

	p, err := prefs.Read(cfg.Home)
	if err != nil {
		return nil, err
	}

	quarters, err := quarter.Default().Load(cfg.QuartersPath)
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(debug || p.Debug || cfg.Environment == "development")
	logger.Debug("environment loaded",
		zap.String("home", cfg.Home),
		zap.String("quarters", cfg.QuartersPath),
		zap.Bool("ratingsConfigured", cfg.RatingsSource().Configured()))

	return &environment{cfg: cfg, prefs: p, quarters: quarters, logger: logger}, nil
}

// resolveHome returns the directory holding .coursecal/.
func resolveHome() (string, error) {
	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		return "", err
	}
	return cfg.Home, nil
}

// service builds an application service running with p.
func (e *environment) service(p prefs.Prefs) *app.Service {
	return app.NewService(app.Deps{
		Config:   e.cfg,
		Prefs:    &p,
		Quarters: e.quarters,
		Loader:   ratings.NewLoader(e.logger),
		Logger:   e.logger,
	})
}

func (e *environment) close() {
	_ = e.logger.Sync()
}
