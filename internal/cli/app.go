// Package cli provides the pptb command-line surface for inspecting the
// state the desktop shell persists between runs.
package cli

import (
	"context"
	"io"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/usecase"
	"github.com/PowerPlatformToolBox/desktop-app/internal/bootstrap"
	"github.com/PowerPlatformToolBox/desktop-app/internal/cli/styles"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/persistence/sqlite"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme

	// Use cases
	Sessions *usecase.SaveSessionUseCase
	Consents *usecase.ManageConsentUseCase

	db        *sqlite.LazyDB
	ctx       context.Context
	logCloser io.Closer
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use so commands that never touch it stay cheap.
func NewApp() (*App, error) {
	cfg, configFile := loadConfig()

	// CLI output goes to stdout; logs stay quiet unless asked for.
	logCfg := cfg.Logging
	if logCfg.Level == "info" {
		logCfg.Level = "warn"
	}
	logger, logCloser := bootstrap.NewLogger(logCfg)
	logger = logger.With().Str("component", "cli").Logger()
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", db.Path()).Str("config_file", configFile).Msg("cli initialized")

	return &App{
		Config:     cfg,
		ConfigFile: configFile,
		Theme:      styles.NewTheme(),
		Sessions:   usecase.NewSaveSessionUseCase(sqlite.NewLazySessionStateRepository(db)),
		Consents:   usecase.NewManageConsentUseCase(sqlite.NewLazyConsentRepository(db), nil),
		db:         db,
		ctx:        ctx,
		logCloser:  logCloser,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file cannot be read.
func loadConfig() (*config.Config, string) {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig(), ""
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), mgr.GetConfigFile()
	}
	return mgr.Get(), mgr.GetConfigFile()
}
