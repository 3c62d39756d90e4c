package bootstrap

import (
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

const (
	consoleTimeFormat = "15:04:05"
	logFileName       = "pptb.log"
)

// NewLogger builds the process logger from the logging section. When file
// logging is enabled, output is also written to a rotating file under the
// configured log directory (or the XDG state dir).
func NewLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" {
		lc.Format = "json"
		lc.TimeFormat = time.RFC3339
	} else {
		lc.TimeFormat = consoleTimeFormat
	}
	if cfg.MaxSizeMB > 0 {
		lc.MaxSizeMB = cfg.MaxSizeMB
	}

	if cfg.EnableFileLog {
		dir := cfg.LogDir
		if dir == "" {
			if logDir, err := config.GetLogDir(); err == nil {
				dir = logDir
			}
		}
		if dir != "" {
			lc.FilePath = filepath.Join(dir, logFileName)
		}
	}

	return logging.New(lc)
}
