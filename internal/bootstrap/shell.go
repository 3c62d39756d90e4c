// Package bootstrap wires the tool shell: configuration, logging, local
// storage, dialog flows, the tool orchestrator and the tab strip.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/application/usecase"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/persistence/sqlite"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/component"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/controller"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/dialog"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/input"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// Host bundles the collaborators supplied by the desktop host process.
type Host struct {
	Windows     port.WindowProvider
	Connections port.ConnectionStore
	Modal       port.ModalHost
	Notifier    port.Notifier
	Catalog     port.ToolCatalog
}

func (h Host) validate() error {
	var missing []error
	if h.Windows == nil {
		missing = append(missing, errors.New("window provider"))
	}
	if h.Connections == nil {
		missing = append(missing, errors.New("connection store"))
	}
	if h.Modal == nil {
		missing = append(missing, errors.New("modal host"))
	}
	if h.Notifier == nil {
		missing = append(missing, errors.New("notifier"))
	}
	if h.Catalog == nil {
		missing = append(missing, errors.New("tool catalog"))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing host collaborators: %w", entity.ErrValidation, errors.Join(missing...))
	}
	return nil
}

// Options customise NewShell.
type Options struct {
	// Config defaults to the XDG config manager.
	Config *config.Manager
	// Database defaults to a lazily opened database at the configured path.
	Database port.DatabaseProvider
	// WatchConfig reloads shortcuts when the config file changes.
	WatchConfig bool
	// IDGenerator overrides instance id minting.
	IDGenerator entity.IDGenerator
}

// Shell is the composition root of the tool shell.
type Shell struct {
	ctx       context.Context
	cfg       *config.Config
	db        port.DatabaseProvider
	logCloser io.Closer

	bridge      *modal.Bridge
	detail      *dialog.ToolDetailFlow
	tools       *usecase.ManageToolsUseCase
	restore     *usecase.RestoreSessionUseCase
	consent     *usecase.ManageConsentUseCase
	connections *usecase.ManageConnectionsUseCase
	session     *usecase.SaveSessionUseCase
	tabs        *controller.TabController
	keys        *input.KeyboardHandler
	unbindTabs  func()

	closeOnce sync.Once
}

// NewShell builds the shell. ctx is the base context; its logger is
// replaced by one built from the configuration.
func NewShell(ctx context.Context, host Host, opts Options) (*Shell, error) {
	start := time.Now()
	if err := host.validate(); err != nil {
		return nil, err
	}

	mgr := opts.Config
	if mgr == nil {
		var err error
		if mgr, err = config.NewManager(); err != nil {
			return nil, err
		}
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCloser := NewLogger(cfg.Logging)
	ctx = logging.WithComponent(logging.WithContext(ctx, logger), "shell")
	log := logging.FromContext(ctx)

	db := opts.Database
	if db == nil {
		db = sqlite.NewLazyDB(cfg.Database.Path)
	}
	sessionRepo := sqlite.NewLazySessionStateRepository(db)
	consentRepo := sqlite.NewLazyConsentRepository(db)

	sizes := DialogSizes(cfg.Modal)
	bridge := modal.NewBridge(ctx, host.Modal)
	picker := dialog.NewConnectionSelectionFlow(bridge, host.Connections, host.Notifier, sizes)
	multiPicker := dialog.NewMultiConnectionSelectionFlow(bridge, host.Connections, host.Notifier, sizes)
	creator := dialog.NewAddConnectionFlow(bridge, host.Connections, host.Notifier, sizes)
	cspFlow := dialog.NewCSPConsentFlow(bridge, sizes)
	detail := dialog.NewToolDetailFlow(bridge, sizes)

	session := usecase.NewSaveSessionUseCase(sessionRepo)
	consent := usecase.NewManageConsentUseCase(consentRepo, cspFlow)

	tabs := controller.NewTabController(component.NewTabStrip())
	tools := usecase.NewManageToolsUseCase(usecase.ManageToolsDeps{
		Catalog:     host.Catalog,
		Connections: host.Connections,
		Windows:     host.Windows,
		View:        tabs,
		Notifier:    host.Notifier,
		Picker:      picker,
		MultiPicker: multiPicker,
		Consent:     consent,
		Session:     session,
		IDGenerator: opts.IDGenerator,
	})
	restore := usecase.NewRestoreSessionUseCase(usecase.RestoreSessionDeps{
		Session:     session,
		Catalog:     host.Catalog,
		Connections: host.Connections,
		Windows:     host.Windows,
		Consent:     consent,
		IDGenerator: opts.IDGenerator,
		Concurrency: cfg.Session.RestoreConcurrency,
	})
	connections := usecase.NewManageConnectionsUseCase(host.Connections, creator, host.Notifier, tools.ConnectionInUse)

	keys := input.NewKeyboardHandler(input.NewShortcutSet(ctx, cfg.Shortcuts), tools)

	s := &Shell{
		ctx:         ctx,
		cfg:         cfg,
		db:          db,
		logCloser:   logCloser,
		bridge:      bridge,
		detail:      detail,
		tools:       tools,
		restore:     restore,
		consent:     consent,
		connections: connections,
		session:     session,
		tabs:        tabs,
		keys:        keys,
	}
	s.unbindTabs = tabs.Bind(ctx, tools)

	mgr.OnConfigChange(func(c *config.Config) {
		log.Info().Msg("config changed, reloading shortcuts")
		keys.SetShortcuts(input.NewShortcutSet(ctx, c.Shortcuts))
	})
	if opts.WatchConfig {
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("failed to watch config file")
		}
	}

	log.Info().
		Dur("duration", time.Since(start)).
		Str("config_file", mgr.GetConfigFile()).
		Bool("auto_restore", cfg.Session.AutoRestore).
		Msg("shell initialized")
	return s, nil
}

// DialogSizes merges configured dialog sizes over the defaults. Unknown
// kinds and non-positive sizes are ignored.
func DialogSizes(cfg config.ModalConfig) dialog.Sizes {
	sizes := dialog.DefaultSizes()
	for kind, size := range cfg.Sizes {
		k := dialog.Kind(kind)
		if _, ok := sizes[k]; !ok || size.Width <= 0 || size.Height <= 0 {
			continue
		}
		sizes[k] = dialog.Size{Width: size.Width, Height: size.Height}
	}
	return sizes
}

// Start restores the previous session when auto restore is enabled. It
// returns nil output when restoring is disabled.
func (s *Shell) Start(ctx context.Context) (*usecase.RestoreOutput, error) {
	if !s.cfg.Session.AutoRestore {
		logging.FromContext(s.with(ctx)).Debug().Msg("auto restore disabled")
		return nil, nil
	}
	return s.RestoreSession(ctx)
}

// with carries the shell logger into a caller context.
func (s *Shell) with(ctx context.Context) context.Context {
	return logging.WithContext(ctx, *logging.FromContext(s.ctx))
}

// Config returns the configuration the shell was built with.
func (s *Shell) Config() *config.Config {
	return s.cfg
}

// Tabs returns the rendered tab strip.
func (s *Shell) Tabs() *component.TabStrip {
	return s.tabs.Strip()
}

// Tools exposes the orchestrator.
func (s *Shell) Tools() *usecase.ManageToolsUseCase {
	return s.tools
}

// LaunchTool opens a new instance of a tool.
func (s *Shell) LaunchTool(ctx context.Context, toolID entity.ToolID) (*entity.OpenToolInstance, error) {
	return s.tools.LaunchTool(s.with(ctx), toolID)
}

// SwitchToTool activates an instance.
func (s *Shell) SwitchToTool(ctx context.Context, id entity.InstanceID) error {
	return s.tools.SwitchToTool(s.with(ctx), id)
}

// CloseTool closes an unpinned instance.
func (s *Shell) CloseTool(ctx context.Context, id entity.InstanceID) error {
	return s.tools.CloseTool(s.with(ctx), id)
}

// CloseAllTools closes every instance, pinned ones included.
func (s *Shell) CloseAllTools(ctx context.Context) error {
	return s.tools.CloseAllTools(s.with(ctx))
}

// TogglePinTab flips the pin of an instance.
func (s *Shell) TogglePinTab(ctx context.Context, id entity.InstanceID) (bool, error) {
	return s.tools.TogglePinTab(s.with(ctx), id)
}

// SetToolConnection rebinds the primary connection of an instance.
func (s *Shell) SetToolConnection(ctx context.Context, id entity.InstanceID, connID entity.ConnectionID) error {
	return s.tools.SetToolConnection(s.with(ctx), id, connID)
}

// ChangeToolConnection asks for a new primary connection for an instance.
func (s *Shell) ChangeToolConnection(ctx context.Context, id entity.InstanceID) error {
	return s.tools.ChangeToolConnection(s.with(ctx), id)
}

// ShowToolDetail shows the detail dialog of a tool.
func (s *Shell) ShowToolDetail(ctx context.Context, toolID entity.ToolID) (port.ToolDetailAction, error) {
	return s.tools.ShowToolDetail(s.with(ctx), s.detail, toolID)
}

// AddConnection opens the add-connection dialog.
func (s *Shell) AddConnection(ctx context.Context) (*entity.Connection, error) {
	return s.connections.AddConnection(s.with(ctx))
}

// DeleteConnection removes a connection no open instance is bound to.
func (s *Shell) DeleteConnection(ctx context.Context, id entity.ConnectionID) error {
	return s.connections.DeleteConnection(s.with(ctx), id)
}

// RevokeConsent forgets the CSP consent of a tool.
func (s *Shell) RevokeConsent(ctx context.Context, toolID entity.ToolID) error {
	return s.consent.Revoke(s.with(ctx), toolID)
}

// SaveSession persists the open instances.
func (s *Shell) SaveSession(ctx context.Context) error {
	return s.tools.SaveSession(s.with(ctx))
}

// RestoreSession relaunches the stored session without dialogs.
func (s *Shell) RestoreSession(ctx context.Context) (*usecase.RestoreOutput, error) {
	return s.restore.Execute(s.with(ctx), s.tools)
}

// ClearSession deletes the stored session.
func (s *Shell) ClearSession(ctx context.Context) error {
	return s.session.Clear(s.with(ctx))
}

// HandleKey dispatches a key press to the tab shortcuts.
func (s *Shell) HandleKey(ctx context.Context, ev input.KeyEvent) (bool, error) {
	return s.keys.HandleKey(s.with(ctx), ev)
}

// Close shuts the shell down: windows are closed while the stored session
// is kept for the next start, then storage and the log sink are released.
func (s *Shell) Close(ctx context.Context) error {
	var err error
	s.closeOnce.Do(func() {
		ctx = s.with(ctx)
		log := logging.FromContext(ctx)

		if shutdownErr := s.tools.Shutdown(ctx); shutdownErr != nil {
			log.Warn().Err(shutdownErr).Msg("shutdown closed tools with errors")
			err = errors.Join(err, shutdownErr)
		}
		s.unbindTabs()
		s.bridge.Dispose()
		if dbErr := s.db.Close(); dbErr != nil {
			err = errors.Join(err, fmt.Errorf("close database: %w", dbErr))
		}
		log.Info().Msg("shell closed")
		if s.logCloser != nil {
			_ = s.logCloser.Close()
		}
	})
	return err
}
