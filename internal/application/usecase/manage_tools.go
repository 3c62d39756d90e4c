// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// Notification titles shown by the tool orchestrator.
const (
	TitleLaunchCancelled = "Tool Launch Cancelled"
	TitleLaunchFailed    = "Tool Launch Failed"
	TitleLaunchDeclined  = "Tool Launch Declined"
	TitleToolNotFound    = "Tool Not Found"
	TitleToolPinned      = "Tool Pinned"
	TitleConnection      = "Connection Not Found"
	TitleConnectionFail  = "Connection Change Failed"
)

// NewInstanceID mints a fresh instance id.
func NewInstanceID() string {
	return uuid.NewString()
}

// ManageToolsDeps are the collaborators of ManageToolsUseCase.
type ManageToolsDeps struct {
	Catalog     port.ToolCatalog
	Connections port.ConnectionStore
	Windows     port.WindowProvider
	View        port.ShellView
	Notifier    port.Notifier
	Picker      port.ConnectionPicker
	MultiPicker port.MultiConnectionPicker
	Consent     *ManageConsentUseCase
	Session     *SaveSessionUseCase
	// IDGenerator defaults to NewInstanceID.
	IDGenerator entity.IDGenerator
}

// ManageToolsUseCase owns the instance registry and orchestrates launching,
// switching, closing and rebinding tool instances. It is the registry's
// single writer. The mutex is never held across a call to the window
// provider, the connection store, a dialog or the session store; after each
// such call the instance is looked up again before it is mutated. ShellView
// calls are made under the mutex and must not call back into the use case.
type ManageToolsUseCase struct {
	deps ManageToolsDeps
	now  func() time.Time

	mu       sync.Mutex
	registry *entity.InstanceRegistry
}

// NewManageToolsUseCase creates the orchestrator with an empty registry.
func NewManageToolsUseCase(deps ManageToolsDeps) *ManageToolsUseCase {
	if deps.IDGenerator == nil {
		deps.IDGenerator = NewInstanceID
	}
	return &ManageToolsUseCase{
		deps:     deps,
		now:      time.Now,
		registry: entity.NewInstanceRegistry(),
	}
}

// Instances returns a copy of the open instances in insertion order.
func (uc *ManageToolsUseCase) Instances() []entity.OpenToolInstance {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.OpenToolInstance, 0, uc.registry.Count())
	for _, inst := range uc.registry.Instances() {
		out = append(out, *inst)
	}
	return out
}

// ActiveInstanceID returns the active instance id, or "".
func (uc *ManageToolsUseCase) ActiveInstanceID() entity.InstanceID {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.registry.ActiveID
}

// Count returns the number of open instances.
func (uc *ManageToolsUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.registry.Count()
}

// ConnectionInUse reports whether any open instance is bound to id.
func (uc *ManageToolsUseCase) ConnectionInUse(id entity.ConnectionID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, inst := range uc.registry.Instances() {
		if inst.PrimaryConnectionID == id || inst.SecondaryConnectionID == id {
			return true
		}
	}
	return false
}

// LaunchTool opens a new instance of toolID. It asks for connections, then
// for CSP consent when required, materialises the window and registers the
// instance. Every failure is reported as one notification and returned; no
// instance is created unless every step succeeded.
func (uc *ManageToolsUseCase) LaunchTool(ctx context.Context, toolID entity.ToolID) (*entity.OpenToolInstance, error) {
	instanceID := entity.InstanceID(uc.deps.IDGenerator())
	ctx = logging.WithToolID(logging.WithInstanceID(ctx, string(instanceID)), string(toolID))
	log := logging.FromContext(ctx)
	log.Debug().Msg("launching tool")

	tool, err := uc.deps.Catalog.GetTool(ctx, toolID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load tool metadata")
		uc.notify(ctx, TitleLaunchFailed, err.Error(), port.NotificationError)
		return nil, fmt.Errorf("get tool %s: %w", toolID, err)
	}
	if tool == nil {
		log.Warn().Msg("tool not installed")
		uc.notify(ctx, TitleToolNotFound, fmt.Sprintf("Tool %q is not installed.", toolID), port.NotificationError)
		return nil, fmt.Errorf("tool %s: %w", toolID, entity.ErrNotFound)
	}

	pair, err := uc.pickConnections(ctx, tool)
	if err != nil {
		return nil, uc.launchAborted(ctx, tool, err)
	}

	binding, err := uc.resolveBinding(ctx, tool, pair)
	if err != nil {
		return nil, uc.launchAborted(ctx, tool, err)
	}
	if !binding.Usable() {
		err := fmt.Errorf("%w: connection is not authenticated", entity.ErrOperationFailed)
		return nil, uc.launchAborted(ctx, tool, err)
	}

	if tool.NeedsCSPConsent() && uc.deps.Consent != nil {
		if err := uc.deps.Consent.Ensure(ctx, tool); err != nil {
			return nil, uc.launchAborted(ctx, tool, err)
		}
	}

	ok, err := uc.deps.Windows.LaunchToolWindow(ctx, instanceID, tool, pair.Primary, pair.Secondary)
	if err == nil && !ok {
		err = fmt.Errorf("%w: window provider refused to open the tool", entity.ErrOperationFailed)
	}
	if err != nil {
		return nil, uc.launchAborted(ctx, tool, fmt.Errorf("launch tool window: %w", err))
	}

	inst := entity.NewOpenToolInstance(instanceID, tool, pair.Primary, pair.Secondary)
	inst.LaunchedAt = uc.now()

	uc.mu.Lock()
	inst.DisplayNumber = uc.registry.NextDisplayNumber(tool.ID)
	uc.registry.Add(inst)
	uc.deps.View.AddTab(ctx, port.TabModel{InstanceID: inst.InstanceID, Label: inst.Label(), Pinned: inst.IsPinned})
	launched := *inst
	uc.mu.Unlock()

	log.Info().
		Int("display_number", launched.DisplayNumber).
		Str("primary", string(pair.Primary)).
		Str("secondary", string(pair.Secondary)).
		Msg("tool launched")

	if err := uc.SwitchToTool(ctx, instanceID); err != nil {
		log.Warn().Err(err).Msg("failed to switch to launched tool")
	}
	return &launched, nil
}

func (uc *ManageToolsUseCase) pickConnections(ctx context.Context, tool *entity.Tool) (port.ConnectionPair, error) {
	if tool.RequiresMultiConnection() {
		return uc.deps.MultiPicker.PickConnections(ctx, tool)
	}
	id, err := uc.deps.Picker.PickConnection(ctx, "")
	if err != nil {
		return port.ConnectionPair{}, err
	}
	return port.ConnectionPair{Primary: id}, nil
}

func (uc *ManageToolsUseCase) resolveBinding(ctx context.Context, tool *entity.Tool, pair port.ConnectionPair) (entity.ConnectionBinding, error) {
	conns, err := uc.deps.Connections.GetAll(ctx)
	if err != nil {
		return entity.ConnectionBinding{}, fmt.Errorf("list connections: %w", err)
	}
	for _, id := range []entity.ConnectionID{pair.Primary, pair.Secondary} {
		if id != "" && entity.FindConnection(conns, id) == nil {
			return entity.ConnectionBinding{}, fmt.Errorf("connection %s: %w", id, entity.ErrNotFound)
		}
	}
	required := tool.SecondaryRequired()
	return entity.ResolveBinding(pair.Primary, pair.Secondary, required, conns, uc.now()), nil
}

// launchAborted converts a launch failure into its notification.
func (uc *ManageToolsUseCase) launchAborted(ctx context.Context, tool *entity.Tool, err error) error {
	log := logging.FromContext(ctx)
	switch {
	case errors.Is(err, entity.ErrUserCancelled):
		log.Info().Msg("tool launch cancelled")
		uc.notify(ctx, TitleLaunchCancelled, fmt.Sprintf("Launching %s was cancelled.", tool.Name), port.NotificationInfo)
	case errors.Is(err, entity.ErrConsentDeclined):
		log.Info().Msg("tool launch declined")
		uc.notify(ctx, TitleLaunchDeclined, fmt.Sprintf("%s was not launched because its permissions were declined.", tool.Name), port.NotificationWarning)
	default:
		log.Error().Err(err).Msg("tool launch failed")
		uc.notify(ctx, TitleLaunchFailed, err.Error(), port.NotificationError)
	}
	return fmt.Errorf("launch %s: %w", tool.ID, err)
}

// SwitchToTool activates an instance. Unknown ids are ignored.
func (uc *ManageToolsUseCase) SwitchToTool(ctx context.Context, id entity.InstanceID) error {
	ctx = logging.WithInstanceID(ctx, string(id))
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if !uc.registry.Has(id) {
		uc.mu.Unlock()
		log.Debug().Msg("switch to unknown instance ignored")
		return nil
	}
	previous := uc.registry.ActiveID
	uc.registry.SetActive(id)
	uc.deps.View.ActivateTab(ctx, id)
	uc.mu.Unlock()

	var switchErr error
	if err := uc.deps.Windows.SwitchToolWindow(ctx, id); err != nil {
		log.Warn().Err(err).Msg("failed to bring tool window to front")
		switchErr = fmt.Errorf("switch tool window: %w", err)
	}

	uc.refreshDecoration(ctx, id)
	uc.saveSession(ctx)

	log.Info().Str("from", string(previous)).Msg("switched tool")
	return switchErr
}

// CloseTool closes an instance. Pinned instances are refused with a warning
// notification and no error.
func (uc *ManageToolsUseCase) CloseTool(ctx context.Context, id entity.InstanceID) error {
	ctx = logging.WithInstanceID(ctx, string(id))
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	inst := uc.registry.Find(id)
	if inst == nil {
		uc.mu.Unlock()
		log.Debug().Msg("close of unknown instance ignored")
		return nil
	}
	if inst.IsPinned {
		label := inst.Label()
		uc.mu.Unlock()
		log.Info().Msg("refusing to close pinned tool")
		uc.notify(ctx, TitleToolPinned, fmt.Sprintf("Unpin %s before closing it.", label), port.NotificationWarning)
		return nil
	}
	wasActive := uc.registry.ActiveID == id
	uc.deps.View.RemoveTab(ctx, id)
	uc.registry.Remove(id)
	next := uc.registry.ActiveID
	if wasActive && next == "" {
		uc.deps.View.ShowHome(ctx)
	}
	uc.mu.Unlock()

	if err := uc.deps.Windows.CloseToolWindow(ctx, id); err != nil {
		log.Warn().Err(err).Msg("failed to close tool window")
	}

	log.Info().Str("next_active", string(next)).Msg("tool closed")

	if wasActive && next != "" {
		return uc.SwitchToTool(ctx, next)
	}
	uc.saveSession(ctx)
	return nil
}

// TogglePinTab flips the pinned flag of an instance and returns the new state.
func (uc *ManageToolsUseCase) TogglePinTab(ctx context.Context, id entity.InstanceID) (bool, error) {
	uc.mu.Lock()
	inst := uc.registry.Find(id)
	if inst == nil {
		uc.mu.Unlock()
		return false, fmt.Errorf("instance %s: %w", id, entity.ErrNotFound)
	}
	inst.IsPinned = !inst.IsPinned
	pinned := inst.IsPinned
	uc.deps.View.SetPinned(ctx, id, pinned)
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("instance_id", string(id)).
		Bool("pinned", pinned).
		Msg("tool pin toggled")
	uc.saveSession(ctx)
	return pinned, nil
}

// SetToolConnection rebinds the primary connection of an instance.
func (uc *ManageToolsUseCase) SetToolConnection(ctx context.Context, id entity.InstanceID, connID entity.ConnectionID) error {
	ctx = logging.WithInstanceID(ctx, string(id))
	log := logging.FromContext(ctx).With().Str("connection_id", string(connID)).Logger()

	if !uc.has(id) {
		return fmt.Errorf("instance %s: %w", id, entity.ErrNotFound)
	}

	conn, err := uc.deps.Connections.Get(ctx, connID)
	if err != nil {
		uc.notify(ctx, TitleConnectionFail, err.Error(), port.NotificationError)
		return fmt.Errorf("get connection %s: %w", connID, err)
	}
	if conn == nil {
		uc.notify(ctx, TitleConnection, fmt.Sprintf("Connection %q no longer exists.", connID), port.NotificationError)
		return fmt.Errorf("connection %s: %w", connID, entity.ErrNotFound)
	}

	if err := uc.deps.Windows.UpdateToolInstanceConnection(ctx, id, connID); err != nil {
		log.Error().Err(err).Msg("failed to rebind tool window")
		uc.notify(ctx, TitleConnectionFail, err.Error(), port.NotificationError)
		return fmt.Errorf("update tool connection: %w", err)
	}

	uc.mu.Lock()
	inst := uc.registry.Find(id)
	if inst == nil {
		uc.mu.Unlock()
		log.Debug().Msg("instance closed while rebinding")
		return fmt.Errorf("instance %s: %w", id, entity.ErrNotFound)
	}
	inst.PrimaryConnectionID = connID
	isActive := uc.registry.ActiveID == id
	uc.mu.Unlock()

	log.Info().Msg("tool connection changed")
	if isActive {
		uc.refreshDecoration(ctx, id)
	}
	uc.saveSession(ctx)
	return nil
}

// ChangeToolConnection asks for a new primary connection with the current
// one highlighted, then rebinds the instance.
func (uc *ManageToolsUseCase) ChangeToolConnection(ctx context.Context, id entity.InstanceID) error {
	uc.mu.Lock()
	inst := uc.registry.Find(id)
	var current entity.ConnectionID
	if inst != nil {
		current = inst.PrimaryConnectionID
	}
	uc.mu.Unlock()
	if inst == nil {
		return fmt.Errorf("instance %s: %w", id, entity.ErrNotFound)
	}

	connID, err := uc.deps.Picker.PickConnection(ctx, current)
	if err != nil {
		if errors.Is(err, entity.ErrUserCancelled) {
			logging.FromContext(ctx).Debug().Msg("connection change cancelled")
		}
		return err
	}
	if connID == current {
		return nil
	}
	return uc.SetToolConnection(ctx, id, connID)
}

// SwitchNext activates the next instance in insertion order, wrapping around.
func (uc *ManageToolsUseCase) SwitchNext(ctx context.Context) error {
	return uc.cycle(ctx, 1)
}

// SwitchPrevious activates the previous instance, wrapping around.
func (uc *ManageToolsUseCase) SwitchPrevious(ctx context.Context) error {
	return uc.cycle(ctx, -1)
}

func (uc *ManageToolsUseCase) cycle(ctx context.Context, direction int) error {
	uc.mu.Lock()
	id := uc.registry.Next(direction)
	uc.mu.Unlock()
	if id == "" {
		return nil
	}
	return uc.SwitchToTool(ctx, id)
}

// CloseActive closes the active instance.
func (uc *ManageToolsUseCase) CloseActive(ctx context.Context) error {
	id := uc.ActiveInstanceID()
	if id == "" {
		return nil
	}
	return uc.CloseTool(ctx, id)
}

// CloseAllTools closes every instance, pinned ones included, and saves the
// now empty session.
func (uc *ManageToolsUseCase) CloseAllTools(ctx context.Context) error {
	err := uc.closeAll(ctx)
	uc.saveSession(ctx)
	return err
}

// Shutdown saves the session, then closes every window without persisting
// the empty registry so the session can be restored on next start.
func (uc *ManageToolsUseCase) Shutdown(ctx context.Context) error {
	saveErr := uc.SaveSession(ctx)
	return errors.Join(saveErr, uc.closeAll(ctx))
}

func (uc *ManageToolsUseCase) closeAll(ctx context.Context) error {
	uc.mu.Lock()
	ids := uc.registry.Keys()
	for _, id := range ids {
		uc.deps.View.RemoveTab(ctx, id)
	}
	uc.registry.Clear()
	uc.deps.View.ShowHome(ctx)
	uc.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := uc.deps.Windows.CloseToolWindow(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("close tool window %s: %w", id, err))
		}
	}
	logging.FromContext(ctx).Info().Int("closed", len(ids)).Msg("all tools closed")
	return errors.Join(errs...)
}

// SaveSession persists the current registry.
func (uc *ManageToolsUseCase) SaveSession(ctx context.Context) error {
	if uc.deps.Session == nil {
		return nil
	}
	uc.mu.Lock()
	snap := entity.SnapshotFromRegistry(uc.registry)
	uc.mu.Unlock()
	return uc.deps.Session.Save(ctx, snap)
}

func (uc *ManageToolsUseCase) saveSession(ctx context.Context) {
	if err := uc.SaveSession(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save session")
	}
}

func (uc *ManageToolsUseCase) has(id entity.InstanceID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.registry.Has(id)
}

func (uc *ManageToolsUseCase) notify(ctx context.Context, title, body string, typ port.NotificationType) {
	if uc.deps.Notifier == nil {
		return
	}
	uc.deps.Notifier.Show(ctx, port.Notification{Title: title, Body: body, Type: typ})
}
