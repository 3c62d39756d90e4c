package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// DefaultRestoreConcurrency bounds concurrent window materialisation.
const DefaultRestoreConcurrency = 4

// RestoreSessionDeps are the collaborators of RestoreSessionUseCase.
type RestoreSessionDeps struct {
	Session     *SaveSessionUseCase
	Catalog     port.ToolCatalog
	Connections port.ConnectionStore
	Windows     port.WindowProvider
	Consent     *ManageConsentUseCase
	IDGenerator entity.IDGenerator
	Concurrency int
}

// RestoreSessionUseCase relaunches the instances of the stored snapshot
// without showing any dialog. Pin state and both connection slots carry
// over per launch ordinal; instance ids are freshly minted.
type RestoreSessionUseCase struct {
	deps RestoreSessionDeps
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(deps RestoreSessionDeps) *RestoreSessionUseCase {
	if deps.IDGenerator == nil {
		deps.IDGenerator = NewInstanceID
	}
	if deps.Concurrency <= 0 {
		deps.Concurrency = DefaultRestoreConcurrency
	}
	return &RestoreSessionUseCase{deps: deps}
}

// SkippedTool is a snapshot entry that could not be relaunched.
type SkippedTool struct {
	ToolID entity.ToolID
	Reason string
}

// RestoreOutput reports what was relaunched.
type RestoreOutput struct {
	Restored []entity.InstanceID
	Skipped  []SkippedTool
	ActiveID entity.InstanceID
}

// Execute loads the snapshot and relaunches it into tools. A missing
// snapshot restores nothing and is not an error.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context, tools *ManageToolsUseCase) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	snap, err := uc.deps.Session.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := &RestoreOutput{Restored: []entity.InstanceID{}, Skipped: []SkippedTool{}}
	if snap == nil || len(snap.OpenTools) == 0 {
		log.Debug().Msg("no session to restore")
		return out, nil
	}

	plan := entity.PlanRestore(snap, uc.deps.IDGenerator)
	log.Info().Int("entries", len(plan.Entries)).Msg("restoring session")

	launched := make([]*entity.OpenToolInstance, len(plan.Entries))
	skipped := make([]string, len(plan.Entries))

	var g errgroup.Group
	g.SetLimit(uc.deps.Concurrency)
	for i, entry := range plan.Entries {
		g.Go(func() error {
			inst, reason := uc.relaunch(ctx, entry)
			launched[i] = inst
			skipped[i] = reason
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	restored := make([]*entity.OpenToolInstance, 0, len(launched))
	for i, inst := range launched {
		if inst == nil {
			out.Skipped = append(out.Skipped, SkippedTool{ToolID: plan.Entries[i].ToolID, Reason: skipped[i]})
			continue
		}
		restored = append(restored, inst)
		out.Restored = append(out.Restored, inst.InstanceID)
	}

	out.ActiveID = tools.adoptRestored(ctx, restored, plan.ActiveInstanceID)

	if len(out.Skipped) > 0 {
		names := make([]string, 0, len(out.Skipped))
		for _, s := range out.Skipped {
			names = append(names, string(s.ToolID))
		}
		tools.notify(ctx, "Session Partially Restored",
			fmt.Sprintf("Could not reopen: %s", strings.Join(names, ", ")), port.NotificationWarning)
	}

	log.Info().
		Int("restored", len(out.Restored)).
		Int("skipped", len(out.Skipped)).
		Str("active_instance_id", string(out.ActiveID)).
		Msg("session restored")
	return out, nil
}

// relaunch materialises one entry. It returns the instance, or nil and the
// reason it was skipped.
func (uc *RestoreSessionUseCase) relaunch(ctx context.Context, entry entity.RestoreEntry) (*entity.OpenToolInstance, string) {
	ctx = logging.WithToolID(logging.WithInstanceID(ctx, string(entry.InstanceID)), string(entry.ToolID))
	log := logging.FromContext(ctx)

	skip := func(reason string, err error) (*entity.OpenToolInstance, string) {
		log.Warn().Err(err).Str("reason", reason).Msg("skipping tool on restore")
		return nil, reason
	}

	tool, err := uc.deps.Catalog.GetTool(ctx, entry.ToolID)
	if err != nil {
		return skip("tool metadata unavailable", err)
	}
	if tool == nil {
		return skip("tool is no longer installed", nil)
	}

	if uc.deps.Consent != nil {
		granted, err := uc.deps.Consent.IsGranted(ctx, tool)
		if err != nil {
			return skip("consent unavailable", err)
		}
		if !granted {
			return skip("consent was revoked", nil)
		}
	}

	if entry.Primary == "" {
		return skip("no connection was bound", nil)
	}
	if err := uc.refresh(ctx, entry.Primary); err != nil {
		return skip("primary connection unavailable", err)
	}

	secondary := entry.Secondary
	if secondary != "" {
		if err := uc.refresh(ctx, secondary); err != nil {
			if tool.SecondaryRequired() {
				return skip("secondary connection unavailable", err)
			}
			log.Warn().Err(err).Msg("dropping unavailable optional secondary connection")
			secondary = ""
		}
	} else if tool.SecondaryRequired() {
		return skip("secondary connection missing", nil)
	}

	ok, err := uc.deps.Windows.LaunchToolWindow(ctx, entry.InstanceID, tool, entry.Primary, secondary)
	if err != nil {
		return skip("window launch failed", err)
	}
	if !ok {
		return skip("window launch refused", nil)
	}

	inst := entity.NewOpenToolInstance(entry.InstanceID, tool, entry.Primary, secondary)
	inst.IsPinned = entry.IsPinned
	log.Debug().Str("previous_id", string(entry.PreviousID)).Msg("tool relaunched")
	return inst, ""
}

// refresh checks that a connection still exists and renews its token.
func (uc *RestoreSessionUseCase) refresh(ctx context.Context, id entity.ConnectionID) error {
	conn, err := uc.deps.Connections.Get(ctx, id)
	if err != nil {
		return err
	}
	if conn == nil {
		return fmt.Errorf("connection %s: %w", id, entity.ErrNotFound)
	}
	if err := uc.deps.Connections.RefreshToken(ctx, id); err != nil {
		return fmt.Errorf("refresh token for %s: %w", id, err)
	}
	return nil
}

// adoptRestored registers relaunched instances in order and activates the
// previously active one, or the last one. It returns the active id.
func (uc *ManageToolsUseCase) adoptRestored(ctx context.Context, restored []*entity.OpenToolInstance, active entity.InstanceID) entity.InstanceID {
	if len(restored) == 0 {
		return ""
	}

	uc.mu.Lock()
	for _, inst := range restored {
		inst.DisplayNumber = uc.registry.NextDisplayNumber(inst.ToolID)
		inst.LaunchedAt = uc.now()
		if !uc.registry.Add(inst) {
			continue
		}
		uc.deps.View.AddTab(ctx, port.TabModel{InstanceID: inst.InstanceID, Label: inst.Label(), Pinned: inst.IsPinned})
	}
	if !uc.registry.Has(active) {
		active = uc.registry.Last()
	}
	uc.mu.Unlock()

	if err := uc.SwitchToTool(ctx, active); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to activate restored tool")
	}
	return active
}
