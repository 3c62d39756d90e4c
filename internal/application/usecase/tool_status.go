package usecase

import (
	"context"
	"fmt"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/decoration"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// StatusText is the footer text of an instance, e.g.
// "Data Explorer is connected to: Contoso (Dev)".
func StatusText(inst *entity.OpenToolInstance, primary, secondary *entity.Connection) string {
	name := inst.Label()
	if primary == nil {
		return name + " is not connected"
	}
	text := fmt.Sprintf("%s is connected to: %s", name, primary.DisplayName())
	if secondary != nil {
		text += " and " + secondary.DisplayName()
	}
	return text
}

// DecorationFor computes the tier styling of an instance from its bound
// connections.
func DecorationFor(primary, secondary *entity.Connection) decoration.Decoration {
	if primary == nil {
		return decoration.Decoration{}
	}
	var secondaryEnv entity.Environment
	if secondary != nil {
		secondaryEnv = secondary.Environment
	}
	return decoration.Compute(primary.Environment, secondaryEnv)
}

// refreshDecoration recomputes styling and status for id. Only the active
// instance is decorated.
func (uc *ManageToolsUseCase) refreshDecoration(ctx context.Context, id entity.InstanceID) {
	log := logging.FromContext(ctx)

	conns, err := uc.deps.Connections.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list connections for decoration")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	inst := uc.registry.Find(id)
	if inst == nil || uc.registry.ActiveID != id {
		log.Debug().Msg("skipping decoration of inactive instance")
		return
	}
	primary := entity.FindConnection(conns, inst.PrimaryConnectionID)
	var secondary *entity.Connection
	if inst.HasSecondary() {
		secondary = entity.FindConnection(conns, inst.SecondaryConnectionID)
	}
	d := DecorationFor(primary, secondary)
	uc.deps.View.Decorate(ctx, id, port.ViewDecoration{
		Class:  d.Class,
		Status: StatusText(inst, primary, secondary),
	})
}
