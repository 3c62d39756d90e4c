package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// ManageConsentUseCase gates tool launches on the user's acceptance of the
// tool's CSP exceptions. A stored consent is consulted first; the dialog is
// only shown when none covers the tool's current exception set.
type ManageConsentUseCase struct {
	repo     repository.ConsentRepository
	prompter port.ConsentPrompter
	now      func() time.Time
}

// NewManageConsentUseCase creates a new consent use case.
func NewManageConsentUseCase(repo repository.ConsentRepository, prompter port.ConsentPrompter) *ManageConsentUseCase {
	return &ManageConsentUseCase{
		repo:     repo,
		prompter: prompter,
		now:      time.Now,
	}
}

// IsGranted reports whether a stored consent covers tool. Tools without
// exceptions are always granted.
func (uc *ManageConsentUseCase) IsGranted(ctx context.Context, tool *entity.Tool) (bool, error) {
	if !tool.NeedsCSPConsent() {
		return true, nil
	}
	consent, err := uc.repo.Get(ctx, tool.ID)
	if err != nil {
		return false, fmt.Errorf("get consent for %s: %w", tool.ID, err)
	}
	return consent.Covers(tool), nil
}

// Ensure returns nil when the tool may launch. It prompts when no stored
// consent covers the tool, and persists an acceptance. A decline fails with
// entity.ErrConsentDeclined; closing the dialog fails with
// entity.ErrUserCancelled.
func (uc *ManageConsentUseCase) Ensure(ctx context.Context, tool *entity.Tool) error {
	log := logging.FromContext(ctx).With().
		Str("component", "consent").
		Str("tool_id", string(tool.ID)).
		Logger()

	granted, err := uc.IsGranted(ctx, tool)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read stored consent, prompting")
	}
	if granted {
		log.Debug().Msg("using stored consent")
		return nil
	}

	accepted, err := uc.prompter.PromptConsent(ctx, tool)
	if err != nil {
		return err
	}
	if !accepted {
		log.Info().Msg("consent declined")
		return entity.ErrConsentDeclined
	}

	consent := &entity.CSPConsent{
		ToolID:      tool.ID,
		Fingerprint: entity.FingerprintCSP(tool.CSPExceptions),
		GrantedAt:   uc.now().Unix(),
	}
	if err := uc.repo.Set(ctx, consent); err != nil {
		log.Warn().Err(err).Msg("failed to persist consent")
	} else {
		log.Info().Str("fingerprint", consent.Fingerprint).Msg("consent granted")
	}
	return nil
}

// Revoke deletes the stored consent of a tool.
func (uc *ManageConsentUseCase) Revoke(ctx context.Context, toolID entity.ToolID) error {
	if toolID == "" {
		return fmt.Errorf("%w: tool id is required", entity.ErrValidation)
	}
	if err := uc.repo.Delete(ctx, toolID); err != nil {
		return fmt.Errorf("revoke consent for %s: %w", toolID, err)
	}
	logging.FromContext(ctx).Info().Str("tool_id", string(toolID)).Msg("consent revoked")
	return nil
}

// List returns every stored consent.
func (uc *ManageConsentUseCase) List(ctx context.Context) ([]*entity.CSPConsent, error) {
	consents, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consents: %w", err)
	}
	return consents, nil
}
