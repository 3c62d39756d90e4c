package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

type consentRepo struct {
	queries *queries
}

// NewConsentRepository creates a new SQLite-backed consent repository.
func NewConsentRepository(db *sql.DB) repository.ConsentRepository {
	return &consentRepo{queries: newQueries(db)}
}

func (r *consentRepo) Get(ctx context.Context, toolID entity.ToolID) (*entity.CSPConsent, error) {
	logging.FromContext(ctx).Debug().Str("tool_id", string(toolID)).Msg("getting consent")

	row, err := r.queries.getConsent(ctx, string(toolID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return consentFromRow(row), nil
}

func (r *consentRepo) Set(ctx context.Context, consent *entity.CSPConsent) error {
	log := logging.FromContext(ctx)

	if consent == nil {
		log.Error().Msg("cannot set nil consent")
		return errors.New("cannot set nil consent")
	}

	log.Debug().
		Str("tool_id", string(consent.ToolID)).
		Str("fingerprint", consent.Fingerprint).
		Msg("setting consent")

	return r.queries.upsertConsent(ctx, consentRow{
		ToolID:      string(consent.ToolID),
		Fingerprint: consent.Fingerprint,
		GrantedAt:   consent.GrantedAt,
	})
}

func (r *consentRepo) Delete(ctx context.Context, toolID entity.ToolID) error {
	logging.FromContext(ctx).Debug().Str("tool_id", string(toolID)).Msg("deleting consent")
	return r.queries.deleteConsent(ctx, string(toolID))
}

func (r *consentRepo) GetAll(ctx context.Context) ([]*entity.CSPConsent, error) {
	rows, err := r.queries.listConsents(ctx)
	if err != nil {
		return nil, err
	}

	consents := make([]*entity.CSPConsent, 0, len(rows))
	for _, row := range rows {
		consents = append(consents, consentFromRow(row))
	}
	return consents, nil
}

func consentFromRow(row consentRow) *entity.CSPConsent {
	return &entity.CSPConsent{
		ToolID:      entity.ToolID(row.ToolID),
		Fingerprint: row.Fingerprint,
		GrantedAt:   row.GrantedAt,
	}
}
