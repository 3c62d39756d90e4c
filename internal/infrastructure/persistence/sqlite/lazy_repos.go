package sqlite

import (
	"context"
	"sync"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository"
)

// LazySessionStateRepository wraps a session state repository with lazy
// database initialization. The Lazy* wrappers implement the same interfaces as
// their eager counterparts and open the database on the first call.
type LazySessionStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.SessionStateRepository
	once     sync.Once
	initErr  error
}

// NewLazySessionStateRepository creates a lazy-loading session state repository.
func NewLazySessionStateRepository(provider port.DatabaseProvider) repository.SessionStateRepository {
	return &LazySessionStateRepository{provider: provider}
}

func (r *LazySessionStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSessionStateRepository(db)
	})
	return r.initErr
}

func (r *LazySessionStateRepository) SaveSnapshot(ctx context.Context, snap *entity.SessionSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveSnapshot(ctx, snap)
}

func (r *LazySessionStateRepository) GetSnapshot(ctx context.Context) (*entity.SessionSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetSnapshot(ctx)
}

func (r *LazySessionStateRepository) DeleteSnapshot(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteSnapshot(ctx)
}

// LazyConsentRepository wraps a consent repository with lazy database
// initialization.
type LazyConsentRepository struct {
	provider port.DatabaseProvider
	repo     repository.ConsentRepository
	once     sync.Once
	initErr  error
}

// NewLazyConsentRepository creates a lazy-loading consent repository.
func NewLazyConsentRepository(provider port.DatabaseProvider) repository.ConsentRepository {
	return &LazyConsentRepository{provider: provider}
}

func (r *LazyConsentRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewConsentRepository(db)
	})
	return r.initErr
}

func (r *LazyConsentRepository) Get(ctx context.Context, toolID entity.ToolID) (*entity.CSPConsent, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, toolID)
}

func (r *LazyConsentRepository) Set(ctx context.Context, consent *entity.CSPConsent) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, consent)
}

func (r *LazyConsentRepository) Delete(ctx context.Context, toolID entity.ToolID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, toolID)
}

func (r *LazyConsentRepository) GetAll(ctx context.Context) ([]*entity.CSPConsent, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}
