package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// ProfileRepository defines the interface for business profile operations.
// The active profile id is persisted under its own key, separate from the
// profile collection itself.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.BusinessProfile, error)

	GetActiveID(ctx context.Context) (uuid.UUID, error)
	SetActiveID(ctx context.Context, id uuid.UUID) error
}
