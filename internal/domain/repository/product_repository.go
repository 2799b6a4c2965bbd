package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// ProductRepository defines the interface for product collection operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]entity.Product, error)
}
