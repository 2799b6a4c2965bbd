package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer collection operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Customer, error)
}
