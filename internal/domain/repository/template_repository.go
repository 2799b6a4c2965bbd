package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// TemplateRepository defines the interface for invoice template operations
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.InvoiceTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceTemplate, error)
	Update(ctx context.Context, template *entity.InvoiceTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.InvoiceTemplate, error)
}
