package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice collection operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns invoices newest first.
	List(ctx context.Context) ([]entity.Invoice, error)
}
