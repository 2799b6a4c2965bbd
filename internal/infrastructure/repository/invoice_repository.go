package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

type invoiceRepository struct {
	c *collection[entity.Invoice]
}

// NewInvoiceRepository hydrates the invoice collection from the store.
func NewInvoiceRepository(ctx context.Context, store kvstore.Store) (domainRepo.InvoiceRepository, error) {
	c, err := newCollection(ctx, store, kvstore.KeyInvoices, []entity.Invoice{})
	if err != nil {
		return nil, err
	}
	return &invoiceRepository{c: c}, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	// Newest first, matching the billing screen's listing order.
	return r.c.mutate(ctx, func(items []entity.Invoice) []entity.Invoice {
		return append([]entity.Invoice{*invoice}, items...)
	})
}

func (r *invoiceRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, _ := r.c.find(func(inv entity.Invoice) bool { return inv.ID == id })
	return invoice, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()
	return r.c.mutate(ctx, func(items []entity.Invoice) []entity.Invoice {
		for i := range items {
			if items[i].ID == invoice.ID {
				items[i] = *invoice
			}
		}
		return items
	})
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(items []entity.Invoice) []entity.Invoice {
		out := items[:0]
		for _, inv := range items {
			if inv.ID != id {
				out = append(out, inv)
			}
		}
		return out
	})
}

func (r *invoiceRepository) List(_ context.Context) ([]entity.Invoice, error) {
	return r.c.snapshot(), nil
}
