package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

type templateRepository struct {
	c *collection[entity.InvoiceTemplate]
}

// NewTemplateRepository hydrates the template collection. The seed always
// contains the built-in template, so the collection is never empty.
func NewTemplateRepository(ctx context.Context, store kvstore.Store, seed []entity.InvoiceTemplate) (domainRepo.TemplateRepository, error) {
	c, err := newCollection(ctx, store, kvstore.KeyTemplates, seed)
	if err != nil {
		return nil, err
	}
	return &templateRepository{c: c}, nil
}

func (r *templateRepository) Create(ctx context.Context, template *entity.InvoiceTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now
	return r.c.mutate(ctx, func(items []entity.InvoiceTemplate) []entity.InvoiceTemplate {
		return append(items, *template)
	})
}

func (r *templateRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.InvoiceTemplate, error) {
	template, _ := r.c.find(func(t entity.InvoiceTemplate) bool { return t.ID == id })
	return template, nil
}

func (r *templateRepository) Update(ctx context.Context, template *entity.InvoiceTemplate) error {
	template.UpdatedAt = time.Now().UTC()
	return r.c.mutate(ctx, func(items []entity.InvoiceTemplate) []entity.InvoiceTemplate {
		for i := range items {
			if items[i].ID == template.ID {
				items[i] = *template
			}
		}
		return items
	})
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(items []entity.InvoiceTemplate) []entity.InvoiceTemplate {
		out := items[:0]
		for _, t := range items {
			if t.ID != id {
				out = append(out, t)
			}
		}
		return out
	})
}

func (r *templateRepository) List(_ context.Context) ([]entity.InvoiceTemplate, error) {
	return r.c.snapshot(), nil
}
