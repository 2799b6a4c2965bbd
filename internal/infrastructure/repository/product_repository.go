package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

type productRepository struct {
	c *collection[entity.Product]
}

// NewProductRepository hydrates the product collection from the store,
// seeding it on first run or when the stored data is unreadable.
func NewProductRepository(ctx context.Context, store kvstore.Store, seed []entity.Product) (domainRepo.ProductRepository, error) {
	c, err := newCollection(ctx, store, kvstore.KeyProducts, seed)
	if err != nil {
		return nil, err
	}
	return &productRepository{c: c}, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	return r.c.mutate(ctx, func(items []entity.Product) []entity.Product {
		return append(items, *product)
	})
}

func (r *productRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, _ := r.c.find(func(p entity.Product) bool { return p.ID == id })
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now().UTC()
	return r.c.mutate(ctx, func(items []entity.Product) []entity.Product {
		for i := range items {
			if items[i].ID == product.ID {
				items[i] = *product
			}
		}
		return items
	})
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(items []entity.Product) []entity.Product {
		out := items[:0]
		for _, p := range items {
			if p.ID != id {
				out = append(out, p)
			}
		}
		return out
	})
}

func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	return r.c.snapshot(), nil
}
