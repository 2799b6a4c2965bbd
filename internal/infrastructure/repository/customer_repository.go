package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

type customerRepository struct {
	c *collection[entity.Customer]
}

// NewCustomerRepository hydrates the customer collection from the store.
func NewCustomerRepository(ctx context.Context, store kvstore.Store, seed []entity.Customer) (domainRepo.CustomerRepository, error) {
	c, err := newCollection(ctx, store, kvstore.KeyCustomers, seed)
	if err != nil {
		return nil, err
	}
	return &customerRepository{c: c}, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return r.c.mutate(ctx, func(items []entity.Customer) []entity.Customer {
		return append(items, *customer)
	})
}

func (r *customerRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, _ := r.c.find(func(c entity.Customer) bool { return c.ID == id })
	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	return r.c.mutate(ctx, func(items []entity.Customer) []entity.Customer {
		for i := range items {
			if items[i].ID == customer.ID {
				items[i] = *customer
			}
		}
		return items
	})
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(items []entity.Customer) []entity.Customer {
		out := items[:0]
		for _, c := range items {
			if c.ID != id {
				out = append(out, c)
			}
		}
		return out
	})
}

func (r *customerRepository) List(_ context.Context) ([]entity.Customer, error) {
	return r.c.snapshot(), nil
}
