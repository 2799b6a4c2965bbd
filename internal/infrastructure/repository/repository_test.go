package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
)

func newStore(t *testing.T) kvstore.Store {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProductRepositorySeedsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	repo, err := NewProductRepository(ctx, newStore(t), SeedProducts())
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Premium Coffee Beans", products[0].Name)
	assert.Equal(t, "Organic Honey 500g", products[1].Name)
}

func TestProductRepositorySeedsOnCorruptData(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.Put(ctx, kvstore.KeyProducts, []byte("{not json")))

	repo, err := NewProductRepository(ctx, store, SeedProducts())
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRepositoryPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	repo, err := NewProductRepository(ctx, store, SeedProducts())
	require.NoError(t, err)

	created := &entity.Product{Name: "New Widget", Price: 99}
	require.NoError(t, repo.Create(ctx, created))
	require.NotEqual(t, uuid.Nil, created.ID)

	// A fresh repository over the same store must see the write, not the seed.
	reloaded, err := NewProductRepository(ctx, store, SeedProducts())
	require.NoError(t, err)

	products, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	found, err := reloaded.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "New Widget", found.Name)
}

func TestGetByIDMissingReturnsNilNil(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCustomerRepository(ctx, newStore(t), SeedCustomers())
	require.NoError(t, err)

	customer, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestDeleteRemovesItem(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCustomerRepository(ctx, newStore(t), SeedCustomers())
	require.NoError(t, err)

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)

	require.NoError(t, repo.Delete(ctx, customers[0].ID))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestInvoiceRepositoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo, err := NewInvoiceRepository(ctx, newStore(t))
	require.NoError(t, err)

	first := &entity.Invoice{InvoiceNumber: "INV-000001", Date: time.Now().UTC()}
	second := &entity.Invoice{InvoiceNumber: "INV-000002", Date: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	invoices, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-000002", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-000001", invoices[1].InvoiceNumber)
}

func TestInvoiceRepositoryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	repo, err := NewInvoiceRepository(ctx, newStore(t))
	require.NoError(t, err)

	invoices, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestProfileRepositorySeedsActiveID(t *testing.T) {
	ctx := context.Background()
	repo, err := NewProfileRepository(ctx, newStore(t), SeedProfiles())
	require.NoError(t, err)

	activeID, err := repo.GetActiveID(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedProfileID, activeID)
}

func TestProfileRepositorySetActiveID(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo, err := NewProfileRepository(ctx, store, SeedProfiles())
	require.NoError(t, err)

	other := uuid.New()
	require.NoError(t, repo.SetActiveID(ctx, other))

	// Survives a reload.
	reloaded, err := NewProfileRepository(ctx, store, SeedProfiles())
	require.NoError(t, err)

	activeID, err := reloaded.GetActiveID(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, activeID)
}

// flakyStore wraps a store so tests can make writes fail on demand.
type flakyStore struct {
	kvstore.Store
	failPuts bool
}

func (s *flakyStore) Put(ctx context.Context, key string, value []byte) error {
	if s.failPuts {
		return errors.New("disk full")
	}
	return s.Store.Put(ctx, key, value)
}

func TestDeleteRollsBackWhenWriteFails(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: newStore(t)}
	repo, err := NewCustomerRepository(ctx, store, SeedCustomers())
	require.NoError(t, err)

	second := &entity.Customer{Name: "Beta Traders"}
	third := &entity.Customer{Name: "Gamma Stores"}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	store.failPuts = true
	require.Error(t, repo.Delete(ctx, second.ID))
	store.failPuts = false

	// The failed delete must leave all three customers in place, in order.
	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Beta Traders", customers[1].Name)
	assert.Equal(t, "Gamma Stores", customers[2].Name)

	// The next successful write must persist the rolled-back state, not a
	// half-applied one.
	fourth := &entity.Customer{Name: "Delta Mart"}
	require.NoError(t, repo.Create(ctx, fourth))

	reloaded, err := NewCustomerRepository(ctx, store.Store, SeedCustomers())
	require.NoError(t, err)
	persisted, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 4)
	assert.Equal(t, "Beta Traders", persisted[1].Name)
	assert.Equal(t, "Gamma Stores", persisted[2].Name)
	assert.Equal(t, "Delta Mart", persisted[3].Name)
}

func TestUpdateRollsBackWhenWriteFails(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: newStore(t)}
	repo, err := NewTemplateRepository(ctx, store, SeedTemplates())
	require.NoError(t, err)

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	original := templates[0].AccentColor

	tpl := templates[0]
	tpl.AccentColor = "#000000"
	store.failPuts = true
	require.Error(t, repo.Update(ctx, &tpl))
	store.failPuts = false

	found, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, original, found.AccentColor)
}

func TestUpdateReplacesMatchingItem(t *testing.T) {
	ctx := context.Background()
	repo, err := NewTemplateRepository(ctx, newStore(t), SeedTemplates())
	require.NoError(t, err)

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tpl := templates[0]
	tpl.AccentColor = "#000000"
	require.NoError(t, repo.Update(ctx, &tpl))

	found, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "#000000", found.AccentColor)
}
