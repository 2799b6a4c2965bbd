package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	domainRepo "github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
	infraRepo "github.com/swipelite/swipelite-api/internal/infrastructure/repository"
	"github.com/swipelite/swipelite-api/pkg/gemini"
)

// testEnv wires services over a throwaway file-backed store seeded with the
// starter data.
type testEnv struct {
	ctx context.Context

	productRepo  domainRepo.ProductRepository
	customerRepo domainRepo.CustomerRepository
	profileRepo  domainRepo.ProfileRepository
	templateRepo domainRepo.TemplateRepository
	invoiceRepo  domainRepo.InvoiceRepository

	products  *ProductService
	customers *CustomerService
	profiles  *ProfileService
	templates *TemplateService
	invoices  *InvoiceService
	documents *DocumentService
	dashboard *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	productRepo, err := infraRepo.NewProductRepository(ctx, store, infraRepo.SeedProducts())
	require.NoError(t, err)
	customerRepo, err := infraRepo.NewCustomerRepository(ctx, store, infraRepo.SeedCustomers())
	require.NoError(t, err)
	profileRepo, err := infraRepo.NewProfileRepository(ctx, store, infraRepo.SeedProfiles())
	require.NoError(t, err)
	templateRepo, err := infraRepo.NewTemplateRepository(ctx, store, infraRepo.SeedTemplates())
	require.NoError(t, err)
	invoiceRepo, err := infraRepo.NewInvoiceRepository(ctx, store)
	require.NoError(t, err)

	env := &testEnv{
		ctx:          ctx,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		templateRepo: templateRepo,
		invoiceRepo:  invoiceRepo,
	}

	env.products = NewProductService(productRepo)
	env.customers = NewCustomerService(customerRepo)
	env.profiles = NewProfileService(profileRepo)
	env.templates = NewTemplateService(templateRepo)
	env.invoices = NewInvoiceService(invoiceRepo, productRepo, customerRepo, env.profiles, env.templates)
	env.documents = NewDocumentService(profileRepo, customerRepo, templateRepo, env.profiles, env.templates, env.invoices)
	env.dashboard = NewDashboardService(invoiceRepo, productRepo, customerRepo, gemini.NewClient("", "", ""))

	return env
}
