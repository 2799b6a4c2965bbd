package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/config"
	"github.com/swipelite/swipelite-api/internal/infrastructure/kvstore"
	"github.com/swipelite/swipelite-api/internal/infrastructure/repository"
	"github.com/swipelite/swipelite-api/internal/presentation/http/handler"
	"github.com/swipelite/swipelite-api/internal/presentation/http/routes"
	"github.com/swipelite/swipelite-api/pkg/gemini"
	"github.com/swipelite/swipelite-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Open the key-value store
	store, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Initialize repositories, seeding starter data on first run
	productRepo, err := repository.NewProductRepository(ctx, store, repository.SeedProducts())
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	customerRepo, err := repository.NewCustomerRepository(ctx, store, repository.SeedCustomers())
	if err != nil {
		log.Fatalf("Failed to load customers: %v", err)
	}
	profileRepo, err := repository.NewProfileRepository(ctx, store, repository.SeedProfiles())
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}
	templateRepo, err := repository.NewTemplateRepository(ctx, store, repository.SeedTemplates())
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	invoiceRepo, err := repository.NewInvoiceRepository(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load invoices: %v", err)
	}

	// Initialize the Gemini client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.ParseModel, cfg.Gemini.InsightModel)
	if !geminiClient.Configured() {
		log.Printf("Warning: Gemini API key not set, AI parsing disabled and insights use static fallback")
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	profileService := service.NewProfileService(profileRepo)
	templateService := service.NewTemplateService(templateRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, customerRepo, profileService, templateService)
	documentService := service.NewDocumentService(profileRepo, customerRepo, templateRepo, profileService, templateService, invoiceService)
	parseService := service.NewParseService(geminiClient, productService, customerService)
	dashboardService := service.NewDashboardService(invoiceRepo, productRepo, customerRepo, geminiClient)
	printerService := service.NewPrinterService(thermalPrinter)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Profile:   handler.NewProfileHandler(profileService),
		Template:  handler.NewTemplateHandler(templateService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, documentService, printerService, profileRepo, customerRepo),
		Billing:   handler.NewBillingHandler(parseService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// newStore opens the configured persistence backend.
func newStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	if cfg.Store.Backend == "redis" {
		return kvstore.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	return kvstore.NewFileStore(cfg.Store.Path)
}
