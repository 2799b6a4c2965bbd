package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swipelite/swipelite-api/internal/config"
	"github.com/swipelite/swipelite-api/internal/presentation/http/handler"
	"github.com/swipelite/swipelite-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Profile   *handler.ProfileHandler
	Template  *handler.TemplateHandler
	Invoice   *handler.InvoiceHandler
	Billing   *handler.BillingHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.Stats)
		v1.GET("/dashboard/insights", h.Dashboard.Insights)

		// AI billing parse
		v1.POST("/billing/parse", h.Billing.Parse)

		registerProductRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerProfileRoutes(v1, h)
		registerTemplateRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProfileRoutes(v1 *gin.RouterGroup, h *Handlers) {
	profiles := v1.Group("/profiles")
	{
		profiles.GET("", h.Profile.List)
		profiles.POST("", h.Profile.Create)
		profiles.GET("/active", h.Profile.GetActive)
		profiles.GET("/:id", h.Profile.Get)
		profiles.PUT("/:id", h.Profile.Update)
		profiles.DELETE("/:id", h.Profile.Delete)
		profiles.POST("/:id/activate", h.Profile.Activate)
		profiles.POST("/:id/default", h.Profile.SetDefault)
	}
}

func registerTemplateRoutes(v1 *gin.RouterGroup, h *Handlers) {
	templates := v1.Group("/templates")
	{
		templates.GET("", h.Template.List)
		templates.POST("", h.Template.Create)
		templates.GET("/default", h.Template.GetDefault)
		templates.GET("/:id", h.Template.Get)
		templates.PUT("/:id", h.Template.Update)
		templates.DELETE("/:id", h.Template.Delete)
		templates.POST("/:id/default", h.Template.SetDefault)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.POST("/preview", h.Invoice.Preview)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.PATCH("/:id/status", h.Invoice.SetStatus)
		invoices.GET("/:id/tally", h.Invoice.ExportTally)
		invoices.GET("/:id/pdf", h.Invoice.ExportPDF)
		invoices.POST("/:id/print", h.Invoice.Print)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.Test)
	}
}
