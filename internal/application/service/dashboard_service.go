package service

import (
	"context"
	"log"

	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/pkg/gemini"
)

// DashboardService aggregates business figures and produces AI insights
type DashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	gemini       *gemini.Client
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	client *gemini.Client,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		gemini:       client,
	}
}

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	InvoiceCount   int     `json:"invoice_count"`
	PaidCount      int     `json:"paid_count"`
	UnpaidCount    int     `json:"unpaid_count"`
	OverdueCount   int     `json:"overdue_count"`
	OutstandingDue float64 `json:"outstanding_due"`
	ProductCount   int     `json:"product_count"`
	CustomerCount  int     `json:"customer_count"`
	LowStockCount  int     `json:"low_stock_count"`
	AverageSale    float64 `json:"average_sale"`
}

// lowStockThreshold marks products that are close to running out.
const lowStockThreshold = 5

// GetStats computes the dashboard aggregate over all stored data
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		InvoiceCount:  len(invoices),
		ProductCount:  len(products),
		CustomerCount: len(customers),
	}

	for _, inv := range invoices {
		stats.TotalRevenue += inv.GrandTotal
		switch inv.Status {
		case enum.InvoiceStatusPaid:
			stats.PaidCount++
		case enum.InvoiceStatusUnpaid:
			stats.UnpaidCount++
			stats.OutstandingDue += inv.GrandTotal
		case enum.InvoiceStatusOverdue:
			stats.OverdueCount++
			stats.OutstandingDue += inv.GrandTotal
		}
	}
	if len(invoices) > 0 {
		stats.AverageSale = stats.TotalRevenue / float64(len(invoices))
	}

	for _, p := range products {
		if p.Stock <= lowStockThreshold {
			stats.LowStockCount++
		}
	}

	return stats, nil
}

// staticInsights is shown when the model is unavailable or unconfigured so
// the dashboard never renders empty.
var staticInsights = []string{
	"Monitor your top selling items",
	"Follow up on unpaid invoices",
	"Stock up on fast-moving goods",
}

// GetInsights returns short actionable insights over the current business
// data. Model failures fall back to the static list.
func (s *DashboardService) GetInsights(ctx context.Context) ([]string, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if !s.gemini.Configured() {
		return staticInsights, nil
	}

	insights, err := s.gemini.BusinessInsights(ctx, stats)
	if err != nil || len(insights) == 0 {
		if err != nil {
			log.Printf("WARN: insight generation failed, using static fallback: %v", err)
		}
		return staticInsights, nil
	}
	return insights, nil
}
