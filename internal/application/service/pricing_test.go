package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name       string
		items      []entity.LineItem
		subtotal   float64
		taxTotal   float64
		grandTotal float64
	}{
		{
			name: "coffee and honey",
			items: []entity.LineItem{
				{Name: "Premium Coffee Beans", Price: 450, Quantity: 2},
				{Name: "Organic Honey 500g", Price: 320, Quantity: 1},
			},
			subtotal:   1220,
			taxTotal:   219.6,
			grandTotal: 1439.6,
		},
		{
			name:       "no items",
			items:      nil,
			subtotal:   0,
			taxTotal:   0,
			grandTotal: 0,
		},
		{
			name: "single item",
			items: []entity.LineItem{
				{Name: "Widget", Price: 1000, Quantity: 1},
			},
			subtotal:   1000,
			taxTotal:   180,
			grandTotal: 1180,
		},
		{
			name: "tax rounds at the aggregate",
			items: []entity.LineItem{
				{Name: "A", Price: 0.05, Quantity: 1},
				{Name: "B", Price: 0.05, Quantity: 1},
			},
			subtotal:   0.1,
			taxTotal:   0.02,
			grandTotal: 0.12,
		},
		{
			name: "negative price propagates",
			items: []entity.LineItem{
				{Name: "Refund", Price: -100, Quantity: 1},
			},
			subtotal:   -100,
			taxTotal:   -18,
			grandTotal: -118,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items)

			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.taxTotal, totals.TaxTotal)
			assert.Equal(t, tt.grandTotal, totals.GrandTotal)
		})
	}
}

func TestComputeTotalsAvoidsFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must not leak binary float error into totals.
	items := []entity.LineItem{
		{Name: "A", Price: 0.1, Quantity: 1},
		{Name: "B", Price: 0.2, Quantity: 1},
	}

	totals := ComputeTotals(items)

	assert.Equal(t, 0.3, totals.Subtotal)
	assert.Equal(t, 0.05, totals.TaxTotal)
	assert.Equal(t, 0.35, totals.GrandTotal)
}
