package service

import (
	"github.com/shopspring/decimal"

	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// ComputeTotals derives invoice totals from line items. The subtotal is the
// exact sum of price times quantity per item; tax applies the flat GST rate
// over the subtotal and is rounded to two decimals at the aggregate level,
// never per line.
func ComputeTotals(items []entity.LineItem) entity.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	rate := decimal.NewFromInt(entity.FlatTaxRatePercent).Div(decimal.NewFromInt(100))
	tax := subtotal.Mul(rate).Round(2)
	grand := subtotal.Add(tax)

	sub, _ := subtotal.Float64()
	taxF, _ := tax.Float64()
	grandF, _ := grand.Float64()

	return entity.Totals{
		Subtotal:   sub,
		TaxTotal:   taxF,
		GrandTotal: grandF,
	}
}
