package utils

import (
	"github.com/shopspring/decimal"
)

// LineAmount is the price/quantity pair of one order line, already snapshotted.
type LineAmount struct {
	Price    decimal.Decimal
	Quantity int
}

type OrderTotals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

func CalculateDiscountAmount(subTotal decimal.Decimal, discount decimal.Decimal, discountType string) decimal.Decimal {

	var discountAmount decimal.Decimal

	decimalOneHundred := decimal.NewFromFloat(100)

	if discount.GreaterThan(decimal.NewFromFloat(0.0)) {
		if discountType == "percentage" {
			discountAmount = subTotal.Mul(discount).DivRound(decimalOneHundred, 4)
		} else {
			discountAmount = discount
		}
	} else {
		discountAmount = decimal.NewFromFloat(0.0)
	}

	return discountAmount
}

// CalculateOrderTotals is total: it never fails and never returns a negative
// total, even when the discount exceeds the subtotal.
func CalculateOrderTotals(items []LineAmount, discountType string, discountValue decimal.Decimal, shipping decimal.Decimal) OrderTotals {

	var subtotal decimal.Decimal
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	var discountAmount decimal.Decimal
	if discountType != "" {
		discountAmount = CalculateDiscountAmount(subtotal, discountValue, discountType)
	}

	total := subtotal.Sub(discountAmount).Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return OrderTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          total,
	}
}
