package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateOrderTotals_FixedDiscountNeverNegative(t *testing.T) {
	items := []LineAmount{{Price: decimal.NewFromInt(100), Quantity: 2}}

	totals := CalculateOrderTotals(items, "fixed", decimal.NewFromInt(500), decimal.NewFromInt(50))

	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected subtotal 200, got %s", totals.Subtotal)
	}
	if !totals.DiscountAmount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected discount amount 500, got %s", totals.DiscountAmount)
	}
	if !totals.Total.Equal(decimal.Zero) {
		t.Fatalf("expected total clamped to 0, got %s", totals.Total)
	}
}

func TestCalculateOrderTotals_PercentageDiscount(t *testing.T) {
	items := []LineAmount{
		{Price: decimal.NewFromInt(100), Quantity: 1},
		{Price: decimal.NewFromInt(50), Quantity: 4},
	}

	totals := CalculateOrderTotals(items, "percentage", decimal.NewFromInt(10), decimal.Zero)

	if !totals.Subtotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected subtotal 300, got %s", totals.Subtotal)
	}
	if !totals.DiscountAmount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected discount amount 30, got %s", totals.DiscountAmount)
	}
	if !totals.Total.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("expected total 270, got %s", totals.Total)
	}
}

func TestCalculateOrderTotals_NoDiscount(t *testing.T) {
	items := []LineAmount{{Price: decimal.NewFromFloat(19.99), Quantity: 3}}

	totals := CalculateOrderTotals(items, "", decimal.Zero, decimal.NewFromInt(5))

	expectedSubtotal := decimal.NewFromFloat(59.97)
	if !totals.Subtotal.Equal(expectedSubtotal) {
		t.Fatalf("expected subtotal %s, got %s", expectedSubtotal, totals.Subtotal)
	}
	if !totals.DiscountAmount.Equal(decimal.Zero) {
		t.Fatalf("expected zero discount, got %s", totals.DiscountAmount)
	}
	if !totals.Total.Equal(decimal.NewFromFloat(64.97)) {
		t.Fatalf("expected total 64.97, got %s", totals.Total)
	}
}

func TestCalculateDiscountAmount_ZeroValueIsZero(t *testing.T) {
	amount := CalculateDiscountAmount(decimal.NewFromInt(100), decimal.Zero, "percentage")
	if !amount.Equal(decimal.Zero) {
		t.Fatalf("expected zero discount for zero value, got %s", amount)
	}
}

func TestCalculateOrderTotals_EmptyItems(t *testing.T) {
	totals := CalculateOrderTotals(nil, "percentage", decimal.NewFromInt(10), decimal.Zero)

	if !totals.Subtotal.Equal(decimal.Zero) || !totals.Total.Equal(decimal.Zero) {
		t.Fatalf("expected empty order to total zero, got subtotal=%s total=%s", totals.Subtotal, totals.Total)
	}
}
