package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSnapshotLinePrice(t *testing.T) {
	product := &Product{
		RegularPrice: decimal.NewFromInt(120),
		SalePrice:    decimal.NewFromInt(100),
	}

	override := decimal.NewFromInt(90)
	if got := snapshotLinePrice(&override, product); !got.Equal(override) {
		t.Fatalf("expected supplied price %s to win, got %s", override, got)
	}

	if got := snapshotLinePrice(nil, product); !got.Equal(product.SalePrice) {
		t.Fatalf("expected sale price fallback, got %s", got)
	}

	zero := decimal.Zero
	if got := snapshotLinePrice(&zero, product); !got.Equal(product.SalePrice) {
		t.Fatalf("expected zero override to fall back to sale price, got %s", got)
	}

	fullPrice := &Product{RegularPrice: decimal.NewFromInt(120)}
	if got := snapshotLinePrice(nil, fullPrice); !got.Equal(fullPrice.RegularPrice) {
		t.Fatalf("expected regular price fallback, got %s", got)
	}
}

func TestNewOrderItemResolveProductId(t *testing.T) {
	if got := (NewOrderItem{ID: 7}).ResolveProductId(); got != 7 {
		t.Fatalf("expected _id spelling to resolve to 7, got %d", got)
	}
	if got := (NewOrderItem{Product: 9}).ResolveProductId(); got != 9 {
		t.Fatalf("expected product spelling to resolve to 9, got %d", got)
	}
	if got := (NewOrderItem{ID: 7, Product: 9}).ResolveProductId(); got != 7 {
		t.Fatalf("expected _id to take precedence, got %d", got)
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, valid := range []OrderStatus{OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled} {
		if !valid.IsValid() {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	if OrderStatus("shipped").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		limit    int
		expected int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.expected {
			t.Fatalf("TotalPages(%d, %d): expected %d, got %d", tc.total, tc.limit, tc.expected, got)
		}
	}
}
