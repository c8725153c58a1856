package reports

import (
	"testing"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

func TestGrowthPercent_Edges(t *testing.T) {
	cases := []struct {
		previous, current int64
		expected          string
	}{
		{0, 0, "0"},
		{0, 500, "100"},
		{100, 150, "50"},
		{200, 100, "-50"},
	}
	for _, tc := range cases {
		got := GrowthPercent(decimal.NewFromInt(tc.previous), decimal.NewFromInt(tc.current))
		if !got.Equal(decimal.RequireFromString(tc.expected)) {
			t.Fatalf("growth(%d -> %d): expected %s, got %s", tc.previous, tc.current, tc.expected, got)
		}
	}
}

func TestBuildSummaryReport(t *testing.T) {
	orders := []*models.Order{
		windowOrder(5, 100, models.OrderStatusPending, models.PaymentMethodCash),
		windowOrder(10, 200, models.OrderStatusCompleted, models.PaymentMethodCard),
		windowOrder(15, 50, models.OrderStatusCancelled, models.PaymentMethodCash),
	}
	orders[0].Items = []models.OrderItem{{ProductId: 1, Quantity: 2}}
	orders[1].Items = []models.OrderItem{{ProductId: 2, Quantity: 3}}
	orders[2].Items = []models.OrderItem{{ProductId: 1, Quantity: 9}}

	products := []*models.Product{
		{ID: 1, Name: "Low", Stock: 5},
		{ID: 2, Name: "Fine", Stock: 15},
	}

	report := BuildSummaryReport(orders, nil, products)

	if !report.TotalRevenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected revenue 300, got %s", report.TotalRevenue)
	}
	if report.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", report.TotalOrders)
	}
	if report.TotalItemsSold != 5 {
		t.Fatalf("expected 5 items sold (cancelled excluded), got %d", report.TotalItemsSold)
	}
	if report.CancelledOrders != 1 {
		t.Fatalf("expected 1 cancelled order, got %d", report.CancelledOrders)
	}
	if report.ProductCount != 2 {
		t.Fatalf("expected product count 2, got %d", report.ProductCount)
	}
	if report.LowStockCount != 1 {
		t.Fatalf("expected 1 low-stock product, got %d", report.LowStockCount)
	}
	if !report.RevenueGrowth.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100%% revenue growth over an empty previous window, got %s", report.RevenueGrowth)
	}
}

func TestBuildSummaryReport_GrowthAgainstPreviousWindow(t *testing.T) {
	current := []*models.Order{
		windowOrder(20, 300, models.OrderStatusCompleted, models.PaymentMethodCash),
	}
	previous := []*models.Order{
		windowOrder(1, 100, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(2, 100, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(3, 40, models.OrderStatusCancelled, models.PaymentMethodCash),
	}

	report := BuildSummaryReport(current, previous, nil)

	if !report.RevenueGrowth.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected 50%% revenue growth (200 -> 300), got %s", report.RevenueGrowth)
	}
	if !report.OrdersGrowth.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected -50%% orders growth (2 -> 1), got %s", report.OrdersGrowth)
	}
}
