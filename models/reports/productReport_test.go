package reports

import (
	"testing"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

func TestBuildLowStockList(t *testing.T) {
	products := []*models.Product{
		{ID: 1, Name: "NoThresholdLow", Stock: 5},
		{ID: 2, Name: "NoThresholdFine", Stock: 15},
		{ID: 3, Name: "CustomThreshold", Stock: 12, MinStock: 20},
		{ID: 4, Name: "Empty", Stock: 0},
	}

	rows := BuildLowStockList(products)

	if len(rows) != 3 {
		t.Fatalf("expected 3 low-stock rows, got %d", len(rows))
	}
	// sorted by emptiest shelf first
	if rows[0].ProductId != 4 || rows[1].ProductId != 1 || rows[2].ProductId != 3 {
		t.Fatalf("unexpected low-stock order: %d, %d, %d", rows[0].ProductId, rows[1].ProductId, rows[2].ProductId)
	}
	if rows[1].MinStock != models.DefaultMinStock {
		t.Fatalf("expected default threshold %d, got %d", models.DefaultMinStock, rows[1].MinStock)
	}
}

func TestBuildProductSales_SortedByRevenue(t *testing.T) {
	orders := []*models.Order{
		windowOrder(5, 0, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(6, 0, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(7, 0, models.OrderStatusCancelled, models.PaymentMethodCash),
	}
	orders[0].Items = []models.OrderItem{
		{ProductId: 1, Quantity: 2, Price: decimal.NewFromInt(10), Product: &models.Product{ID: 1, Name: "Cheap"}},
		{ProductId: 2, Quantity: 1, Price: decimal.NewFromInt(100), Product: &models.Product{ID: 2, Name: "Dear"}},
	}
	orders[1].Items = []models.OrderItem{
		{ProductId: 1, Quantity: 3, Price: decimal.NewFromInt(10), Product: &models.Product{ID: 1, Name: "Cheap"}},
	}
	orders[2].Items = []models.OrderItem{
		{ProductId: 3, Quantity: 50, Price: decimal.NewFromInt(10), Product: &models.Product{ID: 3, Name: "Ghost"}},
	}

	rows := BuildProductSales(orders)

	if len(rows) != 2 {
		t.Fatalf("expected 2 products (cancelled order excluded), got %d", len(rows))
	}
	if rows[0].ProductName != "Dear" || !rows[0].Revenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected Dear with revenue 100 first, got %s with %s", rows[0].ProductName, rows[0].Revenue)
	}
	if rows[1].QuantitySold != 5 || rows[1].TimesOrdered != 2 {
		t.Fatalf("expected Cheap sold 5 units across 2 orders, got %d units across %d", rows[1].QuantitySold, rows[1].TimesOrdered)
	}
}

func TestBuildProductSales_TopLimit(t *testing.T) {
	order := windowOrder(5, 0, models.OrderStatusCompleted, models.PaymentMethodCash)
	for i := 1; i <= TopProductLimit+5; i++ {
		order.Items = append(order.Items, models.OrderItem{
			ProductId: i,
			Quantity:  1,
			Price:     decimal.NewFromInt(int64(i)),
		})
	}

	rows := BuildProductSales([]*models.Order{order})

	if len(rows) != TopProductLimit {
		t.Fatalf("expected list capped at %d, got %d", TopProductLimit, len(rows))
	}
	if rows[0].ProductId != TopProductLimit+5 {
		t.Fatalf("expected the highest-revenue product first, got %d", rows[0].ProductId)
	}
}
