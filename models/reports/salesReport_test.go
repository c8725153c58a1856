package reports

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

func windowOrder(day int, total int64, status models.OrderStatus, method models.PaymentMethod) *models.Order {
	return &models.Order{
		Total:         decimal.NewFromInt(total),
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildSalesReport_ExcludesCancelled(t *testing.T) {
	orders := []*models.Order{
		windowOrder(5, 100, models.OrderStatusPending, models.PaymentMethodCash),
		windowOrder(10, 200, models.OrderStatusCompleted, models.PaymentMethodCard),
		windowOrder(15, 50, models.OrderStatusCancelled, models.PaymentMethodCash),
	}

	report := BuildSalesReport(orders)

	if !report.TotalSales.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected totalSales 300, got %s", report.TotalSales)
	}
	if report.TotalOrders != 2 {
		t.Fatalf("expected totalOrders 2, got %d", report.TotalOrders)
	}
	if !report.AverageOrderValue.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected averageOrderValue 150, got %s", report.AverageOrderValue)
	}
	if !report.SalesByPayment["cash"].Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected cash sales 100, got %s", report.SalesByPayment["cash"])
	}
	if !report.SalesByPayment["card"].Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected card sales 200, got %s", report.SalesByPayment["card"])
	}
}

func TestBuildSalesReport_TrendChronological(t *testing.T) {
	orders := []*models.Order{
		windowOrder(20, 40, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(5, 10, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(5, 30, models.OrderStatusCompleted, models.PaymentMethodCard),
	}

	report := BuildSalesReport(orders)

	if len(report.Trend) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(report.Trend))
	}
	if report.Trend[0].Date != "2024-01-05" || report.Trend[1].Date != "2024-01-20" {
		t.Fatalf("expected chronological trend, got %s then %s", report.Trend[0].Date, report.Trend[1].Date)
	}
	if !report.Trend[0].Sales.Equal(decimal.NewFromInt(40)) || report.Trend[0].Orders != 2 {
		t.Fatalf("expected first day sales 40 over 2 orders, got %s over %d", report.Trend[0].Sales, report.Trend[0].Orders)
	}
}

func TestBuildSalesReport_Empty(t *testing.T) {
	report := BuildSalesReport(nil)

	if report.TotalOrders != 0 || !report.TotalSales.Equal(decimal.Zero) {
		t.Fatalf("expected empty report, got orders=%d sales=%s", report.TotalOrders, report.TotalSales)
	}
	if !report.AverageOrderValue.Equal(decimal.Zero) {
		t.Fatalf("expected zero average for empty window, got %s", report.AverageOrderValue)
	}
	if len(report.Trend) != 0 {
		t.Fatalf("expected empty trend, got %d points", len(report.Trend))
	}
}
