package reports

import (
	"testing"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

func TestBuildDailyReport_FooterSumsDays(t *testing.T) {
	orders := []*models.Order{
		windowOrder(5, 100, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(5, 40, models.OrderStatusCompleted, models.PaymentMethodCard),
		windowOrder(9, 60, models.OrderStatusPending, models.PaymentMethodCash),
		windowOrder(7, 999, models.OrderStatusCancelled, models.PaymentMethodCash),
	}
	orders[0].Items = []models.OrderItem{{ProductId: 1, Quantity: 2}}
	orders[1].Items = []models.OrderItem{{ProductId: 2, Quantity: 1}}
	orders[2].Items = []models.OrderItem{{ProductId: 1, Quantity: 4}}
	orders[0].Discount = models.OrderDiscount{Type: models.DiscountTypeFixed, Value: decimal.NewFromInt(10), Amount: decimal.NewFromInt(10)}

	report := BuildDailyReport(orders)

	if len(report.Days) != 2 {
		t.Fatalf("expected 2 day rows, got %d", len(report.Days))
	}
	if report.Days[0].Date != "2024-01-05" || report.Days[1].Date != "2024-01-09" {
		t.Fatalf("expected chronological days, got %s then %s", report.Days[0].Date, report.Days[1].Date)
	}

	first := report.Days[0]
	if !first.TotalSales.Equal(decimal.NewFromInt(140)) || first.TotalOrders != 2 || first.TotalItems != 3 {
		t.Fatalf("unexpected first day row: %+v", first)
	}
	if !first.Cash.Equal(decimal.NewFromInt(100)) || !first.Card.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected cash 100 / card 40, got %s / %s", first.Cash, first.Card)
	}

	totals := report.Totals
	if !totals.TotalSales.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected footer sales 200, got %s", totals.TotalSales)
	}
	if totals.TotalOrders != 3 || totals.TotalItems != 7 {
		t.Fatalf("expected footer 3 orders / 7 items, got %d / %d", totals.TotalOrders, totals.TotalItems)
	}
	if !totals.Discount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected footer discount 10, got %s", totals.Discount)
	}
}

func TestBuildPaymentReport(t *testing.T) {
	orders := []*models.Order{
		windowOrder(5, 100, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(6, 200, models.OrderStatusCompleted, models.PaymentMethodCash),
		windowOrder(7, 90, models.OrderStatusPending, models.PaymentMethodCard),
		windowOrder(8, 55, models.OrderStatusCancelled, models.PaymentMethodCard),
	}

	rows := BuildPaymentReport(orders)

	if len(rows) != 2 {
		t.Fatalf("expected a row per payment method, got %d", len(rows))
	}

	cash := rows[0]
	if cash.Method != "cash" || cash.TransactionCount != 2 || !cash.TotalAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected cash row: %+v", cash)
	}
	if !cash.AverageTransaction.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected cash average 150, got %s", cash.AverageTransaction)
	}

	card := rows[1]
	if card.TransactionCount != 1 || !card.TotalAmount.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected one card transaction of 90 (cancelled excluded), got %+v", card)
	}
}
