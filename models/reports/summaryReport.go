package reports

import (
	"context"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

type SummaryReportResponse struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	TotalItemsSold  int             `json:"totalItemsSold"`
	ProductCount    int             `json:"productCount"`
	LowStockCount   int             `json:"lowStockCount"`
	CancelledOrders int             `json:"cancelledOrders"`
	RevenueGrowth   decimal.Decimal `json:"revenueGrowth"`
	OrdersGrowth    decimal.Decimal `json:"ordersGrowth"`
}

func GetSummaryReport(ctx context.Context, filter Filter) (*SummaryReportResponse, error) {
	key := cacheKey("summary", filter)
	var cached SummaryReportResponse
	if hit, err := cacheGet(key, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := fetchWindowOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	previousOrders, err := fetchWindowOrders(ctx, filter.PreviousWindow())
	if err != nil {
		return nil, err
	}
	products, err := models.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildSummaryReport(orders, previousOrders, products)
	cacheSet(key, report)
	return report, nil
}

// BuildSummaryReport computes the headline totals for the window and the
// growth against the immediately preceding window of equal length.
func BuildSummaryReport(orders, previousOrders []*models.Order, products []*models.Product) *SummaryReportResponse {
	report := &SummaryReportResponse{ProductCount: len(products)}

	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			report.CancelledOrders++
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(order.Total)
		report.TotalOrders++
		for _, item := range order.Items {
			report.TotalItemsSold += item.Quantity
		}
	}

	for _, product := range products {
		if product.IsLowStock() {
			report.LowStockCount++
		}
	}

	var previousRevenue decimal.Decimal
	previousOrderCount := 0
	for _, order := range countedOrders(previousOrders) {
		previousRevenue = previousRevenue.Add(order.Total)
		previousOrderCount++
	}

	report.RevenueGrowth = GrowthPercent(previousRevenue, report.TotalRevenue)
	report.OrdersGrowth = GrowthPercent(
		decimal.NewFromInt(int64(previousOrderCount)),
		decimal.NewFromInt(int64(report.TotalOrders)))

	return report
}

// GrowthPercent is the period-over-period change. The zero-division edges
// are pinned: 100 when the previous period had nothing and this one did,
// 0 when both are empty.
func GrowthPercent(previous, current decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return current.Sub(previous).DivRound(previous, 6).Mul(decimal.NewFromInt(100)).Round(2)
}
