package reports

import (
	"context"
	"sort"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/shopspring/decimal"
)

type SalesTrendPoint struct {
	Date   string          `json:"date"`
	Sales  decimal.Decimal `json:"sales"`
	Orders int             `json:"orders"`
}

type SalesReportResponse struct {
	TotalSales        decimal.Decimal            `json:"totalSales"`
	TotalOrders       int                        `json:"totalOrders"`
	AverageOrderValue decimal.Decimal            `json:"averageOrderValue"`
	TotalDiscount     decimal.Decimal            `json:"totalDiscount"`
	SalesByPayment    map[string]decimal.Decimal `json:"salesByPayment"`
	Trend             []SalesTrendPoint          `json:"trend"`
}

func GetSalesReport(ctx context.Context, filter Filter) (*SalesReportResponse, error) {
	key := cacheKey("sales", filter)
	var cached SalesReportResponse
	if hit, err := cacheGet(key, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := fetchWindowOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := BuildSalesReport(orders)
	cacheSet(key, report)
	return report, nil
}

// BuildSalesReport reduces a window of orders into the sales headline
// numbers plus a day-bucketed trend, cancelled orders excluded throughout.
func BuildSalesReport(orders []*models.Order) *SalesReportResponse {
	report := &SalesReportResponse{
		SalesByPayment: map[string]decimal.Decimal{
			string(models.PaymentMethodCash): decimal.Zero,
			string(models.PaymentMethodCard): decimal.Zero,
		},
		Trend: []SalesTrendPoint{},
	}

	byDay := make(map[string]*SalesTrendPoint)
	for _, order := range countedOrders(orders) {
		report.TotalSales = report.TotalSales.Add(order.Total)
		report.TotalOrders++
		report.TotalDiscount = report.TotalDiscount.Add(order.Discount.Amount)

		method := string(order.PaymentMethod)
		report.SalesByPayment[method] = report.SalesByPayment[method].Add(order.Total)

		day := utils.DateKey(order.CreatedAt)
		point, ok := byDay[day]
		if !ok {
			point = &SalesTrendPoint{Date: day}
			byDay[day] = point
		}
		point.Sales = point.Sales.Add(order.Total)
		point.Orders++
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalSales.DivRound(decimal.NewFromInt(int64(report.TotalOrders)), 4)
	}

	for _, point := range byDay {
		report.Trend = append(report.Trend, *point)
	}
	sort.Slice(report.Trend, func(i, j int) bool {
		return report.Trend[i].Date < report.Trend[j].Date
	})

	return report
}
