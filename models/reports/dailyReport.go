package reports

import (
	"context"
	"sort"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/shopspring/decimal"
)

type DailyReportRow struct {
	Date        string          `json:"date"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int             `json:"totalOrders"`
	TotalItems  int             `json:"totalItems"`
	Cash        decimal.Decimal `json:"cash"`
	Card        decimal.Decimal `json:"card"`
	Discount    decimal.Decimal `json:"discount"`
}

type DailyReportResponse struct {
	Days []DailyReportRow `json:"days"`
	// Totals is the grand-total footer row over every day in the window.
	Totals DailyReportRow `json:"totals"`
}

func GetDailyReport(ctx context.Context, filter Filter) (*DailyReportResponse, error) {
	key := cacheKey("daily", filter)
	var cached DailyReportResponse
	if hit, err := cacheGet(key, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := fetchWindowOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := BuildDailyReport(orders)
	cacheSet(key, report)
	return report, nil
}

// BuildDailyReport buckets the window's non-cancelled orders per calendar
// day, chronologically, and sums a footer row across the whole window.
func BuildDailyReport(orders []*models.Order) *DailyReportResponse {
	byDay := make(map[string]*DailyReportRow)
	for _, order := range countedOrders(orders) {
		day := utils.DateKey(order.CreatedAt)
		row, ok := byDay[day]
		if !ok {
			row = &DailyReportRow{Date: day}
			byDay[day] = row
		}
		addOrderToDailyRow(row, order)
	}

	report := &DailyReportResponse{
		Days:   []DailyReportRow{},
		Totals: DailyReportRow{Date: "total"},
	}
	for _, row := range byDay {
		report.Days = append(report.Days, *row)
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})

	for _, row := range report.Days {
		report.Totals.TotalSales = report.Totals.TotalSales.Add(row.TotalSales)
		report.Totals.TotalOrders += row.TotalOrders
		report.Totals.TotalItems += row.TotalItems
		report.Totals.Cash = report.Totals.Cash.Add(row.Cash)
		report.Totals.Card = report.Totals.Card.Add(row.Card)
		report.Totals.Discount = report.Totals.Discount.Add(row.Discount)
	}

	return report
}

func addOrderToDailyRow(row *DailyReportRow, order *models.Order) {
	row.TotalSales = row.TotalSales.Add(order.Total)
	row.TotalOrders++
	for _, item := range order.Items {
		row.TotalItems += item.Quantity
	}
	switch order.PaymentMethod {
	case models.PaymentMethodCard:
		row.Card = row.Card.Add(order.Total)
	default:
		row.Cash = row.Cash.Add(order.Total)
	}
	row.Discount = row.Discount.Add(order.Discount.Amount)
}
