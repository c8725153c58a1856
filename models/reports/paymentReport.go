package reports

import (
	"context"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

type PaymentReportRow struct {
	Method             string          `json:"method"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	TransactionCount   int             `json:"transactionCount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

func GetPaymentReport(ctx context.Context, filter Filter) ([]PaymentReportRow, error) {
	key := cacheKey("payment", filter)
	var cached []PaymentReportRow
	if hit, err := cacheGet(key, &cached); err == nil && hit {
		return cached, nil
	}

	orders, err := fetchWindowOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := BuildPaymentReport(orders)
	cacheSet(key, report)
	return report, nil
}

// BuildPaymentReport aggregates the window's non-cancelled orders per
// payment method. Every known method gets a row even with zero activity.
func BuildPaymentReport(orders []*models.Order) []PaymentReportRow {
	methods := []models.PaymentMethod{models.PaymentMethodCash, models.PaymentMethodCard}

	byMethod := make(map[models.PaymentMethod]*PaymentReportRow, len(methods))
	rows := make([]PaymentReportRow, len(methods))
	for i, method := range methods {
		rows[i] = PaymentReportRow{Method: string(method)}
		byMethod[method] = &rows[i]
	}

	for _, order := range countedOrders(orders) {
		row, ok := byMethod[order.PaymentMethod]
		if !ok {
			continue
		}
		row.TotalAmount = row.TotalAmount.Add(order.Total)
		row.TransactionCount++
	}

	for i := range rows {
		if rows[i].TransactionCount > 0 {
			rows[i].AverageTransaction = rows[i].TotalAmount.DivRound(decimal.NewFromInt(int64(rows[i].TransactionCount)), 4)
		}
	}
	return rows
}
