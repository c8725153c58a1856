package reports

import (
	"context"
	"fmt"
	"sort"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/shopspring/decimal"
)

// TopProductLimit caps the best-sellers list.
const TopProductLimit = 20

type ProductSalesRow struct {
	ProductId    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	QuantitySold int             `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
	TimesOrdered int             `json:"timesOrdered"`
}

type LowStockRow struct {
	ProductId int    `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
}

type ProductReportResponse struct {
	TopProducts []ProductSalesRow `json:"topProducts"`
	LowStock    []LowStockRow     `json:"lowStock"`
}

func GetProductReport(ctx context.Context, filter Filter) (*ProductReportResponse, error) {
	key := cacheKey("products", filter)
	var cached ProductReportResponse
	if hit, err := cacheGet(key, &cached); err == nil && hit {
		return &cached, nil
	}

	orders, err := fetchWindowOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	products, err := models.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := &ProductReportResponse{
		TopProducts: BuildProductSales(orders),
		LowStock:    BuildLowStockList(products),
	}
	cacheSet(key, report)
	return report, nil
}

// BuildProductSales aggregates per-product sales over the window's
// non-cancelled orders and keeps the top sellers by revenue.
func BuildProductSales(orders []*models.Order) []ProductSalesRow {
	byProduct := make(map[int]*ProductSalesRow)
	for _, order := range countedOrders(orders) {
		for _, item := range order.Items {
			row, ok := byProduct[item.ProductId]
			if !ok {
				name := fmt.Sprintf("#%d", item.ProductId)
				if item.Product != nil {
					name = item.Product.Name
				}
				row = &ProductSalesRow{ProductId: item.ProductId, ProductName: name}
				byProduct[item.ProductId] = row
			}
			row.QuantitySold += item.Quantity
			row.Revenue = row.Revenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			row.TimesOrdered++
		}
	}

	rows := make([]ProductSalesRow, 0, len(byProduct))
	for _, row := range byProduct {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > TopProductLimit {
		rows = rows[:TopProductLimit]
	}
	return rows
}

// BuildLowStockList picks the products running below their threshold,
// emptiest shelf first.
func BuildLowStockList(products []*models.Product) []LowStockRow {
	rows := []LowStockRow{}
	for _, product := range products {
		if !product.IsLowStock() {
			continue
		}
		rows = append(rows, LowStockRow{
			ProductId: product.ID,
			Name:      product.Name,
			Stock:     product.Stock,
			MinStock:  product.MinStockThreshold(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Stock < rows[j].Stock
	})
	return rows
}
