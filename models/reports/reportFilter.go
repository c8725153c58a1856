package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
)

// Filter is the window every report kind shares. UserId of 0 means all users.
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
	UserId    int
}

// DefaultWindow is the trailing 30 days ending today, used when the request
// omits dates.
func DefaultWindow(now time.Time) (time.Time, time.Time) {
	return utils.StartOfDay(now.AddDate(0, 0, -30)), utils.EndOfDay(now)
}

// PreviousWindow is the immediately preceding period of identical length,
// the comparison base for period-over-period growth.
func (f Filter) PreviousWindow() Filter {
	length := f.EndDate.Sub(f.StartDate)
	return Filter{
		StartDate: f.StartDate.Add(-length - time.Nanosecond),
		EndDate:   f.StartDate.Add(-time.Nanosecond),
		UserId:    f.UserId,
	}
}

// fetchWindowOrders loads every order in the window, cancelled ones included.
// The reducers decide per report which statuses count.
func fetchWindowOrders(ctx context.Context, filter Filter) ([]*models.Order, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at >= ? AND created_at <= ?", filter.StartDate, filter.EndDate)
	if filter.UserId > 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}

	var orders []*models.Order
	err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// countedOrders filters the fetched window down to the orders reports count,
// everything except cancelled.
func countedOrders(orders []*models.Order) []*models.Order {
	counted := make([]*models.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status != models.OrderStatusCancelled {
			counted = append(counted, order)
		}
	}
	return counted
}
