package models

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDiscount is embedded on the order. Value is what the cashier entered,
// Amount is the computed money it took off the subtotal.
type OrderDiscount struct {
	Type   DiscountType    `gorm:"size:20;not null;default:percentage" json:"type"`
	Value  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"value"`
	Amount decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"amount"`
}

// OrderItem keeps its own price snapshot so later catalogue edits never
// rewrite history.
type OrderItem struct {
	ID        int             `gorm:"primary_key" json:"id"`
	OrderId   int             `gorm:"index;not null" json:"order_id"`
	ProductId int             `gorm:"index;not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
}

type Order struct {
	ID            int             `gorm:"primary_key" json:"id"`
	CustomerId    int             `gorm:"index;not null" json:"customer_id"`
	Customer      *Customer       `json:"customer,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderId" json:"items"`
	Discount      OrderDiscount   `gorm:"embedded;embeddedPrefix:discount_" json:"discount"`
	Shipping      decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"shipping"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"subtotal"`
	Total         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`
	Status        OrderStatus     `gorm:"size:20;index;not null;default:pending" json:"status"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null;default:cash" json:"payment_method"`
	UserId        int             `gorm:"index" json:"user_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewOrderCustomer either names an existing customer by id or carries the
// name/phone pair for a walk-in.
type NewOrderCustomer struct {
	ID           int        `json:"_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	BirthdayDate *time.Time `json:"birthdayDate"`
}

// NewOrderItem accepts the product id under either key clients send.
type NewOrderItem struct {
	ID       int              `json:"_id"`
	Product  int              `json:"product"`
	Quantity int              `json:"quantity" binding:"required,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

// ResolveProductId prefers the "_id" spelling over "product".
func (i NewOrderItem) ResolveProductId() int {
	if i.ID > 0 {
		return i.ID
	}
	return i.Product
}

type NewOrderDiscount struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type NewOrder struct {
	Customer      NewOrderCustomer  `json:"customer" binding:"required"`
	Items         []NewOrderItem    `json:"items" binding:"required,min=1,dive"`
	Discount      *NewOrderDiscount `json:"discount"`
	Shipping      *decimal.Decimal  `json:"shipping"`
	Status        OrderStatus       `json:"status"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
}

// UpdateOrderInput is sparse: nil/empty fields keep the stored value.
type UpdateOrderInput struct {
	Customer      *int              `json:"customer"`
	Items         []NewOrderItem    `json:"items"`
	Discount      *NewOrderDiscount `json:"discount"`
	Shipping      *decimal.Decimal  `json:"shipping"`
	Status        OrderStatus       `json:"status"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
}

// snapshotLinePrice picks the unit price recorded on the line: the supplied
// override when non-zero, else the product's sale price, else regular price.
func snapshotLinePrice(override *decimal.Decimal, product *Product) decimal.Decimal {
	if override != nil && !override.IsZero() {
		return *override
	}
	if !product.SalePrice.IsZero() {
		return product.SalePrice
	}
	return product.RegularPrice
}

// resolveOrderCustomer returns the customer id an order should attach to.
// An explicit id must exist; otherwise the phone is looked up and a missing
// customer is created on the spot, inside the order's transaction.
func resolveOrderCustomer(tx *gorm.DB, input NewOrderCustomer) (int, error) {
	if input.ID > 0 {
		var customer Customer
		err := tx.First(&customer, input.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCustomerNotFound
		}
		if err != nil {
			return 0, err
		}
		return customer.ID, nil
	}

	if input.Name == "" || input.Phone == "" {
		return 0, ErrCustomerDetailsRequired
	}

	var customer Customer
	err := tx.Where("phone = ?", input.Phone).First(&customer).Error
	if err == nil {
		return customer.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	customer = Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		BirthdayDate: input.BirthdayDate,
	}
	if err := createCustomerTx(tx, &customer); err != nil {
		return 0, err
	}
	return customer.ID, nil
}

func itemQuantities(items []OrderItem) []ItemQuantity {
	quantities := make([]ItemQuantity, 0, len(items))
	for _, item := range items {
		quantities = append(quantities, ItemQuantity{ProductId: item.ProductId, Quantity: item.Quantity})
	}
	return quantities
}

func lineAmounts(items []OrderItem) []utils.LineAmount {
	lines := make([]utils.LineAmount, 0, len(items))
	for _, item := range items {
		lines = append(lines, utils.LineAmount{Price: item.Price, Quantity: item.Quantity})
	}
	return lines
}

// CreateOrder places an order in a single transaction: resolve the customer,
// validate every product and its availability, snapshot prices, compute
// totals, assign the sequential id, insert, then deduct stock. Any failure
// rolls the whole thing back, including an implicitly created customer.
func CreateOrder(ctx context.Context, input *NewOrder) (*Order, error) {
	db := config.GetDB()

	status := input.Status
	if status == "" {
		status = OrderStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = PaymentMethodCash
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	discount := OrderDiscount{Type: DiscountTypePercentage}
	if input.Discount != nil {
		discountType := input.Discount.Type
		if discountType == "" {
			discountType = DiscountTypePercentage
		}
		if !discountType.IsValid() {
			return nil, ErrInvalidDiscountType
		}
		discount.Type = discountType
		discount.Value = input.Discount.Value
	}

	shipping := decimal.Zero
	if input.Shipping != nil {
		shipping = *input.Shipping
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	customerId, err := resolveOrderCustomer(tx.WithContext(ctx), input.Customer)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	items := make([]OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := getProductTx(tx.WithContext(ctx), line.ResolveProductId())
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := checkStockAvailable(product, line.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}
		items = append(items, OrderItem{
			ProductId: product.ID,
			Quantity:  line.Quantity,
			Price:     snapshotLinePrice(line.Price, product),
		})
	}

	totals := utils.CalculateOrderTotals(lineAmounts(items), string(discount.Type), discount.Value, shipping)
	discount.Amount = totals.DiscountAmount

	order := Order{
		CustomerId:    customerId,
		Items:         items,
		Discount:      discount,
		Shipping:      shipping,
		Subtotal:      totals.Subtotal,
		Total:         totals.Total,
		Status:        status,
		PaymentMethod: paymentMethod,
	}
	if userId, ok := utils.GetUserIdFromContext(ctx); ok {
		order.UserId = userId
	}

	id, err := NextSequence(tx.WithContext(ctx), "Order")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	order.ID = id

	if err := tx.WithContext(ctx).Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Deduct only after the insert, so a failed insert never touches stock.
	for _, item := range order.Items {
		if err := adjustProductStock(tx.WithContext(ctx), item.ProductId, -item.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return GetOrder(ctx, order.ID)
}

func GetOrder(ctx context.Context, id int) (*Order, error) {
	db := config.GetDB()

	var order Order
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type OrderListFilter struct {
	Status     OrderStatus
	CustomerId int
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// PaginateOrders lists orders newest-first. Search matches an exact customer
// phone first and falls back to the numeric order id; a search that matches
// neither returns an empty page rather than everything.
func PaginateOrders(ctx context.Context, filter OrderListFilter) ([]*Order, int64, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerId > 0 {
		query = query.Where("customer_id = ?", filter.CustomerId)
	}
	if filter.Search != "" {
		var customerIds []int
		err := db.WithContext(ctx).Model(&Customer{}).
			Where("phone = ?", filter.Search).
			Pluck("id", &customerIds).Error
		if err != nil {
			return nil, 0, err
		}
		if len(customerIds) > 0 {
			query = query.Where("customer_id IN ?", customerIds)
		} else {
			id, _ := strconv.Atoi(filter.Search)
			query = query.Where("id = ?", id)
		}
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []*Order
	err := query.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page, filter.Limit)).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateOrder applies a sparse update in one transaction. The status
// transition's stock effect runs first (return all on entering cancelled,
// re-deduct on leaving it), then item changes are reconciled per-product
// against what the order currently holds. An items payload arriving together
// with a move into cancelled is discarded, since a cancelled order holds no
// reservation to reshape.
func UpdateOrder(ctx context.Context, id int, input *UpdateOrderInput) (*Order, error) {
	db := config.GetDB()

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var order Order
	err := tx.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, ErrOrderNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	oldStatus := order.Status
	newStatus := oldStatus
	if input.Status != "" {
		if !input.Status.IsValid() {
			tx.Rollback()
			return nil, ErrInvalidStatus
		}
		newStatus = input.Status
	}

	switch StockEffectForTransition(oldStatus, newStatus) {
	case StockEffectReturnAll:
		if err := returnOrderStock(tx.WithContext(ctx), order.Items); err != nil {
			tx.Rollback()
			return nil, err
		}
	case StockEffectRededuct:
		if err := deductOrderStock(tx.WithContext(ctx), order.Items); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	items := order.Items
	itemsChanged := false
	if input.Items != nil && newStatus != OrderStatusCancelled {
		oldPrices := make(map[int]decimal.Decimal, len(order.Items))
		for _, item := range order.Items {
			oldPrices[item.ProductId] = item.Price
		}

		newItems := make([]OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := getProductTx(tx.WithContext(ctx), line.ResolveProductId())
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			price := snapshotLinePrice(line.Price, product)
			if line.Price == nil || line.Price.IsZero() {
				// keep the original snapshot for lines that survive the edit
				if old, ok := oldPrices[product.ID]; ok {
					price = old
				}
			}
			newItems = append(newItems, OrderItem{
				OrderId:   order.ID,
				ProductId: product.ID,
				Quantity:  line.Quantity,
				Price:     price,
			})
		}

		changes := PlanItemStockChanges(itemQuantities(order.Items), itemQuantities(newItems))
		if err := applyStockChanges(tx.WithContext(ctx), changes); err != nil {
			tx.Rollback()
			return nil, err
		}

		items = newItems
		itemsChanged = true
	}

	discount := order.Discount
	if input.Discount != nil {
		discountType := input.Discount.Type
		if discountType == "" {
			discountType = DiscountTypePercentage
		}
		if !discountType.IsValid() {
			tx.Rollback()
			return nil, ErrInvalidDiscountType
		}
		discount = OrderDiscount{Type: discountType, Value: input.Discount.Value}
	}

	shipping := order.Shipping
	if input.Shipping != nil {
		shipping = *input.Shipping
	}

	totals := utils.CalculateOrderTotals(lineAmounts(items), string(discount.Type), discount.Value, shipping)
	discount.Amount = totals.DiscountAmount

	if input.Customer != nil && *input.Customer != order.CustomerId {
		var customer Customer
		err := tx.WithContext(ctx).First(&customer, *input.Customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return nil, ErrCustomerNotFound
		}
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		order.CustomerId = customer.ID
	}

	if input.PaymentMethod != "" {
		if !input.PaymentMethod.IsValid() {
			tx.Rollback()
			return nil, ErrInvalidPaymentMethod
		}
		order.PaymentMethod = input.PaymentMethod
	}

	if itemsChanged {
		if err := tx.WithContext(ctx).Where("order_id = ?", order.ID).Delete(&OrderItem{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderId = order.ID
		}
		if len(items) > 0 {
			if err := tx.WithContext(ctx).Create(&items).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	order.Items = nil
	order.Discount = discount
	order.Shipping = shipping
	order.Subtotal = totals.Subtotal
	order.Total = totals.Total
	order.Status = newStatus

	if err := tx.WithContext(ctx).Omit("Items").Save(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return GetOrder(ctx, id)
}

// DeleteOrder removes the order and its lines, returning reserved stock
// first unless the order was already cancelled.
func DeleteOrder(ctx context.Context, id int) error {
	db := config.GetDB()

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var order Order
	err := tx.WithContext(ctx).Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return ErrOrderNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if order.Status != OrderStatusCancelled {
		if err := returnOrderStock(tx.WithContext(ctx), order.Items); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.WithContext(ctx).Where("order_id = ?", order.ID).Delete(&OrderItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.WithContext(ctx).Delete(&order).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
