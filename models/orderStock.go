package models

import (
	"errors"

	"gorm.io/gorm"
)

// ItemQuantity is the product/quantity projection of one order line.
type ItemQuantity struct {
	ProductId int
	Quantity  int
}

// StockChange is a signed adjustment to one product's stock count.
// Positive deltas return units to the shelf, negative deltas reserve them.
type StockChange struct {
	ProductId int
	Delta     int
}

// StockEffect names how a status transition touches inventory.
type StockEffect int

const (
	StockEffectNone StockEffect = iota
	// StockEffectReturnAll: the order enters cancelled, every reserved unit
	// goes back to stock.
	StockEffectReturnAll
	// StockEffectRededuct: the order leaves cancelled, every unit must be
	// reserved again (and may no longer be available).
	StockEffectRededuct
)

// StockEffectForTransition maps an old/new status pair to its inventory
// effect. Same-status transitions are always a no-op, which is what makes
// cancelling an already-cancelled order idempotent.
func StockEffectForTransition(oldStatus, newStatus OrderStatus) StockEffect {
	if oldStatus == newStatus {
		return StockEffectNone
	}
	if newStatus == OrderStatusCancelled {
		return StockEffectReturnAll
	}
	if oldStatus == OrderStatusCancelled {
		return StockEffectRededuct
	}
	return StockEffectNone
}

// PlanItemStockChanges computes the per-product stock deltas needed to move
// an order's reservation from oldItems to newItems: grown quantities deduct
// the difference, shrunk quantities return it, removed products return their
// full quantity and added products deduct theirs. Order of the result follows
// the new item list, with removals appended in old-list order.
func PlanItemStockChanges(oldItems, newItems []ItemQuantity) []StockChange {
	oldQty := make(map[int]int, len(oldItems))
	for _, item := range oldItems {
		oldQty[item.ProductId] += item.Quantity
	}
	newQty := make(map[int]int, len(newItems))
	for _, item := range newItems {
		newQty[item.ProductId] += item.Quantity
	}

	var changes []StockChange
	seen := make(map[int]bool, len(newItems))
	for _, item := range newItems {
		if seen[item.ProductId] {
			continue
		}
		seen[item.ProductId] = true
		diff := newQty[item.ProductId] - oldQty[item.ProductId]
		if diff != 0 {
			changes = append(changes, StockChange{ProductId: item.ProductId, Delta: -diff})
		}
	}

	removed := make(map[int]bool, len(oldItems))
	for _, item := range oldItems {
		if _, ok := newQty[item.ProductId]; ok || removed[item.ProductId] {
			continue
		}
		removed[item.ProductId] = true
		changes = append(changes, StockChange{ProductId: item.ProductId, Delta: oldQty[item.ProductId]})
	}

	return changes
}

// getProductTx loads a product inside the caller's transaction.
func getProductTx(tx *gorm.DB, productId int) (*Product, error) {
	var product Product
	err := tx.First(&product, productId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// checkStockAvailable is the pre-deduction availability check. It must run
// before the matching adjustProductStock call.
func checkStockAvailable(product *Product, requested int) error {
	if product.Stock < requested {
		return &InsufficientStockError{
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   requested,
		}
	}
	return nil
}

// adjustProductStock applies one signed delta with the store's atomic
// increment, never a read-modify-write in application code. The availability
// check above and this adjustment leave a narrow window where two concurrent
// deductions both pass, so after any deduction the row is re-read and a
// StockConsistencyError aborts the surrounding transaction if stock went
// negative.
func adjustProductStock(tx *gorm.DB, productId int, delta int) error {
	if delta == 0 {
		return nil
	}
	if err := tx.Exec("UPDATE products SET stock = stock + ? WHERE id = ?", delta, productId).Error; err != nil {
		return err
	}
	if delta < 0 {
		product, err := getProductTx(tx, productId)
		if err != nil {
			return err
		}
		if product.Stock < 0 {
			return &StockConsistencyError{ProductName: product.Name}
		}
	}
	return nil
}

// applyStockChanges validates availability per deduction and applies every
// delta. Callers run it inside a transaction so a mid-list failure leaves no
// partial adjustment behind.
func applyStockChanges(tx *gorm.DB, changes []StockChange) error {
	for _, change := range changes {
		if change.Delta < 0 {
			product, err := getProductTx(tx, change.ProductId)
			if err != nil {
				return err
			}
			if err := checkStockAvailable(product, -change.Delta); err != nil {
				return err
			}
		}
		if err := adjustProductStock(tx, change.ProductId, change.Delta); err != nil {
			return err
		}
	}
	return nil
}

// returnOrderStock gives every reserved unit of the given lines back.
func returnOrderStock(tx *gorm.DB, items []OrderItem) error {
	for _, item := range items {
		if err := adjustProductStock(tx, item.ProductId, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// deductOrderStock reserves every unit of the given lines, validating
// availability per item before touching it.
func deductOrderStock(tx *gorm.DB, items []OrderItem) error {
	for _, item := range items {
		product, err := getProductTx(tx, item.ProductId)
		if err != nil {
			return err
		}
		if err := checkStockAvailable(product, item.Quantity); err != nil {
			return err
		}
		if err := adjustProductStock(tx, item.ProductId, -item.Quantity); err != nil {
			return err
		}
	}
	return nil
}
