package models

import "testing"

func TestStockEffectForTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		expected StockEffect
	}{
		{OrderStatusPending, OrderStatusCancelled, StockEffectReturnAll},
		{OrderStatusCompleted, OrderStatusCancelled, StockEffectReturnAll},
		{OrderStatusCancelled, OrderStatusPending, StockEffectRededuct},
		{OrderStatusCancelled, OrderStatusCompleted, StockEffectRededuct},
		{OrderStatusPending, OrderStatusCompleted, StockEffectNone},
		{OrderStatusCompleted, OrderStatusPending, StockEffectNone},
		{OrderStatusCancelled, OrderStatusCancelled, StockEffectNone},
		{OrderStatusPending, OrderStatusPending, StockEffectNone},
	}
	for _, tc := range cases {
		if got := StockEffectForTransition(tc.from, tc.to); got != tc.expected {
			t.Fatalf("transition %s -> %s: expected effect %v, got %v", tc.from, tc.to, tc.expected, got)
		}
	}
}

func TestPlanItemStockChanges_QuantityGrown(t *testing.T) {
	changes := PlanItemStockChanges(
		[]ItemQuantity{{ProductId: 1, Quantity: 3}},
		[]ItemQuantity{{ProductId: 1, Quantity: 5}},
	)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].ProductId != 1 || changes[0].Delta != -2 {
		t.Fatalf("expected product 1 delta -2, got product %d delta %d", changes[0].ProductId, changes[0].Delta)
	}
}

func TestPlanItemStockChanges_QuantityShrunk(t *testing.T) {
	changes := PlanItemStockChanges(
		[]ItemQuantity{{ProductId: 1, Quantity: 5}},
		[]ItemQuantity{{ProductId: 1, Quantity: 2}},
	)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Delta != 3 {
		t.Fatalf("expected 3 units returned, got delta %d", changes[0].Delta)
	}
}

func TestPlanItemStockChanges_AddedAndRemoved(t *testing.T) {
	changes := PlanItemStockChanges(
		[]ItemQuantity{{ProductId: 1, Quantity: 2}, {ProductId: 2, Quantity: 4}},
		[]ItemQuantity{{ProductId: 1, Quantity: 2}, {ProductId: 3, Quantity: 1}},
	)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].ProductId != 3 || changes[0].Delta != -1 {
		t.Fatalf("expected added product 3 to deduct 1, got product %d delta %d", changes[0].ProductId, changes[0].Delta)
	}
	if changes[1].ProductId != 2 || changes[1].Delta != 4 {
		t.Fatalf("expected removed product 2 to return 4, got product %d delta %d", changes[1].ProductId, changes[1].Delta)
	}
}

func TestPlanItemStockChanges_UnchangedIsNoop(t *testing.T) {
	changes := PlanItemStockChanges(
		[]ItemQuantity{{ProductId: 1, Quantity: 2}, {ProductId: 2, Quantity: 1}},
		[]ItemQuantity{{ProductId: 1, Quantity: 2}, {ProductId: 2, Quantity: 1}},
	)
	if len(changes) != 0 {
		t.Fatalf("expected no changes for identical item sets, got %d", len(changes))
	}
}

func TestPlanItemStockChanges_DuplicateLinesSumQuantities(t *testing.T) {
	changes := PlanItemStockChanges(
		nil,
		[]ItemQuantity{{ProductId: 1, Quantity: 2}, {ProductId: 1, Quantity: 3}},
	)
	if len(changes) != 1 {
		t.Fatalf("expected a single combined change, got %d", len(changes))
	}
	if changes[0].Delta != -5 {
		t.Fatalf("expected combined deduction of 5, got delta %d", changes[0].Delta)
	}
}

func TestCheckStockAvailable(t *testing.T) {
	product := &Product{Name: "Widget", Stock: 3}

	if err := checkStockAvailable(product, 3); err != nil {
		t.Fatalf("expected quantity equal to stock to pass, got %v", err)
	}

	err := checkStockAvailable(product, 4)
	insufficient, ok := err.(*InsufficientStockError)
	if !ok {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 3 || insufficient.Requested != 4 || insufficient.ProductName != "Widget" {
		t.Fatalf("unexpected error detail: %+v", insufficient)
	}
}
