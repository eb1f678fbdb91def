package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandersilva5/foodie-hub-api/models"
)

func TestCreateOrderReservesStockAndOccupiesTable(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Feijoada", 10, true)
	table := seedTable(t, db, 7)

	order, err := orders.CreateOrder(OrderInput{
		TableID: &table.ID,
		Items:   []OrderItemInput{{ProductID: product.ID, Quantity: 2, Observations: "no onions"}},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, 20.0, order.Total)
	assert.Equal(t, 7, order.TableNumber)

	got := reloadProduct(t, db, product.ID)
	assert.Equal(t, 8, got.StockQuantity)
	assert.Equal(t, 2, got.StockReserved)

	var gotTable models.Table
	assert.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.Equal(t, TableStatusOccupied, gotTable.Status)
	assert.NotNil(t, gotTable.CurrentOrderID)
	assert.Equal(t, order.ID, *gotTable.CurrentOrderID)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	_, err := orders.CreateOrder(OrderInput{}, 1)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)

	_, err := orders.UpdateOrderStatus(42, OrderStatusPreparing, 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTerminalStatusesAreLocked(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Moqueca", 10, true)

	for _, terminal := range []string{OrderStatusDelivered, OrderStatusCanceled} {
		order, err := orders.CreateOrder(OrderInput{
			Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		}, 1)
		assert.NoError(t, err)

		_, err = orders.UpdateOrderStatus(order.ID, terminal, 1)
		assert.NoError(t, err)

		for _, target := range []string{OrderStatusPending, OrderStatusPreparing, OrderStatusReady} {
			_, err = orders.UpdateOrderStatus(order.ID, target, 1)
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s to %s", terminal, target)
		}

		// Stored status unchanged
		var got models.Order
		assert.NoError(t, db.First(&got, order.ID).Error)
		assert.Equal(t, terminal, got.Status)
	}
}

func TestRepeatedTransitionIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Picanha", 10, true)

	order, err := orders.CreateOrder(OrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	}, 1)
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusReady, 1)
	assert.NoError(t, err)
	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusReady, 1)
	assert.NoError(t, err)

	// Finalization must not double-apply
	var outs int64
	db.Model(&models.InventoryTransaction{}).
		Where("product_id = ? AND type = ?", product.ID, StockTypeOut).
		Count(&outs)
	assert.Equal(t, int64(1), outs)

	got := reloadProduct(t, db, product.ID)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Equal(t, 0, got.StockReserved)
}

func TestDeliveredSetsCompletedAtAndFreesTable(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Pastel", 10, true)
	table := seedTable(t, db, 3)

	order, err := orders.CreateOrder(OrderInput{
		TableID: &table.ID,
		Items:   []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}, 1)
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusReady, 1)
	assert.NoError(t, err)
	updated, err := orders.UpdateOrderStatus(order.ID, OrderStatusDelivered, 1)
	assert.NoError(t, err)
	assert.NotNil(t, updated.CompletedAt)

	var gotTable models.Table
	assert.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.Equal(t, TableStatusAvailable, gotTable.Status)
	assert.Nil(t, gotTable.CurrentOrderID)
}

func TestCancelReleasesEveryItem(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	first := seedProduct(t, db, "Arroz", 10, true)
	second := seedProduct(t, db, "Feijao", 6, true)

	order, err := orders.CreateOrder(OrderInput{
		Items: []OrderItemInput{
			{ProductID: first.ID, Quantity: 2},
			{ProductID: second.ID, Quantity: 4},
		},
	}, 1)
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusCanceled, 1)
	assert.NoError(t, err)

	// One released transaction per item
	var released []models.InventoryTransaction
	db.Where("type = ?", StockTypeReleased).Find(&released)
	assert.Len(t, released, 2)
	for _, entry := range released {
		assert.Equal(t, StockReasonReturn, entry.Reason)
		assert.NotNil(t, entry.OrderID)
		assert.Equal(t, order.ID, *entry.OrderID)
	}

	// Counters back to pre-reservation values
	gotFirst := reloadProduct(t, db, first.ID)
	assert.Equal(t, 10, gotFirst.StockQuantity)
	assert.Equal(t, 0, gotFirst.StockReserved)
	gotSecond := reloadProduct(t, db, second.ID)
	assert.Equal(t, 6, gotSecond.StockQuantity)
	assert.Equal(t, 0, gotSecond.StockReserved)
}

func TestCancelAfterReadyRestocksSoldUnits(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Coxinha", 10, true)

	order, err := orders.CreateOrder(OrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 4}},
	}, 1)
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusReady, 1)
	assert.NoError(t, err)
	_, err = orders.UpdateOrderStatus(order.ID, OrderStatusCanceled, 1)
	assert.NoError(t, err)

	// Reservation was already finalized, so cancellation restocks
	// instead of releasing.
	got := reloadProduct(t, db, product.ID)
	assert.Equal(t, 10, got.StockQuantity)
	assert.Equal(t, 0, got.StockReserved)

	var restocks int64
	db.Model(&models.InventoryTransaction{}).
		Where("product_id = ? AND type = ? AND reason = ?", product.ID, StockTypeIn, StockReasonReturn).
		Count(&restocks)
	assert.Equal(t, int64(1), restocks)
}

func TestUnknownStatusRejected(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	product := seedProduct(t, db, "Suco", 5, true)

	order, err := orders.CreateOrder(OrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}, 1)
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, "shipped", 1)
	assert.Error(t, err)
}
