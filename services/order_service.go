package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// Table statuses
const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
)

// Order payment statuses
const (
	OrderPaymentPending = "pending"
	OrderPaymentPaid    = "paid"
)

// OrderService coordinates the order lifecycle: it validates status
// transitions and fans out the inventory and table side effects. Every
// multi-step sequence runs inside one database transaction, so a failed
// side effect rolls the status write back with it.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderItemInput is one line of an incoming order.
type OrderItemInput struct {
	ProductID    uint
	Quantity     int
	Observations string
}

// OrderInput is the order-placement payload.
type OrderInput struct {
	TableID         *uint
	CustomerName    string
	IsDelivery      bool
	DeliveryAddress string
	Items           []OrderItemInput
}

// CreateOrder places a new order: prices the items from the catalog,
// reserves stock for each of them and marks a dine-in table occupied.
func (s *OrderService) CreateOrder(in OrderInput, actingUserID uint) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			TableID:         in.TableID,
			CustomerName:    in.CustomerName,
			Status:          OrderStatusPending,
			IsDelivery:      in.IsDelivery,
			DeliveryAddress: in.DeliveryAddress,
			PaymentStatus:   OrderPaymentPending,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if in.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *in.TableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTableNotFound
				}
				return err
			}
			order.TableNumber = table.Number
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, it := range in.Items {
			var product models.Product
			if err := tx.First(&product, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			item := models.OrderItem{
				OrderID:      order.ID,
				ProductID:    product.ID,
				Quantity:     it.Quantity,
				Price:        product.Price,
				Observations: it.Observations,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
			total += float64(it.Quantity) * product.Price
		}

		order.Total = total
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		if err := reserveStockForOrder(tx, &order, actingUserID); err != nil {
			return err
		}

		if in.TableID != nil {
			return tx.Model(&models.Table{}).Where("id = ?", *in.TableID).
				Updates(map[string]interface{}{
					"status":           TableStatusOccupied,
					"current_order_id": order.ID,
					"updated_at":       time.Now(),
				}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d created (table=%v, total=%.2f)", order.ID, in.TableID, order.Total)
	return &order, nil
}

// UpdateOrderStatus moves an order to newStatus and fires the side
// effects tied to the target status.
//
// Delivered and canceled are terminal: once there, any different target
// fails with ErrInvalidTransition. Re-sending the current status is an
// idempotent no-op, so side effects never double-apply.
func (s *OrderService) UpdateOrderStatus(orderID uint, newStatus string, actingUserID uint) (*models.Order, error) {
	switch newStatus {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCanceled:
	default:
		return nil, fmt.Errorf("unknown order status %q", newStatus)
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.Status == newStatus {
			return nil // no change, no side effects
		}
		if order.Status == OrderStatusDelivered || order.Status == OrderStatusCanceled {
			return ErrInvalidTransition
		}

		switch newStatus {
		case OrderStatusCanceled:
			if order.Status == OrderStatusReady {
				// Reservations were already finalized; put the
				// units back on the shelf instead of releasing.
				if err := restockOrderItems(tx, &order, actingUserID); err != nil {
					return err
				}
			} else {
				if err := releaseReservedStock(tx, &order, actingUserID); err != nil {
					return err
				}
			}
		case OrderStatusReady:
			if err := finalizeStockReduction(tx, &order, actingUserID); err != nil {
				return err
			}
		case OrderStatusDelivered:
			now := time.Now()
			order.CompletedAt = &now
			if order.TableID != nil {
				if err := freeTable(tx, *order.TableID); err != nil {
					return err
				}
			}
		}

		order.Status = newStatus
		order.UpdatedAt = time.Now()
		return tx.Save(&order).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("Status change failed for order %d -> %s: %v", orderID, newStatus, err)
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d status -> %s (by user %d)", order.ID, order.Status, actingUserID)
	return &order, nil
}

// freeTable releases the table once its order is delivered.
func freeTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).Where("id = ?", tableID).
		Updates(map[string]interface{}{
			"status":           TableStatusAvailable,
			"current_order_id": nil,
			"updated_at":       time.Now(),
		}).Error
}

// GetOrder loads one order with its items.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders, newest first, optionally filtered by status.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	q := s.db.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListKitchenQueue returns the orders the kitchen still has to work on,
// oldest first.
func (s *OrderService) ListKitchenQueue() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("status IN ?", []string{OrderStatusPending, OrderStatusPreparing}).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListUnpaidDelivered returns delivered orders still waiting for payment,
// the cashier's checkout queue.
func (s *OrderService) ListUnpaidDelivered() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("status = ? AND payment_status = ?", OrderStatusDelivered, OrderPaymentPending).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
