package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

// Stock movement types
const (
	StockTypeIn       = "in"
	StockTypeOut      = "out"
	StockTypeReserved = "reserved"
	StockTypeReleased = "released"
)

// Stock movement reasons
const (
	StockReasonPurchase   = "purchase"
	StockReasonSale       = "sale"
	StockReasonAdjustment = "adjustment"
	StockReasonReturn     = "return"
	StockReasonLoss       = "loss"
)

// InventoryService maintains per-product available/reserved counters and
// the append-only transaction trail behind them.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// StockUpdate describes a single stock mutation.
type StockUpdate struct {
	ProductID uint
	Quantity  int
	Type      string
	Reason    string
	UserID    uint
	OrderID   *uint
	Notes     string
}

// UpdateStock applies one stock mutation in its own transaction.
// Products that do not opt into stock management are skipped silently.
func (s *InventoryService) UpdateStock(upd StockUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyStockUpdate(tx, upd)
	})
}

// applyStockUpdate mutates the counters inside tx. The product row is
// locked for the duration of the transaction so concurrent mutations of
// the same product serialize instead of racing read-modify-write.
func applyStockUpdate(tx *gorm.DB, upd StockUpdate) error {
	var product models.Product
	if err := lockForUpdate(tx).
		First(&product, upd.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if !product.StockManagement {
		// Deliberate no-op, not an error.
		return nil
	}

	previous := product.StockQuantity

	switch upd.Type {
	case StockTypeIn:
		product.StockQuantity += upd.Quantity
	case StockTypeOut:
		if product.StockQuantity < upd.Quantity {
			return ErrInsufficientStock
		}
		product.StockQuantity -= upd.Quantity
	case StockTypeReserved:
		if product.StockQuantity < upd.Quantity {
			return ErrInsufficientStock
		}
		product.StockQuantity -= upd.Quantity
		product.StockReserved += upd.Quantity
	case StockTypeReleased:
		if product.StockReserved < upd.Quantity {
			return ErrInsufficientReservedStock
		}
		product.StockReserved -= upd.Quantity
		product.StockQuantity += upd.Quantity
	default:
		return fmt.Errorf("unknown stock movement type %q", upd.Type)
	}

	product.UpdatedAt = time.Now()
	if err := tx.Save(&product).Error; err != nil {
		return err
	}

	entry := models.InventoryTransaction{
		ProductID:        product.ID,
		Type:             upd.Type,
		Quantity:         upd.Quantity,
		OrderID:          upd.OrderID,
		Reason:           upd.Reason,
		Notes:            upd.Notes,
		UserID:           upd.UserID,
		PreviousQuantity: previous,
		NewQuantity:      product.StockQuantity,
		CreatedAt:        time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Stock %s product=%d qty=%d (%d -> %d)",
		upd.Type, product.ID, upd.Quantity, previous, product.StockQuantity)
	return nil
}

// ReserveStockForOrder holds stock for every item on the order. Runs in a
// single transaction: either all items get reserved or none do.
func (s *InventoryService) ReserveStockForOrder(order *models.Order, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return reserveStockForOrder(tx, order, userID)
	})
}

func reserveStockForOrder(tx *gorm.DB, order *models.Order, userID uint) error {
	for _, item := range order.Items {
		upd := StockUpdate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Type:      StockTypeReserved,
			Reason:    StockReasonSale,
			UserID:    userID,
			OrderID:   &order.ID,
		}
		if err := applyStockUpdate(tx, upd); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseReservedStock returns every held unit of the order to available
// stock (order canceled before preparation finished).
func (s *InventoryService) ReleaseReservedStock(orderID uint, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOrderWithItems(tx, orderID)
		if err != nil {
			return err
		}
		return releaseReservedStock(tx, order, userID)
	})
}

func releaseReservedStock(tx *gorm.DB, order *models.Order, userID uint) error {
	for _, item := range order.Items {
		upd := StockUpdate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Type:      StockTypeReleased,
			Reason:    StockReasonReturn,
			UserID:    userID,
			OrderID:   &order.ID,
		}
		if err := applyStockUpdate(tx, upd); err != nil {
			return err
		}
	}
	return nil
}

// FinalizeStockReduction converts the order's reservations into completed
// sales. Physical stock was already decremented at reservation time, so
// only the reserved counter shrinks here; the audit row is of type "out".
func (s *InventoryService) FinalizeStockReduction(orderID uint, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOrderWithItems(tx, orderID)
		if err != nil {
			return err
		}
		return finalizeStockReduction(tx, order, userID)
	})
}

func finalizeStockReduction(tx *gorm.DB, order *models.Order, userID uint) error {
	for _, item := range order.Items {
		var product models.Product
		if err := lockForUpdate(tx).
			First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if !product.StockManagement {
			continue
		}

		reduced := item.Quantity
		if reduced > product.StockReserved {
			reduced = product.StockReserved // clamp, never negative
		}
		product.StockReserved -= reduced
		product.UpdatedAt = time.Now()
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		entry := models.InventoryTransaction{
			ProductID: product.ID,
			Type:      StockTypeOut,
			Quantity:  item.Quantity,
			OrderID:   &order.ID,
			Reason:    StockReasonSale,
			UserID:    userID,
			// StockQuantity untouched: the units left "available"
			// when they were reserved.
			PreviousQuantity: product.StockQuantity,
			NewQuantity:      product.StockQuantity,
			CreatedAt:        time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// restockOrderItems puts units back on the shelf for an order whose stock
// was already finalized (canceled after it reached ready).
func restockOrderItems(tx *gorm.DB, order *models.Order, userID uint) error {
	for _, item := range order.Items {
		upd := StockUpdate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Type:      StockTypeIn,
			Reason:    StockReasonReturn,
			UserID:    userID,
			OrderID:   &order.ID,
		}
		if err := applyStockUpdate(tx, upd); err != nil {
			return err
		}
	}
	return nil
}

// GetTransactions lists audit rows, newest first, optionally filtered by
// product.
func (s *InventoryService) GetTransactions(productID uint, limit int) ([]models.InventoryTransaction, error) {
	q := s.db.Order("created_at DESC, id DESC")
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []models.InventoryTransaction
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetLowStockProducts returns managed products at or below the threshold.
func (s *InventoryService) GetLowStockProducts(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Where("stock_management = ? AND stock_quantity <= ?", true, threshold).
		Order("stock_quantity ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func loadOrderWithItems(tx *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
