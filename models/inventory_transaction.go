package models

import "time"

// InventoryTransaction is an append-only audit row, one per stock
// mutation. Rows are never updated or deleted.
type InventoryTransaction struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Type      string  `gorm:"type:varchar(20);not null" json:"type"` // in, out, reserved, released
	Quantity  int     `gorm:"not null" json:"quantity"`
	OrderID   *uint   `gorm:"index" json:"order_id,omitempty"`
	Reason    string  `gorm:"type:varchar(20);not null" json:"reason"` // purchase, sale, adjustment, return, loss
	Notes     string  `gorm:"type:text" json:"notes,omitempty"`
	UserID    uint    `gorm:"not null" json:"user_id"`

	PreviousQuantity int `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int `gorm:"not null" json:"new_quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
