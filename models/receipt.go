package models

import "time"

// Receipt is the checkout artifact generated once an order is paid.
type Receipt struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Number    string  `gorm:"type:varchar(64);uniqueIndex" json:"number"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID" json:"-"`
	PaymentID uint    `gorm:"not null" json:"payment_id"`
	Payment   Payment `gorm:"foreignKey:PaymentID" json:"-"`

	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type ReceiptItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ReceiptID uint    `gorm:"not null" json:"receipt_id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal  float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
