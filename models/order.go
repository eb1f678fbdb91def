package models

import "time"

type Order struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	TableID      *uint   `gorm:"index" json:"table_id,omitempty"`
	TableNumber  int     `json:"table_number,omitempty"`
	CustomerName string  `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending, preparing, ready, delivered, canceled
	Total        float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`

	IsDelivery      bool   `gorm:"not null;default:false" json:"is_delivery"`
	DeliveryAddress string `gorm:"type:text" json:"delivery_address,omitempty"`

	PaymentStatus string `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"` // pending, paid
	PaymentMethod string `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	PaymentID     *uint  `json:"payment_id,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
