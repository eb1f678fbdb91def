package models

import "time"

// Payment represents a payment transaction for an order
type Payment struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ReferenceID string `json:"reference_id" gorm:"type:varchar(64);uniqueIndex"`
	OrderID     uint   `json:"order_id" gorm:"not null;index"`
	Order       Order  `json:"-" gorm:"foreignKey:OrderID"`
	UserID      *uint  `json:"user_id,omitempty"`
	StaffID     uint   `json:"staff_id"` // staff member who took the payment

	Method string  `json:"method" gorm:"type:varchar(20);not null;default:'cash'"` // cash, credit, debit, pix, app
	Amount float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	// Cash handling only: amount handed over and change returned
	AmountReceived float64 `json:"amount_received,omitempty" gorm:"type:decimal(10,2)"`
	Change         float64 `json:"change,omitempty" gorm:"type:decimal(10,2)"`

	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'completed'"` // completed, refunded, canceled, failed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
