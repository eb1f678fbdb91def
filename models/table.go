package models

import "time"

type Table struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Number         int       `gorm:"not null;uniqueIndex" json:"number"`
	Seats          int       `gorm:"not null;default:4" json:"seats"`
	Status         string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"` // available, occupied, reserved
	CurrentOrderID *uint     `gorm:"index" json:"current_order_id,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
