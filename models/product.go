package models

import "time"

type Product struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string   `gorm:"type:varchar(255); not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"type:decimal(10,2); not null" json:"price"`
	ImageUrl    *string  `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Available   bool     `gorm:"not null;default:true" json:"available"`

	// Stock control is opt-in; products with StockManagement=false are
	// never touched by the inventory ledger.
	StockManagement bool `gorm:"not null;default:false" json:"stock_management"`
	StockQuantity   int  `gorm:"not null;default:0" json:"stock_quantity"`
	StockReserved   int  `gorm:"not null;default:0" json:"stock_reserved"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
