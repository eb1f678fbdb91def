package models

import "time"

// RegisterSession brackets a period of cash-drawer activity between an
// open and a close event. ExpectedClosingAmount is a cash-only running
// projection: opening float plus every cash payment folded in. The
// difference against the counted drawer is computed once, at close.
type RegisterSession struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null" json:"user_id"`
	Status string `gorm:"type:varchar(20);not null;default:'open'" json:"status"` // open, closed

	OpeningAmount         float64 `gorm:"type:decimal(10,2);not null" json:"opening_amount"`
	ExpectedClosingAmount float64 `gorm:"type:decimal(10,2);not null" json:"expected_closing_amount"`
	ActualClosingAmount   float64 `gorm:"type:decimal(10,2)" json:"actual_closing_amount"`
	Difference            float64 `gorm:"type:decimal(10,2)" json:"difference"`

	Notes    string     `gorm:"type:text" json:"notes,omitempty"`
	OpenedAt time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	Transactions []RegisterTransaction `gorm:"foreignKey:SessionID" json:"transactions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterTransaction is one payment folded into a session. Append-only.
type RegisterTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	PaymentID uint      `gorm:"not null" json:"payment_id"`
	OrderID   uint      `gorm:"not null" json:"order_id"`
	Method    string    `gorm:"type:varchar(20);not null" json:"method"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
