package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Registered customer, or nil for guest/walk-in bookings tracked by
	// the contact fields below.
	CustomerID *uint `json:"customer_id"`
	Customer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerName  string `gorm:"size:100" json:"customer_name,omitempty"`
	CustomerEmail string `gorm:"size:100" json:"customer_email,omitempty"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone,omitempty"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	StylistID uint    `json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"stylist"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `gorm:"index" json:"end_time"`

	Status   string `gorm:"size:20;default:'pending'" json:"status"`
	IsWalkin bool   `gorm:"default:false" json:"is_walkin"`

	// Captured at creation; later service price changes never alter an
	// existing booking's charge.
	PriceSnapshot float64 `json:"price_snapshot"`
	TotalAmount   float64 `json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
