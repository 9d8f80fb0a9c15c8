package models

import "time"

// Working hours are whole hours: the stylist takes bookings in
// [StartHour:00, EndHour:00) on any day.
type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Bio         string `gorm:"size:255" json:"bio"`
	PhotoURL    string `gorm:"size:255" json:"photo_url"`

	StartHour int `gorm:"default:9" json:"start_hour"`
	EndHour   int `gorm:"default:20" json:"end_hour"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
