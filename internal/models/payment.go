package models

import "time"

const (
	PaymentInitiated = "initiated"
	PaymentSuccess   = "success"
	PaymentFailed    = "failed"
)

// A booking may carry several payments (deposit first, remainder later).
// Its paid state is the sum of successful payments against TotalAmount.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`

	Amount        float64 `json:"amount"`
	Status        string  `gorm:"size:20;default:'initiated'" json:"status"`
	Provider      string  `gorm:"size:20" json:"provider"`
	MaskedDetails string  `gorm:"size:30" json:"masked_details"`
	ProviderRef   string  `gorm:"size:40" json:"provider_ref"`

	CreatedAt time.Time `json:"created_at"`
}
