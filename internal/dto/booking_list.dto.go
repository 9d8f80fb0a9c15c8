package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"service_name"`
	StylistName  string    `json:"stylist_name,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	TotalAmount  float64   `json:"total_amount"`
	IsWalkin     bool      `json:"is_walkin"`
}
