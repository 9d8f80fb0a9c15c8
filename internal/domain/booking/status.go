package booking

import "github.com/hairloom/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Status only moves forward through pending -> confirmed -> completed,
// or to cancelled from any non-terminal state.

func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanPay gates payment against terminal states and settled totals.
func CanPay(current Status, paid, total float64) error {
	switch current {
	case StatusCancelled:
		return httperr.ErrBusiness("booking_cancelled")
	case StatusCompleted:
		return httperr.ErrBusiness("invalid_state")
	}
	if paid >= total {
		return httperr.ErrBusiness("already_paid")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
