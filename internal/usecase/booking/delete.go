package booking

import (
	"context"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
)

// DeleteBooking is the owner's hard removal: the booking and all its
// payment records disappear, unlike cancel which keeps the audit trail.
type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(ctx context.Context, bookingID uint) error {
	if _, err := uc.repo.GetBooking(ctx, bookingID); err != nil {
		return err
	}

	return uc.repo.DeleteBookingWithPayments(ctx, bookingID)
}
