package booking

import (
	"context"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/models"
)

type CompleteBooking struct {
	repo domain.Repository
}

func NewCompleteBooking(repo domain.Repository) *CompleteBooking {
	return &CompleteBooking{repo: repo}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
