package booking

import (
	"context"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/models"
)

// CancelBooking may be invoked by the owner or by the customer who owns
// the booking. No refund logic: successful payments stay as the audit
// trail.
type CancelBooking struct {
	repo domain.Repository
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actorID uint,
	actorRole models.Role,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actorRole != models.RoleOwner {
		if b.CustomerID == nil || *b.CustomerID != actorID {
			return nil, httperr.ErrBusiness("not_booking_owner")
		}
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
