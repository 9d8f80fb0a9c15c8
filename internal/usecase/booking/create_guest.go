package booking

import (
	"context"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/models"
)

type CreateGuestBookingInput struct {
	ServiceID uint
	StylistID uint
	StartTime time.Time

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CreateGuestBooking serves the unauthenticated flow: the booking is
// tracked by contact details instead of an account.
type CreateGuestBooking struct {
	repo domain.Repository
}

func NewCreateGuestBooking(repo domain.Repository) *CreateGuestBooking {
	return &CreateGuestBooking{repo: repo}
}

func (uc *CreateGuestBooking) Execute(
	ctx context.Context,
	in CreateGuestBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}

	start := in.StartTime
	end := domain.EndTime(start, svc)

	if !domain.WithinWindow(start, end, stylist.StartHour, stylist.EndHour) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	b := &models.Booking{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		ServiceID:     svc.ID,
		StylistID:     stylist.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
		PriceSnapshot: svc.Price,
		TotalAmount:   svc.Price,
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, stylist.ID, start, end); err != nil {
			return err
		}
		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}
