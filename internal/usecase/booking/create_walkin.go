package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/models"
)

type CreateWalkinBookingInput struct {
	ServiceID uint
	StylistID uint
	StartTime time.Time

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CreateWalkinBooking is the owner's front-desk flow: the booking skips
// the pending stage and a successful cash payment is recorded atomically
// alongside it.
type CreateWalkinBooking struct {
	repo domain.Repository
}

func NewCreateWalkinBooking(repo domain.Repository) *CreateWalkinBooking {
	return &CreateWalkinBooking{repo: repo}
}

func (uc *CreateWalkinBooking) Execute(
	ctx context.Context,
	in CreateWalkinBookingInput,
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
		Status:        string(domain.StatusConfirmed),
		IsWalkin:      true,
		PriceSnapshot: svc.Price,
		TotalAmount:   svc.Price,
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoTimeConflict(ctx, stylist.ID, start, end); err != nil {
			return err
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, &models.Payment{
			BookingID:     b.ID,
			Amount:        b.TotalAmount,
			Status:        models.PaymentSuccess,
			Provider:      "cash",
			MaskedDetails: "cash",
			ProviderRef:   uuid.NewString(),
		})
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}
