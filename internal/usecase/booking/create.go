package booking

import (
	"context"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/models"
)

type CreateBookingInput struct {
	CustomerID uint
	ServiceID  uint
	StylistID  uint
	StartTime  time.Time
}

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
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

	customerID := in.CustomerID
	b := &models.Booking{
		CustomerID:    &customerID,
		ServiceID:     svc.ID,
		StylistID:     stylist.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
		PriceSnapshot: svc.Price,
		TotalAmount:   svc.Price,
	}

	// Conflict check and insert share one transaction so two concurrent
	// requests for the same stylist cannot both observe a free slot.
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
