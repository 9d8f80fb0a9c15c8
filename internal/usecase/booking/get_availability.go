package booking

import (
	"context"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
)

type AvailabilityInput struct {
	ServiceID uint
	StylistID uint
	Date      time.Time
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute recomputes the slot list from the live booking state on every
// call; the authoritative overlap check still happens at creation time.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayWindow(in.Date, stylist.StartHour, stylist.EndHour)

	busy, err := uc.repo.ListBusyIntervals(ctx, stylist.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute

	slots := domain.ComputeSlots(dayStart, dayEnd, duration, busy)
	for i := range slots {
		slots[i].StylistID = stylist.ID
	}

	return slots, nil
}
