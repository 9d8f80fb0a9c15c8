package booking

import (
	"time"

	"github.com/hairloom/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is idempotent: cancelling an already-cancelled booking is a no-op.
func Cancel(b *models.Booking) error {
	if Status(b.Status) == StatusCancelled {
		return nil
	}
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

func Confirm(b *models.Booking) {
	b.Status = string(StatusConfirmed)
}

func Complete(b *models.Booking) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	return nil
}

// EndTime is fixed at creation from the service's current duration and
// never recomputed, even if the service changes later.
func EndTime(start time.Time, svc *models.Service) time.Time {
	return start.Add(time.Duration(svc.DurationMin) * time.Minute)
}
