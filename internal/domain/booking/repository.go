package booking

import (
	"context"
	"time"

	"github.com/hairloom/salon-booking/internal/models"
)

type Repository interface {
	// InTx runs fn against a transaction-bound repository. Conflict checks
	// and the writes that depend on them must share one transaction.
	InTx(ctx context.Context, fn func(Repository) error) error

	// -------- Service / Stylist --------
	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBookingWithPayments(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	ListBusyIntervals(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]Interval, error)

	// -------- Payments --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	SumSuccessfulPayments(
		ctx context.Context,
		bookingID uint,
	) (float64, error)

	// -------- Listings --------
	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForStylist(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
