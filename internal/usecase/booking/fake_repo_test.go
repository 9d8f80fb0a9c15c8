package booking

import (
	"context"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/models"
)

// In-memory repository backing the usecase tests. Single-threaded; the
// transactional wrapper just replays fn against the same state.
type fakeRepo struct {
	services map[uint]*models.Service
	stylists map[uint]*models.Stylist
	bookings map[uint]*models.Booking
	payments map[uint]*models.Payment

	nextBookingID uint
	nextPaymentID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:      map[uint]*models.Service{},
		stylists:      map[uint]*models.Stylist{},
		bookings:      map[uint]*models.Booking{},
		payments:      map[uint]*models.Payment{},
		nextBookingID: 1,
		nextPaymentID: 1,
	}
}

func (r *fakeRepo) addService(id uint, price float64, durationMin int) {
	r.services[id] = &models.Service{ID: id, Name: "svc", Price: price, DurationMin: durationMin, Active: true}
}

func (r *fakeRepo) addStylist(id uint, startHour, endHour int) {
	r.stylists[id] = &models.Stylist{ID: id, DisplayName: "Sam", StartHour: startHour, EndHour: endHour}
}

func (r *fakeRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

func (r *fakeRepo) GetActiveService(ctx context.Context, id uint) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return svc, nil
}

func (r *fakeRepo) GetStylist(ctx context.Context, id uint) (*models.Stylist, error) {
	st, ok := r.stylists[id]
	if !ok {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}
	return st, nil
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.ID = r.nextBookingID
	r.nextBookingID++
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(ctx context.Context, stylistID uint, start, end time.Time) error {
	for _, b := range r.bookings {
		if b.StylistID != stylistID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) DeleteBookingWithPayments(ctx context.Context, id uint) error {
	delete(r.bookings, id)
	for pid, p := range r.payments {
		if p.BookingID == id {
			delete(r.payments, pid)
		}
	}
	return nil
}

func (r *fakeRepo) ListBusyIntervals(ctx context.Context, stylistID uint, start, end time.Time) ([]domain.Interval, error) {
	var out []domain.Interval
	for _, b := range r.bookings {
		if b.StylistID != stylistID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			out = append(out, domain.Interval{Start: b.StartTime, End: b.EndTime})
		}
	}
	return out, nil
}

func (r *fakeRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	p.ID = r.nextPaymentID
	r.nextPaymentID++
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

func (r *fakeRepo) SumSuccessfulPayments(ctx context.Context, bookingID uint) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == models.PaymentSuccess {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *fakeRepo) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID != nil && *b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForStylist(ctx context.Context, stylistID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StylistID == stylistID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
