package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/models"
)

const (
	testCard  = "4242424242424242"
	expMonth  = 12
	expYear   = 2099
	serviceID = uint(1)
	stylistID = uint(1)
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.September, 14, hour, min, 0, 0, time.UTC)
}

func setupRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addService(serviceID, 100.0, 60)
	repo.addStylist(stylistID, 9, 20)
	return repo
}

func createBooking(t *testing.T, repo *fakeRepo, customerID uint, start time.Time) *models.Booking {
	t.Helper()
	b, err := NewCreateBooking(repo).Execute(context.Background(), CreateBookingInput{
		CustomerID: customerID,
		ServiceID:  serviceID,
		StylistID:  stylistID,
		StartTime:  start,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func payInput(bookingID, actorID uint) PayInput {
	return PayInput{
		BookingID:   bookingID,
		ActorID:     actorID,
		ActorRole:   models.RoleCustomer,
		CardNumber:  testCard,
		ExpiryMonth: expMonth,
		ExpiryYear:  expYear,
	}
}

func TestCreateBookingStartsPendingWithSnapshot(t *testing.T) {
	repo := setupRepo()

	b := createBooking(t, repo, 5, at(10, 0))

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("status=%q, want pending", b.Status)
	}
	if !b.EndTime.Equal(at(11, 0)) {
		t.Fatalf("end=%v, want 11:00", b.EndTime)
	}
	if b.PriceSnapshot != 100.0 || b.TotalAmount != 100.0 {
		t.Fatalf("snapshot=%v total=%v, want 100", b.PriceSnapshot, b.TotalAmount)
	}

	// A later price change must not touch the existing booking's charge.
	repo.services[serviceID].Price = 250.0
	got, _ := repo.GetBooking(context.Background(), b.ID)
	if got.TotalAmount != 100.0 {
		t.Fatalf("total drifted to %v after price change", got.TotalAmount)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	repo := setupRepo()
	createBooking(t, repo, 5, at(10, 0)) // [10:00, 11:00)

	_, err := NewCreateBooking(repo).Execute(context.Background(), CreateBookingInput{
		CustomerID: 6,
		ServiceID:  serviceID,
		StylistID:  stylistID,
		StartTime:  at(10, 30),
	})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("overlapping booking err=%v, want time_conflict", err)
	}

	// Adjacent interval [11:00, 12:00) is fine.
	if _, err := NewCreateBooking(repo).Execute(context.Background(), CreateBookingInput{
		CustomerID: 6,
		ServiceID:  serviceID,
		StylistID:  stylistID,
		StartTime:  at(11, 0),
	}); err != nil {
		t.Fatalf("adjacent booking rejected: %v", err)
	}
}

func TestPendingBookingBlocksAvailability(t *testing.T) {
	repo := setupRepo()
	createBooking(t, repo, 5, at(10, 0)) // pending, unpaid

	slots, err := NewGetAvailability(repo).Execute(context.Background(), AvailabilityInput{
		ServiceID: serviceID,
		StylistID: stylistID,
		Date:      at(0, 0),
	})
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	if len(slots) != 10 {
		t.Fatalf("expected 10 free slots with one pending booking, got %d", len(slots))
	}
	for _, s := range slots {
		if s.StartTime.Equal(at(10, 0)) {
			t.Fatalf("pending booking's slot still offered")
		}
		if s.StylistID != stylistID {
			t.Fatalf("slot missing stylist id")
		}
	}
}

func TestGuestBookingValidatesWindow(t *testing.T) {
	repo := setupRepo()

	_, err := NewCreateGuestBooking(repo).Execute(context.Background(), CreateGuestBookingInput{
		ServiceID:    serviceID,
		StylistID:    stylistID,
		StartTime:    at(8, 0),
		CustomerName: "Walk Win",
	})
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("pre-open guest booking err=%v, want outside_working_hours", err)
	}

	b, err := NewCreateGuestBooking(repo).Execute(context.Background(), CreateGuestBookingInput{
		ServiceID:     serviceID,
		StylistID:     stylistID,
		StartTime:     at(9, 0),
		CustomerName:  "Walk Win",
		CustomerEmail: "walkwin@example.com",
	})
	if err != nil {
		t.Fatalf("guest booking: %v", err)
	}
	if b.Status != string(domain.StatusPending) {
		t.Fatalf("guest booking status=%q, want pending", b.Status)
	}
	if b.CustomerID != nil {
		t.Fatalf("guest booking must not carry a customer id")
	}
}

func TestWalkinConfirmedAndCashPaid(t *testing.T) {
	repo := setupRepo()

	b, err := NewCreateWalkinBooking(repo).Execute(context.Background(), CreateWalkinBookingInput{
		ServiceID:    serviceID,
		StylistID:    stylistID,
		StartTime:    at(14, 0),
		CustomerName: "Front Desk",
	})
	if err != nil {
		t.Fatalf("walkin: %v", err)
	}

	if b.Status != string(domain.StatusConfirmed) {
		t.Fatalf("walkin status=%q, want confirmed", b.Status)
	}
	if !b.IsWalkin {
		t.Fatalf("walkin flag not set")
	}

	paid, _ := repo.SumSuccessfulPayments(context.Background(), b.ID)
	if paid != 100.0 {
		t.Fatalf("walkin paid=%v, want 100", paid)
	}

	// Settled at creation: further payment is rejected.
	_, err = NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 1))
	if !httperr.IsBusiness(err, "already_paid") {
		t.Fatalf("paying a walkin err=%v, want already_paid", err)
	}
}

func TestPayFullConfirmsBooking(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	pay, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5))
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	if pay.Amount != 100.0 {
		t.Fatalf("amount=%v, want 100", pay.Amount)
	}
	if pay.Status != models.PaymentSuccess {
		t.Fatalf("payment status=%q", pay.Status)
	}
	if pay.MaskedDetails != "**** **** **** 4242" {
		t.Fatalf("masked=%q", pay.MaskedDetails)
	}

	got, _ := repo.GetBooking(context.Background(), b.ID)
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("booking status=%q, want confirmed", got.Status)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("expected exactly one payment record, got %d", len(repo.payments))
	}
}

func TestPayRejectsBadCardAndForeignBooking(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	in := payInput(b.ID, 5)
	in.CardNumber = "4242424242424241"
	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_payment_details") {
		t.Fatalf("bad card err=%v, want invalid_payment_details", err)
	}

	in = payInput(b.ID, 5)
	in.ExpiryYear = 2020
	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_payment_details") {
		t.Fatalf("expired card err=%v, want invalid_payment_details", err)
	}

	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 99)); !httperr.IsBusiness(err, "not_booking_owner") {
		t.Fatalf("foreign payer err=%v, want not_booking_owner", err)
	}

	got, _ := repo.GetBooking(context.Background(), b.ID)
	if got.Status != string(domain.StatusPending) {
		t.Fatalf("failed payment attempts mutated the booking: %q", got.Status)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("failed payment attempts left %d payment rows", len(repo.payments))
	}
}

func TestPayCancelledRejected(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	if _, err := NewCancelBooking(repo).Execute(context.Background(), b.ID, 5, models.RoleCustomer); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5)); !httperr.IsBusiness(err, "booking_cancelled") {
		t.Fatalf("paying cancelled err=%v, want booking_cancelled", err)
	}
}

func TestDepositThenRemainder(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	dep, err := NewPayDeposit(repo, nil).Execute(context.Background(), payInput(b.ID, 5))
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if dep.Amount != 30.0 {
		t.Fatalf("deposit=%v, want 30", dep.Amount)
	}

	got, _ := repo.GetBooking(context.Background(), b.ID)
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("deposit must confirm, status=%q", got.Status)
	}

	// Second deposit is rejected.
	if _, err := NewPayDeposit(repo, nil).Execute(context.Background(), payInput(b.ID, 5)); !httperr.IsBusiness(err, "deposit_not_allowed") {
		t.Fatalf("second deposit err=%v, want deposit_not_allowed", err)
	}

	// Full pay now charges the remaining 70, not 100.
	rest, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5))
	if err != nil {
		t.Fatalf("remainder: %v", err)
	}
	if rest.Amount != 70.0 {
		t.Fatalf("remainder=%v, want 70", rest.Amount)
	}

	// Fully settled.
	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5)); !httperr.IsBusiness(err, "already_paid") {
		t.Fatalf("third payment err=%v, want already_paid", err)
	}
}

func TestCancelIdempotentAndGuarded(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	uc := NewCancelBooking(repo)

	if _, err := uc.Execute(context.Background(), b.ID, 99, models.RoleCustomer); !httperr.IsBusiness(err, "not_booking_owner") {
		t.Fatalf("foreign cancel err=%v, want not_booking_owner", err)
	}

	// Owner may cancel anyone's booking.
	if _, err := uc.Execute(context.Background(), b.ID, 1, models.RoleOwner); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}

	// Cancelling again does not error and leaves status cancelled.
	out, err := uc.Execute(context.Background(), b.ID, 5, models.RoleCustomer)
	if err != nil {
		t.Fatalf("repeat cancel: %v", err)
	}
	if out.Status != string(domain.StatusCancelled) {
		t.Fatalf("status=%q, want cancelled", out.Status)
	}
}

func TestCancelledSlotFreedForRebooking(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	if _, err := NewCancelBooking(repo).Execute(context.Background(), b.ID, 5, models.RoleCustomer); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := NewCreateBooking(repo).Execute(context.Background(), CreateBookingInput{
		CustomerID: 6,
		ServiceID:  serviceID,
		StylistID:  stylistID,
		StartTime:  at(10, 0),
	}); err != nil {
		t.Fatalf("rebooking a cancelled slot rejected: %v", err)
	}
}

func TestDeleteRemovesBookingAndPayments(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))
	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5)); err != nil {
		t.Fatalf("pay: %v", err)
	}

	if err := NewDeleteBooking(repo).Execute(context.Background(), b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetBooking(context.Background(), b.ID); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("booking survived delete: %v", err)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("payments survived delete: %d", len(repo.payments))
	}

	if err := NewDeleteBooking(repo).Execute(context.Background(), b.ID); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("deleting a missing booking err=%v, want booking_not_found", err)
	}
}

func TestCompleteOnlyFromConfirmed(t *testing.T) {
	repo := setupRepo()
	b := createBooking(t, repo, 5, at(10, 0))

	uc := NewCompleteBooking(repo)

	if _, err := uc.Execute(context.Background(), b.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("completing a pending booking err=%v, want invalid_state", err)
	}

	if _, err := NewPayBooking(repo, nil).Execute(context.Background(), payInput(b.ID, 5)); err != nil {
		t.Fatalf("pay: %v", err)
	}

	out, err := uc.Execute(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Status != string(domain.StatusCompleted) {
		t.Fatalf("status=%q, want completed", out.Status)
	}

	// Completed is terminal: no cancel, no payment.
	if _, err := NewCancelBooking(repo).Execute(context.Background(), b.ID, 1, models.RoleOwner); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancelling completed err=%v, want invalid_state", err)
	}
}

func TestAvailabilityUnknownServiceOrStylist(t *testing.T) {
	repo := setupRepo()
	repo.services[2] = &models.Service{ID: 2, Name: "retired", Price: 10, DurationMin: 30, Active: false}

	uc := NewGetAvailability(repo)

	if _, err := uc.Execute(context.Background(), AvailabilityInput{ServiceID: 2, StylistID: stylistID, Date: at(0, 0)}); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("inactive service err=%v, want service_not_found", err)
	}
	if _, err := uc.Execute(context.Background(), AvailabilityInput{ServiceID: serviceID, StylistID: 42, Date: at(0, 0)}); !httperr.IsBusiness(err, "stylist_not_found") {
		t.Fatalf("unknown stylist err=%v, want stylist_not_found", err)
	}
}
