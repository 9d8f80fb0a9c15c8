package booking

import (
	"testing"

	"github.com/hairloom/salon-booking/internal/models"
)

func TestCanCancel(t *testing.T) {
	cases := []struct {
		from  Status
		valid bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, true},
		{StatusCompleted, false},
	}

	for _, tt := range cases {
		err := CanCancel(tt.from)
		if (err == nil) != tt.valid {
			t.Fatalf("CanCancel(%q) err=%v, want valid=%v", tt.from, err, tt.valid)
		}
	}
}

func TestCancelIdempotent(t *testing.T) {
	b := &models.Booking{Status: string(StatusCancelled)}
	if err := Cancel(b); err != nil {
		t.Fatalf("cancelling a cancelled booking must not error: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Fatalf("status changed to %q", b.Status)
	}
}

func TestCancelCompletedRejected(t *testing.T) {
	b := &models.Booking{Status: string(StatusCompleted)}
	if err := Cancel(b); err == nil {
		t.Fatalf("cancelling a completed booking must fail")
	}
	if b.Status != string(StatusCompleted) {
		t.Fatalf("status changed to %q", b.Status)
	}
}

func TestCanComplete(t *testing.T) {
	cases := []struct {
		from  Status
		valid bool
	}{
		{StatusConfirmed, true},
		{StatusPending, false},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}

	for _, tt := range cases {
		err := CanComplete(tt.from)
		if (err == nil) != tt.valid {
			t.Fatalf("CanComplete(%q) err=%v, want valid=%v", tt.from, err, tt.valid)
		}
	}
}

func TestCanPay(t *testing.T) {
	cases := []struct {
		from        Status
		paid, total float64
		code        string
	}{
		{StatusPending, 0, 100, ""},
		{StatusConfirmed, 30, 100, ""},
		{StatusCancelled, 0, 100, "booking_cancelled"},
		{StatusCompleted, 0, 100, "invalid_state"},
		{StatusConfirmed, 100, 100, "already_paid"},
		{StatusConfirmed, 120, 100, "already_paid"},
	}

	for _, tt := range cases {
		err := CanPay(tt.from, tt.paid, tt.total)
		if tt.code == "" {
			if err != nil {
				t.Fatalf("CanPay(%q, %v, %v) unexpected error %v", tt.from, tt.paid, tt.total, err)
			}
			continue
		}
		if err == nil || err.Error() != tt.code {
			t.Fatalf("CanPay(%q, %v, %v) err=%v, want code %q", tt.from, tt.paid, tt.total, err, tt.code)
		}
	}
}

func TestEndTimeFromServiceDuration(t *testing.T) {
	svc := &models.Service{DurationMin: 45}
	start := day(10, 0)
	if got := EndTime(start, svc); !got.Equal(day(10, 45)) {
		t.Fatalf("EndTime=%v, want 10:45", got)
	}
}
