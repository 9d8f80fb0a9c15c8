package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/payment"
)

type PayInput struct {
	BookingID uint
	ActorID   uint
	ActorRole models.Role

	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
}

// PayBooking settles the outstanding amount in full: the charge is the
// total minus any earlier successful payments (a prior deposit shrinks
// it), and the booking moves to confirmed.
type PayBooking struct {
	repo domain.Repository
	mail *mailer.Dispatcher
}

func NewPayBooking(repo domain.Repository, mail *mailer.Dispatcher) *PayBooking {
	return &PayBooking{repo: repo, mail: mail}
}

func (uc *PayBooking) Execute(
	ctx context.Context,
	in PayInput,
) (*models.Payment, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := assertMayPay(b, in.ActorID, in.ActorRole); err != nil {
		return nil, err
	}

	if !payment.ChecksumValid(in.CardNumber) || !payment.ExpiryValid(in.ExpiryMonth, in.ExpiryYear) {
		return nil, httperr.ErrBusiness("invalid_payment_details")
	}

	var pay *models.Payment

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		b, err = tx.GetBooking(ctx, in.BookingID)
		if err != nil {
			return err
		}

		paid, err := tx.SumSuccessfulPayments(ctx, b.ID)
		if err != nil {
			return err
		}

		if err := domain.CanPay(domain.Status(b.Status), paid, b.TotalAmount); err != nil {
			return err
		}

		pay = &models.Payment{
			BookingID:     b.ID,
			Amount:        roundCents(b.TotalAmount - paid),
			Status:        models.PaymentSuccess,
			Provider:      "mock",
			MaskedDetails: payment.Mask(in.CardNumber),
			ProviderRef:   uuid.NewString(),
		}
		if err := tx.CreatePayment(ctx, pay); err != nil {
			return err
		}

		domain.Confirm(b)
		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.sendReceipt(b, pay)

	return pay, nil
}

func (uc *PayBooking) sendReceipt(b *models.Booking, pay *models.Payment) {
	if uc.mail == nil {
		return
	}

	uc.mail.Dispatch(mailer.Message{
		To:      receiptRecipient(b),
		Subject: "Salon Booking Payment Receipt",
		Body: fmt.Sprintf(
			"Thank you for your payment.\n\nBooking ID: %d\nAmount: $%.2f\nPaid with: %s\n",
			b.ID, pay.Amount, pay.MaskedDetails,
		),
	})
}

func receiptRecipient(b *models.Booking) string {
	if b.Customer != nil && b.Customer.Email != "" {
		return b.Customer.Email
	}
	return b.CustomerEmail
}

func assertMayPay(b *models.Booking, actorID uint, role models.Role) error {
	if role == models.RoleOwner {
		return nil
	}
	if b.CustomerID != nil && *b.CustomerID != actorID {
		return httperr.ErrBusiness("not_booking_owner")
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
