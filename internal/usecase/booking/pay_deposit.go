package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/payment"
)

// DepositRate is the fixed upfront fraction that confirms a booking while
// leaving the remainder payable later or in person.
const DepositRate = 0.30

// PayDeposit charges the deposit once per booking; any earlier successful
// payment (deposit or full) makes a second deposit invalid.
type PayDeposit struct {
	repo domain.Repository
	mail *mailer.Dispatcher
}

func NewPayDeposit(repo domain.Repository, mail *mailer.Dispatcher) *PayDeposit {
	return &PayDeposit{repo: repo, mail: mail}
}

func (uc *PayDeposit) Execute(
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
		if paid > 0 {
			return httperr.ErrBusiness("deposit_not_allowed")
		}

		if err := domain.CanPay(domain.Status(b.Status), paid, b.TotalAmount); err != nil {
			return err
		}

		pay = &models.Payment{
			BookingID:     b.ID,
			Amount:        roundCents(b.TotalAmount * DepositRate),
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

	if uc.mail != nil {
		uc.mail.Dispatch(mailer.Message{
			To:      receiptRecipient(b),
			Subject: "Salon Booking Deposit Receipt",
			Body: fmt.Sprintf(
				"Your deposit confirms the booking.\n\nBooking ID: %d\nDeposit: $%.2f\nRemaining balance: $%.2f\n",
				b.ID, pay.Amount, roundCents(b.TotalAmount-pay.Amount),
			),
		})
	}

	return pay, nil
}
