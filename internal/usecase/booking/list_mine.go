package booking

import (
	"context"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/dto"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			ServiceName: b.Service.Name,
			StylistName: b.Stylist.DisplayName,
			TotalAmount: b.TotalAmount,
			IsWalkin:    b.IsWalkin,
		})
	}

	return out, nil
}
