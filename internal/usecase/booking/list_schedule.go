package booking

import (
	"context"
	"time"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/dto"
)

// ListStylistSchedule returns a stylist's bookings for one calendar day.
type ListStylistSchedule struct {
	repo domain.Repository
}

func NewListStylistSchedule(repo domain.Repository) *ListStylistSchedule {
	return &ListStylistSchedule{repo: repo}
}

func (uc *ListStylistSchedule) Execute(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	loc := date.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForStylist(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		name := b.CustomerName
		if b.Customer != nil {
			name = b.Customer.FullName
		}
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			ServiceName:  b.Service.Name,
			CustomerName: name,
			TotalAmount:  b.TotalAmount,
			IsWalkin:     b.IsWalkin,
		})
	}

	return out, nil
}
