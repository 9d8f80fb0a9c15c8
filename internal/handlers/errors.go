package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hairloom/salon-booking/internal/httperr"
)

// Maps business error codes from the domain/usecase layer onto the HTTP
// taxonomy: missing entities 404, state/slot conflicts 409, ownership 403,
// everything else a 400.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "service_not_found", "stylist_not_found", "booking_not_found", "user_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "time_conflict":
		httperr.Conflict(c, code, "Stylist is unavailable at this time.")
	case "already_paid", "deposit_not_allowed":
		httperr.Conflict(c, code, "Booking is already settled.")
	case "not_booking_owner":
		httperr.Forbidden(c, code, "Not authorized for this booking.")
	case "invalid_payment_details":
		httperr.BadRequest(c, code, "Invalid payment details.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Outside the stylist's working hours.")
	case "booking_cancelled":
		httperr.BadRequest(c, code, "Booking is cancelled.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
