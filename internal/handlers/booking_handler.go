package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/httpresp"
	"github.com/hairloom/salon-booking/internal/middleware"
	"github.com/hairloom/salon-booking/internal/models"
	usecase "github.com/hairloom/salon-booking/internal/usecase/booking"
)

type BookingHandler struct {
	db *gorm.DB

	availability *usecase.GetAvailability
	create       *usecase.CreateBooking
	createGuest  *usecase.CreateGuestBooking
	createWalkin *usecase.CreateWalkinBooking
	pay          *usecase.PayBooking
	payDeposit   *usecase.PayDeposit
	cancel       *usecase.CancelBooking
	complete     *usecase.CompleteBooking
	delete       *usecase.DeleteBooking
	listMine     *usecase.ListMyBookings
	schedule     *usecase.ListStylistSchedule
}

func NewBookingHandler(
	db *gorm.DB,
	availability *usecase.GetAvailability,
	create *usecase.CreateBooking,
	createGuest *usecase.CreateGuestBooking,
	createWalkin *usecase.CreateWalkinBooking,
	pay *usecase.PayBooking,
	payDeposit *usecase.PayDeposit,
	cancel *usecase.CancelBooking,
	complete *usecase.CompleteBooking,
	del *usecase.DeleteBooking,
	listMine *usecase.ListMyBookings,
	schedule *usecase.ListStylistSchedule,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		create:       create,
		createGuest:  createGuest,
		createWalkin: createWalkin,
		pay:          pay,
		payDeposit:   payDeposit,
		cancel:       cancel,
		complete:     complete,
		delete:       del,
		listMine:     listMine,
		schedule:     schedule,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceID uint      `json:"service_id" binding:"required"`
	StylistID uint      `json:"stylist_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type GuestBookingRequest struct {
	ServiceID uint      `json:"service_id" binding:"required"`
	StylistID uint      `json:"stylist_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
}

type WalkinBookingRequest struct {
	ServiceID uint      `json:"service_id" binding:"required"`
	StylistID uint      `json:"stylist_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type PaymentRequest struct {
	CardNumber  string `json:"card_number" binding:"required"`
	ExpiryMonth int    `json:"expiry_month" binding:"required"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
}

// --------- Helpers ---------

func currentUser(c *gin.Context) (uint, models.Role) {
	id := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(models.Role)
	return id, role
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

// Availability answers GET /bookings/availability?service_id=&stylist_id=&date=YYYY-MM-DD.
func (h *BookingHandler) Availability(c *gin.Context) {
	serviceID, err1 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	stylistID, err2 := strconv.ParseUint(c.Query("stylist_id"), 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_query", "service_id and stylist_id are required.")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), usecase.AvailabilityInput{
		ServiceID: uint(serviceID),
		StylistID: uint(stylistID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID, _ := currentUser(c)

	b, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		CustomerID: userID,
		ServiceID:  req.ServiceID,
		StylistID:  req.StylistID,
		StartTime:  req.StartTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) CreateGuest(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createGuest.Execute(c.Request.Context(), usecase.CreateGuestBookingInput{
		ServiceID:     req.ServiceID,
		StylistID:     req.StylistID,
		StartTime:     req.StartTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) CreateWalkin(c *gin.Context) {
	var req WalkinBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createWalkin.Execute(c.Request.Context(), usecase.CreateWalkinBookingInput{
		ServiceID:     req.ServiceID,
		StylistID:     req.StylistID,
		StartTime:     req.StartTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Pay(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID, role := currentUser(c)

	pay, err := h.pay.Execute(c.Request.Context(), usecase.PayInput{
		BookingID:   id,
		ActorID:     userID,
		ActorRole:   role,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, pay)
}

func (h *BookingHandler) PayDeposit(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID, role := currentUser(c)

	pay, err := h.payDeposit.Execute(c.Request.Context(), usecase.PayInput{
		BookingID:   id,
		ActorID:     userID,
		ActorRole:   role,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, pay)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	userID, role := currentUser(c)

	b, err := h.cancel.Execute(c.Request.Context(), id, userID, role)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, _ := currentUser(c)

	out, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

// Schedule shows the authenticated stylist their own day, defaulting to
// today when no date is given.
func (h *BookingHandler) Schedule(c *gin.Context) {
	userID, _ := currentUser(c)

	var stylist models.Stylist
	if err := h.db.Where("user_id = ?", userID).First(&stylist).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "No stylist profile for this account.")
		return
	}

	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	out, err := h.schedule.Execute(c.Request.Context(), stylist.ID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}
