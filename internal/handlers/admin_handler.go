package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/httpresp"
	"github.com/hairloom/salon-booking/internal/models"
)

// AdminHandler serves the owner's read-only views over the whole dataset.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Stylist").
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
