package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/httpresp"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/storage"
)

type StylistHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewStylistHandler(db *gorm.DB, uploader *storage.Uploader) *StylistHandler {
	return &StylistHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateStylistRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Bio         string `json:"bio"`
	StartHour   *int   `json:"start_hour"`
	EndHour     *int   `json:"end_hour"`
}

type UpdateStylistRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	StartHour   *int    `json:"start_hour"`
	EndHour     *int    `json:"end_hour"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

// Create promotes an existing user to the stylist role and opens a
// profile for them.
func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	startHour, endHour := 9, 20
	if req.StartHour != nil {
		startHour = *req.StartHour
	}
	if req.EndHour != nil {
		endHour = *req.EndHour
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		httperr.BadRequest(c, "invalid_working_hours", "start_hour must be before end_hour within 0-24.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var count int64
	h.db.Model(&models.Stylist{}).Where("user_id = ?", req.UserID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "stylist_already_exists", "User already has a stylist profile.")
		return
	}

	stylist := models.Stylist{
		UserID:      user.ID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		StartHour:   startHour,
		EndHour:     endHour,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&stylist).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("role", models.RoleStylist).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Could not create stylist.")
		return
	}

	httpresp.Created(c, stylist)
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, uint(id)).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DisplayName != nil {
		stylist.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}
	if req.StartHour != nil {
		stylist.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		stylist.EndHour = *req.EndHour
	}

	if stylist.StartHour < 0 || stylist.EndHour > 24 || stylist.StartHour >= stylist.EndHour {
		httperr.BadRequest(c, "invalid_working_hours", "start_hour must be before end_hour within 0-24.")
		return
	}

	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Could not update stylist.")
		return
	}

	httpresp.OK(c, stylist)
}

// Delete refuses to remove a stylist with bookings still on the books;
// the schedule history would lose its reference otherwise.
func (h *StylistHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, uint(id)).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var count int64
	h.db.Model(&models.Booking{}).Where("stylist_id = ?", stylist.ID).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "stylist_has_bookings", "Stylist still has bookings.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&stylist).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", stylist.UserID).
			Update("role", models.RoleCustomer).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_stylist", "Could not delete stylist.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// UploadPhoto accepts a multipart "photo" field, converts it to WebP and
// stores it in the configured bucket.
func (h *StylistHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.BadRequest(c, "uploads_disabled", "Photo storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, uint(id)).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadStylistPhoto(c.Request.Context(), stylist.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	if err := h.db.Model(&stylist).Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Could not update stylist.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}
