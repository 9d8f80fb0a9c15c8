package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/config"
	"github.com/hairloom/salon-booking/internal/httperr"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/resetcache"
	"github.com/hairloom/salon-booking/internal/tokens"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mail   *mailer.Dispatcher
	resets *resetcache.Cache
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	mail *mailer.Dispatcher,
	resets *resetcache.Cache,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, mail: mail, resets: resets}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

// Login accepts the form fields username/password as well as their JSON
// equivalents.
type LoginRequest struct {
	Email    string `form:"username" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Email already registered.")
		return
	}

	hashed, err := tokens.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create account.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Role:         models.RoleCustomer,
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Conflict(c, "email_already_registered", "Email already registered.")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	if !user.IsActive || !tokens.CheckPassword(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := tokens.GenerateAccessToken(h.config.JWTSecret, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}

// ForgotPassword answers with the same acknowledgement whether or not the
// email exists, so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ack := gin.H{"msg": "If your email is registered, you will receive a reset link."}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, ack)
		return
	}

	token, _, err := tokens.GenerateResetToken(h.config.JWTSecret, user.ID)
	if err != nil {
		c.JSON(http.StatusOK, ack)
		return
	}

	link := fmt.Sprintf("%s/frontend/reset-password.html?token=%s", h.config.PublicBaseURL, token)
	h.mail.Dispatch(mailer.Message{
		To:      user.Email,
		Subject: "Password Reset Request",
		Body:    fmt.Sprintf("Click the link to reset your password: %s\nLink expires in 15 minutes.", link),
	})

	c.JSON(http.StatusOK, ack)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	claims, err := tokens.Parse(h.config.JWTSecret, req.Token)
	if err != nil || claims.Purpose != tokens.PurposeReset {
		httperr.BadRequest(c, "invalid_reset_token", "Invalid or expired token.")
		return
	}

	if !h.resets.Consume(c.Request.Context(), claims.JTI, tokens.ResetTokenTTL()) {
		httperr.BadRequest(c, "reset_token_used", "Reset link already used.")
		return
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	hashed, err := tokens.HashPassword(req.NewPassword)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not update password.")
		return
	}

	user.PasswordHash = hashed
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Could not update password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Password updated successfully."})
}
