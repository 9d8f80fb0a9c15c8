package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairloom/salon-booking/internal/config"
	"github.com/hairloom/salon-booking/internal/handlers"
	infraRepo "github.com/hairloom/salon-booking/internal/infra/repository"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/middleware"
	"github.com/hairloom/salon-booking/internal/models"
	"github.com/hairloom/salon-booking/internal/resetcache"
	"github.com/hairloom/salon-booking/internal/storage"
	ucBooking "github.com/hairloom/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mail *mailer.Dispatcher) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	resets := resetcache.New(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	createGuestUC := ucBooking.NewCreateGuestBooking(bookingRepo)
	createWalkinUC := ucBooking.NewCreateWalkinBooking(bookingRepo)
	payBookingUC := ucBooking.NewPayBooking(bookingRepo, mail)
	payDepositUC := ucBooking.NewPayDeposit(bookingRepo, mail)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)
	listMineUC := ucBooking.NewListMyBookings(bookingRepo)
	scheduleUC := ucBooking.NewListStylistSchedule(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mail, resets)
	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db, uploader)
	adminHandler := handlers.NewAdminHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createBookingUC,
		createGuestUC,
		createWalkinUC,
		payBookingUC,
		payDepositUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
		listMineUC,
		scheduleUC,
	)

	// ======================================================
	// WEB (STATIC FRONTEND)
	// ======================================================
	r.Static("/frontend", cfg.FrontendDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/frontend/index.html")
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/stylists", stylistHandler.List)
		api.GET("/bookings/availability", bookingHandler.Availability)
		api.POST("/bookings/guest", bookingHandler.CreateGuest)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS — CUSTOMER
			// ------------------------------
			secured.POST("/bookings",
				middleware.RequireRoles(models.RoleCustomer),
				bookingHandler.Create,
			)
			secured.GET("/bookings/me",
				middleware.RequireRoles(models.RoleCustomer),
				bookingHandler.ListMine,
			)

			secured.PUT("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/bookings/:id/pay", bookingHandler.Pay)
			secured.POST("/bookings/:id/pay-deposit", bookingHandler.PayDeposit)

			// ------------------------------
			// BOOKINGS — STYLIST
			// ------------------------------
			secured.GET("/bookings/schedule",
				middleware.RequireRoles(models.RoleStylist),
				bookingHandler.Schedule,
			)

			// ------------------------------
			// OWNER
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRoles(models.RoleOwner))
			{
				owner.POST("/services", serviceHandler.Create)
				owner.PUT("/services/:id", serviceHandler.Update)
				owner.DELETE("/services/:id", serviceHandler.Delete)

				owner.POST("/stylists", stylistHandler.Create)
				owner.PUT("/stylists/:id", stylistHandler.Update)
				owner.DELETE("/stylists/:id", stylistHandler.Delete)
				owner.POST("/stylists/:id/photo", stylistHandler.UploadPhoto)

				owner.POST("/bookings/walkin", bookingHandler.CreateWalkin)
				owner.PUT("/bookings/:id/complete", bookingHandler.Complete)
				owner.DELETE("/bookings/:id", bookingHandler.Delete)

				owner.GET("/admin/users", adminHandler.ListUsers)
				owner.GET("/admin/bookings", adminHandler.ListBookings)
			}
		}
	}
}
