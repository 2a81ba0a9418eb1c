package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AdarCosmetics/salon-scheduler/internal/audit"
	"github.com/AdarCosmetics/salon-scheduler/internal/config"
	"github.com/AdarCosmetics/salon-scheduler/internal/handlers"
	infraRepo "github.com/AdarCosmetics/salon-scheduler/internal/infra/repository"
	"github.com/AdarCosmetics/salon-scheduler/internal/middleware"
	"github.com/AdarCosmetics/salon-scheduler/internal/session"
	"github.com/AdarCosmetics/salon-scheduler/internal/sms"
	ucBooking "github.com/AdarCosmetics/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	sessions := session.NewRedisStore(cfg.RedisAddr)
	smsClient := sms.NewFromConfig(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		sessions,
		smsClient,
		auditDispatcher,
	)

	verifyCodeUC := ucBooking.NewVerifyCode(
		bookingRepo,
		sessions,
		auditDispatcher,
	)

	cancelByTokenUC := ucBooking.NewCancelByToken(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, createBookingUC)
	verifyHandler := handlers.NewVerifyHandler(verifyCodeUC)
	cancelHandler := handlers.NewCancelHandler(cancelByTokenUC)

	authHandler := handlers.NewAuthHandler(db, cfg)
	adminBookingHandler := handlers.NewAdminBookingHandler(db)
	blockedDatesHandler := handlers.NewBlockedDatesHandler(db)
	blockedSlotsHandler := handlers.NewBlockedSlotsHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	activityLogHandler := handlers.NewActivityLogHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)
		api.POST("/bookings", publicHandler.CreateBooking)

		api.POST("/verify", verifyHandler.Verify)

		api.GET("/cancel/:token", cancelHandler.Lookup)
		api.POST("/cancel/:token", cancelHandler.Cancel)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// ADMIN API
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", adminBookingHandler.ListByDate)
			secured.GET("/bookings/upcoming", adminBookingHandler.ListUpcoming)
			secured.GET("/bookings/month", adminBookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/cancel", adminBookingHandler.Cancel)

			secured.GET("/blocked-dates", blockedDatesHandler.List)
			secured.POST("/blocked-dates", blockedDatesHandler.Create)
			secured.DELETE("/blocked-dates/:id", blockedDatesHandler.Delete)

			secured.GET("/blocked-slots", blockedSlotsHandler.List)
			secured.POST("/blocked-slots", blockedSlotsHandler.Create)
			secured.DELETE("/blocked-slots/:id", blockedSlotsHandler.Delete)

			secured.GET("/schedule/:date", scheduleHandler.Get)
			secured.PUT("/schedule/:date", scheduleHandler.Set)
			secured.DELETE("/schedule/:date", scheduleHandler.Delete)

			secured.GET("/activity-log", activityLogHandler.List)
		}
	}
}
