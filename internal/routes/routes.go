package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/availability"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	barberRepo := infraRepo.NewBarberGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var locks lock.Locker
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		locks = lock.NewRedisLocker(redis.NewClient(opts), cfg.LockWait)
		log.Info("using redis locker")
	} else {
		locks = lock.NewKeyedLocker(cfg.LockWait)
	}

	// índice de ocupação reconstruído a partir do banco
	index := availability.NewIndex()
	scheduled, err := bookingRepo.ListScheduled(context.Background())
	if err != nil {
		return fmt.Errorf("rebuilding availability index: %w", err)
	}
	index.Rebuild(scheduled)
	log.Info("availability index rebuilt", zap.Int("appointments", len(scheduled)))

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBook(bookingRepo, index, locks, auditDispatcher)
	cancelUC := ucBooking.NewCancel(bookingRepo, index, locks, auditDispatcher)
	completeUC := ucBooking.NewComplete(bookingRepo, index, locks, auditDispatcher)
	noShowUC := ucBooking.NewMarkNoShow(bookingRepo, index, locks, auditDispatcher)
	rescheduleUC := ucBooking.NewReschedule(bookingRepo, index, locks, auditDispatcher)
	listByDayUC := ucBooking.NewListByDay(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, index)

	// ======================================================
	// 🧠 USE CASES — BARBERS (chefe único + idade mínima)
	// ======================================================
	createBarberUC := ucBarber.NewCreate(barberRepo, locks, auditDispatcher)
	updateBarberUC := ucBarber.NewUpdate(barberRepo, locks)
	assignRoleUC := ucBarber.NewAssignRole(barberRepo, locks, auditDispatcher)
	deleteBarberUC := ucBarber.NewDelete(barberRepo, locks, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(barberRepo, createBarberUC, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		completeUC,
		noShowUC,
		rescheduleUC,
		listByDayUC,
		availabilityUC,
	)

	barberHandler := handlers.NewBarberHandler(
		barberRepo,
		createBarberUC,
		updateBarberUC,
		assignRoleUC,
		deleteBarberUC,
	)

	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	windowHandler := handlers.NewWindowHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.ListByDay)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/availability", appointmentHandler.Availability)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.GET("/barbers/:id", barberHandler.Get)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.PATCH("/barbers/:id/role", barberHandler.AssignRole)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/barbers/:id/services", serviceHandler.ListForBarber)
			secured.POST("/barbers/:id/services", serviceHandler.AttachToBarber)

			secured.GET("/barbers/:id/windows", windowHandler.Get)
			secured.PUT("/barbers/:id/windows", windowHandler.Update)

			secured.GET("/barbers/:id/reviews", reviewHandler.ListByBarber)

			// ------------------------------
			// CLIENTS / SERVICES / REVIEWS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)

			secured.POST("/reviews", reviewHandler.Create)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
