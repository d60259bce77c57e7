package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/courtspace/court-scheduler/internal/audit"
	"github.com/courtspace/court-scheduler/internal/config"
	"github.com/courtspace/court-scheduler/internal/handlers"
	"github.com/courtspace/court-scheduler/internal/infra/cache"
	infraRepo "github.com/courtspace/court-scheduler/internal/infra/repository"
	"github.com/courtspace/court-scheduler/internal/middleware"
	ucReservation "github.com/courtspace/court-scheduler/internal/usecase/reservation"
	ucSlot "github.com/courtspace/court-scheduler/internal/usecase/slot"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	unitDirectory := cache.NewCachedUnitDirectory(scheduleRepo, rdb, 5*time.Minute)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — SLOTS
	// ======================================================
	createSlotUC := ucSlot.NewCreateSlot(scheduleRepo, unitDirectory, auditDispatcher)
	updateSlotUC := ucSlot.NewUpdateSlot(scheduleRepo, unitDirectory, auditDispatcher)
	deleteSlotUC := ucSlot.NewDeleteSlot(scheduleRepo, auditDispatcher)
	listSlotsUC := ucSlot.NewListSlots(scheduleRepo)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		scheduleRepo,
		scheduleRepo,
		auditDispatcher,
	)
	cancelReservationUC := ucReservation.NewCancelReservation(
		scheduleRepo,
		auditDispatcher,
	)
	listReservationsUC := ucReservation.NewListReservations(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	establishmentHandler := handlers.NewEstablishmentHandler(db)
	unitHandler := handlers.NewUnitHandler(db, unitDirectory)

	slotHandler := handlers.NewSlotHandler(
		createSlotUC,
		updateSlotUC,
		deleteSlotUC,
		listSlotsUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		listReservationsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/units", publicHandler.ListUnits)
			publicAPI.GET("/units/:id/slots", publicHandler.ListUnitSlots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/establishments", establishmentHandler.List)
			secured.POST("/me/establishments", establishmentHandler.Create)
			secured.PATCH("/me/establishments/:id", establishmentHandler.Update)
			secured.DELETE("/me/establishments/:id", establishmentHandler.Delete)

			secured.GET("/units", unitHandler.List)
			secured.POST("/units", unitHandler.Create)
			secured.PATCH("/units/:id", unitHandler.Update)
			secured.DELETE("/units/:id", unitHandler.Delete)

			// ------------------------------
			// SLOTS
			// ------------------------------
			secured.GET("/slots", slotHandler.List)
			secured.POST("/slots", slotHandler.Create)
			secured.PATCH("/slots/:id", slotHandler.Update)
			secured.DELETE("/slots/:id", slotHandler.Delete)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.GET("/reservations", reservationHandler.List)
			secured.POST("/reservations", reservationHandler.Create)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
