package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	"github.com/ynz20/AppPerruqueriaApi/internal/config"
	"github.com/ynz20/AppPerruqueriaApi/internal/handlers"
	infraRepo "github.com/ynz20/AppPerruqueriaApi/internal/infra/repository"
	"github.com/ynz20/AppPerruqueriaApi/internal/middleware"
	ucReservation "github.com/ynz20/AppPerruqueriaApi/internal/usecase/reservation"
	ucShift "github.com/ynz20/AppPerruqueriaApi/internal/usecase/shift"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	slotLocks := ucReservation.NewSlotLocks()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		slotLocks,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
		slotLocks,
	)

	updateStatusUC := ucReservation.NewUpdateStatus(
		reservationRepo,
		auditDispatcher,
	)

	rateReservationUC := ucReservation.NewRateReservation(
		reservationRepo,
		auditDispatcher,
		cfg.RatingRequiresCompleted,
	)

	availableWorkersUC := ucReservation.NewAvailableWorkers(reservationRepo)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)

	toggleShiftUC := ucShift.NewToggleShift(db, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	shiftHandler := handlers.NewShiftHandler(db, toggleShiftUC)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		updateReservationUC,
		updateStatusUC,
		rateReservationUC,
		availableWorkersUC,
		listReservationsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// RUTES PÚBLIQUES
	// ======================================================
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ======================================================
	// RUTES AUTENTICADES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		secured.GET("/clients", clientHandler.List)
		secured.POST("/clients", clientHandler.Create)
		secured.GET("/clients/:dni", clientHandler.Show)
		secured.PUT("/clients/:dni", clientHandler.Update)
		secured.DELETE("/clients/:dni", clientHandler.Destroy)

		// ------------------------------
		// SHIFTS
		// ------------------------------
		secured.GET("/shifts", shiftHandler.List)
		secured.POST("/shifts", shiftHandler.Create)
		secured.GET("/shifts/:id", shiftHandler.Show)
		secured.PUT("/shifts/:id", shiftHandler.Update)
		secured.DELETE("/shifts/:id", shiftHandler.Destroy)
		secured.POST("/turn", shiftHandler.Toggle)
		secured.GET("/turn/status", shiftHandler.Status)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		secured.GET("/reservations", reservationHandler.List)
		secured.POST("/reservations", reservationHandler.Create)
		secured.GET("/reservations/:id", reservationHandler.Show)
		secured.PUT("/reservations/:id", reservationHandler.Update)
		secured.DELETE("/reservations/:id", reservationHandler.Destroy)

		secured.POST("/workers/available", reservationHandler.AvailableWorkers)
		secured.GET("/reservations/client/:dni", reservationHandler.ByClient)
		secured.GET("/reservations/worker/:dni", reservationHandler.ByWorker)
		secured.PUT("/reservations/:id/status", reservationHandler.UpdateStatus)
		secured.PUT("/reservations/:id/rate", reservationHandler.Rate)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		secured.GET("/products", productHandler.List)
		secured.POST("/products", productHandler.Create)
		secured.GET("/products/:id", productHandler.Show)
		secured.PUT("/products/:id", productHandler.Update)
		secured.DELETE("/products/:id", productHandler.Destroy)
		secured.POST("/products/:id/decrement-stock", productHandler.DecrementStock)
		secured.POST("/products/:id/increment-stock", productHandler.IncrementStock)

		// ------------------------------
		// LECTURES PER A NO ADMINS
		// ------------------------------
		secured.GET("/services/pull", serviceHandler.Pull)
		secured.GET("/users/pull", userHandler.GetWorkers)

		// Qualsevol usuari pot veure i editar el seu perfil
		secured.GET("/users/:id", userHandler.Show)
		secured.PUT("/users/dni/:dni", userHandler.Update)
	}

	// ======================================================
	// RUTES NOMÉS ADMIN
	// ======================================================
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.GET("/services", serviceHandler.List)
		admin.POST("/services", serviceHandler.Create)
		admin.GET("/services/:id", serviceHandler.Show)
		admin.PUT("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Destroy)

		admin.GET("/users", userHandler.List)
		admin.DELETE("/users/:id", userHandler.Destroy)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
