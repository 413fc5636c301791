package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gymstack/gym-manager/internal/audit"
	"github.com/gymstack/gym-manager/internal/config"
	"github.com/gymstack/gym-manager/internal/handlers"
	infraRepo "github.com/gymstack/gym-manager/internal/infra/repository"
	"github.com/gymstack/gym-manager/internal/middleware"
	"github.com/gymstack/gym-manager/internal/models"
	ucUser "github.com/gymstack/gym-manager/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — USERS
	// ======================================================
	deleteUserUC := ucUser.NewDeleteUser(
		userRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher, deleteUserUC)

	memberHandler := handlers.NewMemberHandler(db, auditDispatcher)
	planHandler := handlers.NewPlanHandler(db, auditDispatcher)
	historyHandler := handlers.NewHistoryHandler(db, auditDispatcher)

	trainerHandler := handlers.NewTrainerHandler(db, auditDispatcher)
	roomHandler := handlers.NewRoomHandler(db, auditDispatcher)
	classHandler := handlers.NewClassHandler(db, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher)
	attendanceHandler := handlers.NewAttendanceHandler(db, auditDispatcher)

	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher)
	equipmentHandler := handlers.NewEquipmentHandler(db, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(db, auditDispatcher)
	maintenanceHandler := handlers.NewMaintenanceHandler(db, auditDispatcher)
	calendarHandler := handlers.NewCalendarHandler(db, auditDispatcher)

	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// Role allow-lists. Staff-facing gates mirror who runs the front
	// desk: managers handle members and billing, only admins touch
	// accounts and plan pricing.
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	adminManager := middleware.RequireRoles(models.RoleAdmin, models.RoleManager)
	adminManagerTrainer := middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleTrainer)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			// ------------------------------
			// USERS (accounts)
			// ------------------------------
			users := secured.Group("/users", adminOnly)
			{
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.GetByID)
				users.POST("", userHandler.Create)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			// ------------------------------
			// MEMBERS
			// ------------------------------
			members := secured.Group("/members")
			{
				members.GET("", adminManagerTrainer, memberHandler.List)
				members.GET("/:id", adminManagerTrainer, memberHandler.GetByID)
				members.POST("", adminManager, memberHandler.Create)
				members.PUT("/:id", adminManager, memberHandler.Update)
				members.DELETE("/:id", adminManager, memberHandler.Delete)
			}

			// ------------------------------
			// MEMBERSHIP PLANS
			// ------------------------------
			plans := secured.Group("/plans")
			{
				plans.GET("", adminManager, planHandler.List)
				plans.GET("/:id", adminManager, planHandler.GetByID)
				plans.POST("", adminOnly, planHandler.Create)
				plans.PUT("/:id", adminOnly, planHandler.Update)
				plans.DELETE("/:id", adminOnly, planHandler.Delete)
			}

			// ------------------------------
			// MEMBERSHIP HISTORY
			// ------------------------------
			history := secured.Group("/membership-history", adminManager)
			{
				history.GET("", historyHandler.List)
				history.GET("/:id", historyHandler.GetByID)
				history.POST("", historyHandler.Create)
				history.PUT("/:id", historyHandler.Update)
				history.DELETE("/:id", historyHandler.Delete)
			}

			// ------------------------------
			// TRAINERS
			// ------------------------------
			trainers := secured.Group("/trainers", adminManager)
			{
				trainers.GET("", trainerHandler.List)
				trainers.GET("/:id", trainerHandler.GetByID)
				trainers.POST("", trainerHandler.Create)
				trainers.PUT("/:id", trainerHandler.Update)
				trainers.DELETE("/:id", trainerHandler.Delete)
			}

			// ------------------------------
			// ROOMS
			// ------------------------------
			rooms := secured.Group("/rooms", adminManager)
			{
				rooms.GET("", roomHandler.List)
				rooms.GET("/:id", roomHandler.GetByID)
				rooms.POST("", roomHandler.Create)
				rooms.PUT("/:id", roomHandler.Update)
				rooms.DELETE("/:id", roomHandler.Delete)
			}

			// ------------------------------
			// CLASSES + SCHEDULES + ATTENDANCE
			// ------------------------------
			classes := secured.Group("/classes")
			{
				classes.GET("", classHandler.List)
				classes.GET("/:id", classHandler.GetByID)
				classes.POST("", classHandler.Create)
				classes.PUT("/:id", classHandler.Update)
				classes.DELETE("/:id", classHandler.Delete)
			}

			schedules := secured.Group("/schedules")
			{
				schedules.GET("", scheduleHandler.List)
				schedules.GET("/:id", scheduleHandler.GetByID)
				schedules.POST("", scheduleHandler.Create)
				schedules.PUT("/:id", scheduleHandler.Update)
				schedules.DELETE("/:id", scheduleHandler.Delete)
			}

			attendance := secured.Group("/attendance")
			{
				attendance.GET("", attendanceHandler.List)
				attendance.GET("/:id", attendanceHandler.GetByID)
				attendance.POST("", attendanceHandler.Create)
				attendance.PUT("/:id", attendanceHandler.Update)
				attendance.DELETE("/:id", attendanceHandler.Delete)
			}

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			payments := secured.Group("/payments", adminManager)
			{
				payments.GET("", paymentHandler.List)
				payments.GET("/:id", paymentHandler.GetByID)
				payments.POST("", paymentHandler.Create)
				payments.PUT("/:id", paymentHandler.Update)
				payments.DELETE("/:id", paymentHandler.Delete)
			}

			// ------------------------------
			// EQUIPMENT + MAINTENANCE
			// ------------------------------
			equipment := secured.Group("/equipment", adminManager)
			{
				equipment.GET("", equipmentHandler.List)
				equipment.GET("/:id", equipmentHandler.GetByID)
				equipment.POST("", equipmentHandler.Create)
				equipment.PUT("/:id", equipmentHandler.Update)
				equipment.DELETE("/:id", equipmentHandler.Delete)
			}

			maintenance := secured.Group("/maintenance")
			{
				maintenance.GET("", maintenanceHandler.List)
				maintenance.GET("/:id", maintenanceHandler.GetByID)
				maintenance.POST("", maintenanceHandler.Create)
				maintenance.PUT("/:id", maintenanceHandler.Update)
				maintenance.DELETE("/:id", maintenanceHandler.Delete)
			}

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/staff")
			{
				staff.GET("", staffHandler.List)
				staff.GET("/:id", staffHandler.GetByID)
				staff.POST("", adminOnly, staffHandler.Create)
				staff.PUT("/:id", adminOnly, staffHandler.Update)
				staff.DELETE("/:id", adminOnly, staffHandler.Delete)
			}

			// ------------------------------
			// CALENDAR
			// ------------------------------
			calendar := secured.Group("/calendar")
			{
				calendar.GET("", calendarHandler.List)
				calendar.GET("/:id", calendarHandler.GetByID)
				calendar.POST("", calendarHandler.Create)
				calendar.PUT("/:id", calendarHandler.Update)
				calendar.DELETE("/:id", calendarHandler.Delete)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin", adminOnly)
			{
				admin.GET("/stats", dashboardHandler.Stats)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
