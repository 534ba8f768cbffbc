package routes

import (
	"log"

	"rentacuartos/internal/adapters/http/handlers"
	"rentacuartos/internal/adapters/http/middleware"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/config"
	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and returns the reminder
// scheduler so main can stop it on shutdown.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ReminderService {
	// Initialize repositories
	ownerRepo := repositories.NewOwnerRepository(db)
	tenantRepo := repositories.NewTenantRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	contractRepo := repositories.NewContractRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	catalogRepo := repositories.NewFurnitureCatalogRepository(db)
	roomFurnitureRepo := repositories.NewRoomFurnitureRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	loginRepo := repositories.NewLoginRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	// File storage for room images
	storage, err := upload.NewLocalStorage(cfg.Upload.ImagesDir, cfg.Upload.BaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Initialize services
	ownerService := services.NewOwnerService(ownerRepo)
	tenantService := services.NewTenantService(tenantRepo)
	roomService := services.NewRoomService(roomRepo, ownerRepo)
	contractService := services.NewContractService(contractRepo, roomRepo, tenantRepo, historyRepo)
	paymentService := services.NewPaymentService(paymentRepo, contractRepo, tenantRepo, historyRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, roomRepo)
	catalogService := services.NewFurnitureCatalogService(catalogRepo)
	roomFurnitureService := services.NewRoomFurnitureService(roomFurnitureRepo, roomRepo, catalogRepo)
	roleService := services.NewRoleService(roleRepo)
	userService := services.NewUserService(userRepo, roleRepo, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	loginService := services.NewLoginService(loginRepo, roleRepo, ownerRepo, tenantRepo)
	notificationService := services.NewNotificationService(notificationRepo, tenantRepo, contractRepo)
	imageService := services.NewImageService(imageRepo, roomRepo, storage)
	historyService := services.NewHistoryService(historyRepo)
	reportService := services.NewReportService(ownerRepo, roomRepo, contractRepo, paymentRepo, maintenanceRepo)
	reminderService := services.NewReminderService(contractRepo, notificationService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService, loginService)
	ownerHandler := handlers.NewOwnerHandler(ownerService, roomService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	roomHandler := handlers.NewRoomHandler(roomService, roomFurnitureService, imageService, maintenanceService)
	contractHandler := handlers.NewContractHandler(contractService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	furnitureHandler := handlers.NewFurnitureHandler(catalogService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(roleService, userService, historyService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check
	app.Get("/health", healthHandler.Check)

	// Static image files
	app.Static(cfg.Upload.BaseURL, cfg.Upload.ImagesDir)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, cfg,
		authHandler, ownerHandler, tenantHandler, roomHandler, contractHandler,
		paymentHandler, maintenanceHandler, furnitureHandler,
		notificationHandler, adminHandler, reportHandler)

	return reminderService
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	ownerHandler *handlers.OwnerHandler,
	tenantHandler *handlers.TenantHandler,
	roomHandler *handlers.RoomHandler,
	contractHandler *handlers.ContractHandler,
	paymentHandler *handlers.PaymentHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	furnitureHandler *handlers.FurnitureHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	reportHandler *handlers.ReportHandler,
) {
	// Auth routes (public, tightly rate limited)
	auth := router.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/portal/login", middleware.AuthRateLimiter(), authHandler.PortalLogin)

	// Everything below requires a staff session
	protected := router.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", middleware.StrictRateLimiter(), authHandler.ChangePassword)
	protected.Post("/auth/register", middleware.AdminOnly(), authHandler.Register)

	// Portal credentials (staff only)
	logins := protected.Group("/logins", middleware.StaffOrAdmin())
	logins.Get("/", authHandler.ListPortalLogins)
	logins.Post("/", authHandler.CreatePortalLogin)
	logins.Post("/:id/change-password", middleware.StrictRateLimiter(), authHandler.ChangePortalPassword)
	logins.Delete("/:id", middleware.AdminOnly(), authHandler.DeletePortalLogin)

	// Owners
	owners := protected.Group("/owners")
	owners.Get("/", ownerHandler.List)
	owners.Get("/:id", ownerHandler.Get)
	owners.Get("/:id/rooms", ownerHandler.ListRooms)
	owners.Post("/", middleware.StaffOrAdmin(), ownerHandler.Create)
	owners.Put("/:id", middleware.StaffOrAdmin(), ownerHandler.Update)
	owners.Delete("/:id", middleware.AdminOnly(), ownerHandler.Delete)

	// Tenants
	tenants := protected.Group("/tenants")
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.Get)
	tenants.Post("/", middleware.StaffOrAdmin(), tenantHandler.Create)
	tenants.Put("/:id", middleware.StaffOrAdmin(), tenantHandler.Update)
	tenants.Delete("/:id", middleware.AdminOnly(), tenantHandler.Delete)

	// Rooms, room furniture and room images
	rooms := protected.Group("/rooms")
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.Get)
	rooms.Post("/", middleware.StaffOrAdmin(), roomHandler.Create)
	rooms.Put("/:id", middleware.StaffOrAdmin(), roomHandler.Update)
	rooms.Patch("/:id/status", middleware.StaffOrAdmin(), roomHandler.ChangeStatus)
	rooms.Delete("/:id", middleware.AdminOnly(), roomHandler.Delete)

	rooms.Get("/:id/furniture", roomHandler.ListFurniture)
	rooms.Post("/:id/furniture", middleware.StaffOrAdmin(), roomHandler.AssignFurniture)
	rooms.Put("/:id/furniture/:furnitureId", middleware.StaffOrAdmin(), roomHandler.UpdateFurniture)
	rooms.Patch("/:id/furniture/:furnitureId/increment", middleware.StaffOrAdmin(), roomHandler.IncrementFurniture)
	rooms.Patch("/:id/furniture/:furnitureId/decrement", middleware.StaffOrAdmin(), roomHandler.DecrementFurniture)
	rooms.Delete("/:id/furniture/:furnitureId", middleware.StaffOrAdmin(), roomHandler.RemoveFurniture)

	rooms.Get("/:id/images", roomHandler.ListImages)
	rooms.Post("/:id/images", middleware.StaffOrAdmin(), roomHandler.UploadImage)
	rooms.Delete("/:id/images/:imageId", middleware.StaffOrAdmin(), roomHandler.DeleteImage)

	rooms.Get("/:id/maintenances", roomHandler.ListMaintenance)

	// Furniture catalog
	furniture := protected.Group("/furniture")
	furniture.Get("/", furnitureHandler.List)
	furniture.Get("/:id", furnitureHandler.Get)
	furniture.Post("/", middleware.StaffOrAdmin(), furnitureHandler.Create)
	furniture.Put("/:id", middleware.StaffOrAdmin(), furnitureHandler.Update)
	furniture.Delete("/:id", middleware.AdminOnly(), furnitureHandler.Delete)

	// Contracts
	contracts := protected.Group("/contracts")
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.Get)
	contracts.Get("/:id/payments", contractHandler.ListPayments)
	contracts.Post("/", middleware.StaffOrAdmin(), contractHandler.Create)
	contracts.Put("/:id", middleware.StaffOrAdmin(), contractHandler.Update)
	contracts.Post("/:id/finalize", middleware.StaffOrAdmin(), contractHandler.Finalize)
	contracts.Delete("/:id", middleware.AdminOnly(), contractHandler.Delete)

	// Payments
	payments := protected.Group("/payments")
	payments.Get("/", paymentHandler.List)
	payments.Get("/sum", paymentHandler.SumByRange)
	payments.Get("/:id", paymentHandler.Get)
	payments.Post("/", middleware.StaffOrAdmin(), paymentHandler.Create)
	payments.Put("/:id", middleware.StaffOrAdmin(), paymentHandler.Update)
	payments.Patch("/:id/status", middleware.StaffOrAdmin(), paymentHandler.ChangeStatus)
	payments.Delete("/:id", middleware.AdminOnly(), paymentHandler.Delete)

	// Maintenance
	maintenances := protected.Group("/maintenances")
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.Get)
	maintenances.Post("/", middleware.StaffOrAdmin(), maintenanceHandler.Create)
	maintenances.Put("/:id", middleware.StaffOrAdmin(), maintenanceHandler.Update)
	maintenances.Patch("/:id/status", middleware.StaffOrAdmin(), maintenanceHandler.ChangeStatus)
	maintenances.Delete("/:id", middleware.AdminOnly(), maintenanceHandler.Delete)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/tenant/:tenantId", notificationHandler.ListByTenant)
	notifications.Get("/tenant/:tenantId/stats", notificationHandler.StatsByTenant)
	notifications.Post("/", middleware.StaffOrAdmin(), notificationHandler.Create)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", middleware.StaffOrAdmin(), notificationHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/occupancy", reportHandler.Occupancy)
	reports.Get("/income", reportHandler.MonthlyIncome)
	reports.Get("/maintenance-costs", reportHandler.MaintenanceCosts)
	reports.Get("/owners/:id", reportHandler.OwnerSummary)

	// Administration (admin only)
	admin := protected.Group("/admin", middleware.AdminOnly())
	admin.Get("/roles", adminHandler.ListRoles)
	admin.Post("/roles", adminHandler.CreateRole)
	admin.Put("/roles/:id", adminHandler.UpdateRole)
	admin.Delete("/roles/:id", adminHandler.DeleteRole)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Patch("/users/:id/role", adminHandler.ChangeUserRole)
	admin.Patch("/users/:id/active", adminHandler.SetUserActive)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	admin.Get("/history", adminHandler.ListHistory)
	admin.Get("/history/:entity/:entityId", adminHandler.ListEntityHistory)
}
