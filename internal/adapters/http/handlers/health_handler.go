package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports service and database health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    dbStatus,
		"service":   "rentacuartos",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
