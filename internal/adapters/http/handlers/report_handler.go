package handlers

import (
	"strconv"
	"time"

	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles management report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard returns the combined management summary
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.reportService.GetDashboard(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Resumen recuperado", dashboard)
}

// Occupancy returns room counts per status
func (h *ReportHandler) Occupancy(c *fiber.Ctx) error {
	report, err := h.reportService.Occupancy(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Ocupacion recuperada", report)
}

// MonthlyIncome totals the payments inside one calendar month. Defaults to
// the current month when year or month are missing.
func (h *ReportHandler) MonthlyIncome(c *fiber.Ctx) error {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return response.BadRequest(c, "El parametro year no es valido")
	}

	monthNum, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return response.BadRequest(c, "El parametro month no es valido")
	}

	report, err := h.reportService.MonthlyIncome(c.Context(), year, time.Month(monthNum))
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Ingresos recuperados", report)
}

// OwnerSummary summarizes one owner's rooms, contracts and collected rent
func (h *ReportHandler) OwnerSummary(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "El id no es valido")
	}

	summary, err := h.reportService.ByOwner(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Resumen del propietario recuperado", summary)
}

// MaintenanceCosts totals ticket costs by status
func (h *ReportHandler) MaintenanceCosts(c *fiber.Ctx) error {
	report, err := h.reportService.MaintenanceCosts(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Costos de mantenimiento recuperados", report)
}
