package controllers

import (
	"fmt"
	"time"

	"plot-sales-backend/applications/services"
	"plot-sales-backend/config"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var applicationsReportHeaders = []string{
	"ID", "Applicant", "Email", "Phone", "Property", "Amount", "Payment Plan", "Applied Date", "Status",
}

// ExportApplicationsController downloads the (optionally filtered)
// applications register as an Excel workbook.
func (ac *ApplicationController) ExportApplicationsController(c *fiber.Ctx) error {
	searchTerm := c.Query("search")
	statusFilter := c.Query("status", services.StatusFilterAll)

	if err := services.IsValidStatusFilter(statusFilter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid status filter",
			"error":   err.Error(),
		})
	}

	applications, err := ac.ApplicationRepo.GetAllApplications()
	if err != nil {
		config.Logger.Error("Failed to fetch applications for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch applications",
			"error":   err.Error(),
		})
	}

	filtered := services.FilterApplications(applications, searchTerm, statusFilter)

	rows := make([][]interface{}, 0, len(filtered))
	for _, app := range filtered {
		rows = append(rows, []interface{}{
			app.ID,
			app.ApplicantName,
			app.Email,
			app.Phone,
			app.PropertyName,
			app.Amount,
			app.PaymentPlan,
			app.AppliedDate.String(),
			string(app.Status),
		})
	}

	buf, err := utils.GenerateExcel("Applications", applicationsReportHeaders, rows)
	if err != nil {
		config.Logger.Error("Failed to generate applications report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate report",
			"error":   err.Error(),
		})
	}

	filename := fmt.Sprintf("applications_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
