package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// alertHandler handles HTTP requests related to rate alert rules.
type alertHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newAlertHandler creates a new alertHandler.
func newAlertHandler(ds portssvc.DashboardSvcFacade) *alertHandler {
	return &alertHandler{
		dashboardService: ds,
	}
}

// registerAlertRoutes registers routes related to alert rules.
func registerAlertRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newAlertHandler(dashboardService)

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", h.createAlert)
		alerts.DELETE("/:index", h.deleteAlert)
	}
}

// listAlerts godoc
// @Summary List alert rules
// @Description Returns all registered alert rules in creation order; the positional index doubles as the delete handle
// @Tags alerts
// @Produce  json
// @Success 200 {array} dto.AlertResponse
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	rules := h.dashboardService.ListAlerts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToAlertListResponse(rules))
}

// createAlert godoc
// @Summary Create an alert rule
// @Description Registers a rule for a currency crossing a target rate. Rules are held in memory and never evaluated; duplicates are permitted.
// @Tags alerts
// @Accept  json
// @Produce  json
// @Param   alert body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.AlertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /alerts [post]
func (h *alertHandler) createAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAlert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to create alert",
		slog.String("currency_code", req.Currency),
		slog.String("direction", req.Direction))

	rule, index := h.dashboardService.SubmitAlert(c.Request.Context(), req)

	logger.Info("Alert created successfully", slog.Int("index", index))
	c.JSON(http.StatusCreated, dto.ToAlertResponse(rule, index))
}

// deleteAlert godoc
// @Summary Delete an alert rule
// @Description Removes the rule at the positional index; the remaining rules keep their relative order
// @Tags alerts
// @Produce  json
// @Param   index path int true "Alert index (0-based)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Failed to delete alert"
// @Router /alerts/{index} [delete]
func (h *alertHandler) deleteAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	indexParam := c.Param("index")

	index, err := strconv.Atoi(indexParam)
	if err != nil {
		logger.Warn("Invalid alert index", slog.String("index", indexParam))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alert index must be an integer"})
		return
	}

	logger.Info("Received request to delete alert", slog.Int("index", index))

	if err := h.dashboardService.RemoveAlert(c.Request.Context(), index); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Alert not found", slog.Int("index", index))
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			logger.Error("Failed to delete alert in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		}
		return
	}

	logger.Info("Alert deleted successfully", slog.Int("index", index))
	c.Status(http.StatusNoContent)
}
