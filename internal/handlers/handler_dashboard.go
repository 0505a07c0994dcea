package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the assembled dashboard state
// and its selection intents.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers routes related to the dashboard view-state.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.POST("/currency", h.selectCurrency)
		dashboard.POST("/range", h.selectRange)
	}
}

// getDashboard godoc
// @Summary Full dashboard state
// @Description Returns rates, the active chart selection with its synthesized history, the last conversion result and all alerts
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStateResponse
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	state := h.dashboardService.State(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToDashboardStateResponse(state))
}

// selectCurrency godoc
// @Summary Select the charted currency
// @Description Switches the currency whose history the chart shows and returns the updated dashboard state
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   selection body dto.SelectCurrencyRequest true "Currency selection"
// @Success 200 {object} dto.DashboardStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /dashboard/currency [post]
func (h *dashboardHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to select currency", slog.String("currency_code", req.Code))

	state := h.dashboardService.SelectCurrency(c.Request.Context(), req.Code)
	c.JSON(http.StatusOK, dto.ToDashboardStateResponse(state))
}

// selectRange godoc
// @Summary Select the chart range
// @Description Switches the period the history chart covers and returns the updated dashboard state
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   selection body dto.SelectRangeRequest true "Range selection (24h, 7d, 30d or 1y)"
// @Success 200 {object} dto.DashboardStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to select range"
// @Router /dashboard/range [post]
func (h *dashboardHandler) selectRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectRange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request to select range", slog.String("range", req.Range))

	state, err := h.dashboardService.SelectRange(c.Request.Context(), req.Range)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid range requested", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to select range in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select range"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStateResponse(state))
}
