package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for currency conversions.
type conversionHandler struct {
	dashboardService portssvc.DashboardIntentSvc
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(ds portssvc.DashboardIntentSvc) *conversionHandler {
	return &conversionHandler{
		dashboardService: ds,
	}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardIntentSvc) {
	h := newConversionHandler(dashboardService)

	rg.POST("/conversions", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts the amount at the current snapshot rates and records the result in the dashboard state. A missing or non-numeric amount yields "0.00" rather than an error.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /conversions [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	result := h.dashboardService.SubmitConversion(c.Request.Context(), req)

	logger.Info("Conversion computed",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.String("result", result))

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: req.Amount,
		From:   req.From,
		To:     req.To,
		Result: result,
	})
}
