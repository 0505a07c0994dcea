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

// historyHandler handles HTTP requests for synthesized history series.
type historyHandler struct {
	dashboardService portssvc.DashboardReaderSvc
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(ds portssvc.DashboardReaderSvc) *historyHandler {
	return &historyHandler{
		dashboardService: ds,
	}
}

// registerHistoryRoutes registers routes related to history series.
func registerHistoryRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardReaderSvc) {
	h := newHistoryHandler(dashboardService)

	rg.GET("/history", h.getHistory)
}

// getHistory godoc
// @Summary Synthesized history for a currency and range
// @Description Returns a labelled series for the requested pair without changing the active dashboard selection
// @Tags history
// @Produce  json
// @Param   currency query string true "Currency code" example(USD)
// @Param   range query string true "History range (24h, 7d, 30d or 1y)" example(7d)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build history"
// @Router /history [get]
func (h *historyHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.HistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	logger.Info("Received request for history",
		slog.String("currency_code", params.Currency),
		slog.String("range", params.Range))

	points, err := h.dashboardService.HistoryFor(c.Request.Context(), params.Currency, params.Range)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid history request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build history in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Currency: params.Currency,
		Range:    params.Range,
		Points:   dto.ToHistoryPointResponses(points),
	})
}
