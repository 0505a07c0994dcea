package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ratesHandler handles HTTP requests related to the exchange rate snapshot.
type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RatesSvcFacade) *ratesHandler {
	return &ratesHandler{
		ratesService: rs,
	}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
	}
}

// getRates godoc
// @Summary Current exchange rates
// @Description Returns the latest rate snapshot in BRL per unit of foreign currency, plus loading and error state
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesStateResponse
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	state := h.ratesService.RatesState(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRatesStateResponse(state))
}

// refreshRates godoc
// @Summary Refresh exchange rates now
// @Description Runs a fetch cycle immediately instead of waiting for the next scheduled one and returns the resulting state
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesStateResponse
// @Router /rates/refresh [post]
func (h *ratesHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	state := h.ratesService.Refresh(c.Request.Context())
	if state.ErrMsg != "" {
		// A failed refresh is still a 200: the dashboard keeps the previous
		// snapshot and renders the error alongside it.
		logger.Warn("Refresh completed with error", slog.String("error", state.ErrMsg))
	}

	c.JSON(http.StatusOK, dto.ToRatesStateResponse(state))
}
