package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to VES/USD rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := &exchangeRateHandler{rateService: rateService}

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listRates)
		rates.GET("/latest", h.latestRate)
		rates.GET("/resolve", h.resolveRate)
	}
}

func (h *exchangeRateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A rate for that date already exists"})
		default:
			logger.Error("Failed to create exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) listRates(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

func (h *exchangeRateHandler) latestRate(c *gin.Context) {
	res, err := h.rateService.Latest(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get latest exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get latest exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResolutionResponse(res))
}

// resolveRate answers "what rate applies to this date" with the same
// degrade-gracefully policy the movement write path uses.
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	dateParam := c.DefaultQuery("date", time.Now().UTC().Format(domain.DateFormat))
	date, err := domain.ParseDay(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	res, err := h.rateService.Resolve(c.Request.Context(), date)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResolutionResponse(res))
}
