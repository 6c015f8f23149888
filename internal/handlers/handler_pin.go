package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

// pinHandler gates the local strong-auth PIN.
type pinHandler struct {
	authService portssvc.StrongAuthSvc
}

// registerPINRoutes registers routes related to the unlock PIN.
func registerPINRoutes(rg *gin.RouterGroup, authService portssvc.StrongAuthSvc) {
	h := &pinHandler{authService: authService}

	pin := rg.Group("/pin")
	{
		pin.PUT("", h.setPIN)
		pin.POST("/challenge", h.challenge)
	}
}

func (h *pinHandler) setPIN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPIN", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.SetPIN(c.Request.Context(), req.PIN); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set PIN", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set PIN"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *pinHandler) challenge(c *gin.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.authService.Challenge(c.Request.Context(), req.PIN)

	status := http.StatusOK
	if result == portssvc.AuthDenied {
		status = http.StatusForbidden
	}
	c.JSON(status, dto.ChallengeResponse{Result: string(result)})
}
