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

// movementHandler handles HTTP requests related to movements.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.PUT("/:id", h.updateMovement)
		movements.DELETE("/:id", h.deleteMovement)
	}
}

func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.movementService.CreateMovement(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Movement already exists"})
		default:
			logger.Error("Failed to create movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		}
		return
	}

	// 202 signals a queued write: durable locally, not yet on the remote ledger.
	status := http.StatusCreated
	if result.Offline {
		status = http.StatusAccepted
	}
	c.JSON(status, dto.ToMovementWriteResponse(result))
}

func (h *movementHandler) listMovements(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementResponse(movements))
}

func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrOffline):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Movement edits require connectivity"})
		default:
			logger.Error("Failed to update movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

func (h *movementHandler) deleteMovement(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.movementService.DeleteMovement(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else if errors.Is(err, apperrors.ErrOffline) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Movement edits require connectivity"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
