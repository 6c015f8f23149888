package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

// syncHandler exposes the offline queue drain and its derived status.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
	monitor     local.ConnectivityMonitor
}

// registerSyncRoutes registers routes related to offline synchronization.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade, monitor local.ConnectivityMonitor) {
	h := &syncHandler{syncService: syncService, monitor: monitor}

	sync := rg.Group("/sync")
	{
		sync.POST("", h.triggerSync)
		sync.GET("/status", h.syncStatus)
	}
}

func (h *syncHandler) triggerSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrSyncInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": "A sync pass is already running"})
			return
		}
		logger.Error("Sync pass failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sync failed"})
		return
	}

	pending := h.syncService.PendingCount(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSyncResultResponse(result, pending))
}

func (h *syncHandler) syncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SyncStatusResponse{
		Online:       h.monitor.Online(),
		Syncing:      h.syncService.Syncing(),
		PendingCount: h.syncService.PendingCount(c.Request.Context()),
	})
}
