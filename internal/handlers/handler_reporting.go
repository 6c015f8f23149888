package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to period analytics.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/reports/monthly", h.monthlySummary)
}

func (h *reportingHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for MonthlySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, params.Year, params.Month)
	if err != nil {
		logger.Error("Failed to build monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
