package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

// draftHandler stages in-progress form state. Drafts are whole-value JSON
// blobs keyed per form; the store expires them on its own.
type draftHandler struct {
	drafts local.DraftStore
}

// registerDraftRoutes registers routes related to form drafts.
func registerDraftRoutes(rg *gin.RouterGroup, drafts local.DraftStore) {
	h := &draftHandler{drafts: drafts}

	group := rg.Group("/drafts")
	{
		group.PUT("/:form", h.saveDraft)
		group.GET("/:form", h.loadDraft)
		group.DELETE("/:form", h.clearDraft)
	}
}

func (h *draftHandler) saveDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Draft body must be valid JSON"})
		return
	}

	if err := h.drafts.Save(c.Request.Context(), c.Param("form"), body); err != nil {
		logger.Error("Failed to save draft", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *draftHandler) loadDraft(c *gin.Context) {
	data, ok, err := h.drafts.Load(c.Request.Context(), c.Param("form"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load draft", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft found"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (h *draftHandler) clearDraft(c *gin.Context) {
	if err := h.drafts.Clear(c.Request.Context(), c.Param("form")); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to clear draft", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear draft"})
		return
	}
	c.Status(http.StatusNoContent)
}
