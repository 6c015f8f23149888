package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	rg.GET("/categories", h.listCategories)
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}
