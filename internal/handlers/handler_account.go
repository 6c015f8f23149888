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

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.PUT("/:id/balance", h.setCurrentBalance)
	}

	// Static sibling of /accounts/:id would conflict in gin's router, so the
	// consolidated total lives at the group root.
	rg.GET("/balance", h.consolidatedBalance)
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

func (h *accountHandler) getAccountBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountID := c.Param("id")
	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account"})
		}
		return
	}

	balance, err := h.accountService.AccountBalance(c.Request.Context(), accountID, userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to derive account balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balance"})
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:    accountID,
		CurrencyCode: account.CurrencyCode,
		Balance:      balance,
	})
}

func (h *accountHandler) consolidatedBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	consolidated, err := h.accountService.ConsolidatedBalance(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to consolidate balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to consolidate balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ConsolidatedBalanceResponse{
		TotalUSD: consolidated.TotalUSD,
		Degraded: consolidated.Degraded,
	})
}

func (h *accountHandler) setCurrentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCurrentBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.SetCurrentBalance(c.Request.Context(), c.Param("id"), req.CurrentBalance, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to set current balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
