package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// accountHandler handles HTTP requests for the chart of accounts and the
// default-accounts settings.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers the account registry routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	heads := rg.Group("/account_heads")
	{
		heads.POST("", h.createAccountHead)
		heads.GET("", h.listAccountHeads)
		heads.GET("/:accountHeadID", h.getAccountHead)
		heads.PUT("/:accountHeadID", h.updateAccountHead)
		heads.DELETE("/:accountHeadID", h.deleteAccountHead)
	}

	settings := rg.Group("/account_settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

func (h *accountHandler) createAccountHead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountHeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create account head request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	head, err := h.accountService.CreateAccountHead(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountHeadResponse(head))
}

func (h *accountHandler) listAccountHeads(c *gin.Context) {
	page := parsePageParams(c)
	search := c.Query("search")

	heads, total, err := h.accountService.ListAccountHeads(c.Request.Context(), search, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Data:         dto.ToAccountHeadResponses(heads),
		TotalRecords: total,
		TotalPages:   pagination.TotalPages(total, page.PageSize),
		CurrentPage:  page.Page,
	})
}

func (h *accountHandler) getAccountHead(c *gin.Context) {
	head, err := h.accountService.GetAccountHead(c.Request.Context(), c.Param("accountHeadID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountHeadResponse(head))
}

func (h *accountHandler) updateAccountHead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAccountHeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update account head request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	head, err := h.accountService.UpdateAccountHead(c.Request.Context(), c.Param("accountHeadID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountHeadResponse(head))
}

func (h *accountHandler) deleteAccountHead(c *gin.Context) {
	if err := h.accountService.DeleteAccountHead(c.Request.Context(), c.Param("accountHeadID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) getSettings(c *gin.Context) {
	settings, err := h.accountService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

func (h *accountHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update settings request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.accountService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
