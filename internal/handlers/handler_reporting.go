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

// reportingHandler handles HTTP requests for the aggregate read views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report and balance sheet entry routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial_balance", h.getTrialBalance)
		reports.GET("/balance_sheet", h.getBalanceSheet)
		reports.GET("/ledger/:accountHeadID", h.getLedger)
	}

	entries := rg.Group("/balance_sheet_entries")
	{
		entries.POST("", h.createBalanceSheetEntry)
		entries.GET("", h.listBalanceSheetEntries)
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := parsePageParams(c)

	tb, total, err := h.reportingService.TrialBalance(c.Request.Context(), from, to, c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, total, pagination.TotalPages(total, page.PageSize), page.Page))
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := parsePageParams(c)

	bs, total, err := h.reportingService.BalanceSheet(c.Request.Context(), from, to, c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs, total, pagination.TotalPages(total, page.PageSize), page.Page))
}

// listBalanceSheetEntries reuses the balance sheet view; the entry listing is
// the same paged data without a separate envelope.
func (h *reportingHandler) listBalanceSheetEntries(c *gin.Context) {
	h.getBalanceSheet(c)
}

func (h *reportingHandler) getLedger(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger, err := h.reportingService.LedgerForAccount(c.Request.Context(), c.Param("accountHeadID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

func (h *reportingHandler) createBalanceSheetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBalanceSheetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid balance sheet entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.reportingService.AddBalanceSheetEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BalanceSheetEntryResponse{
		EntryID:  entry.EntryID,
		Name:     entry.Name,
		Category: string(entry.Category),
		Amount:   entry.Amount,
		Date:     entry.EntryDate.Format(dto.DateLayout),
	})
}
