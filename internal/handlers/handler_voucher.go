package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labledger/labledger_app/internal/core/domain"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// voucherHandler handles HTTP requests for all five voucher series and the
// stock purchase records.
type voucherHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	postingService portssvc.PostingSvcFacade
}

func newVoucherHandler(ls portssvc.LedgerSvcFacade, ps portssvc.PostingSvcFacade) *voucherHandler {
	return &voucherHandler{ledgerService: ls, postingService: ps}
}

// registerVoucherRoutes registers one route group per voucher series plus the
// stock purchase routes. Each series shares the same read/update/delete
// handlers; only the POST goes through a series-specific adapter.
func registerVoucherRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, postingService portssvc.PostingSvcFacade) {
	h := newVoucherHandler(ledgerService, postingService)

	jv := rg.Group("/journal_vouchers")
	{
		jv.POST("", h.postJournalVoucher)
		h.registerSeriesReads(jv, domain.JournalVoucherType)
	}

	adapters := []struct {
		path string
		vt   domain.VoucherType
		post func(*gin.Context)
	}{
		{"/cash_receipts", domain.CashReceipt, h.postAdapter(h.postingService.PostCashReceipt)},
		{"/cash_payments", domain.CashPayment, h.postAdapter(h.postingService.PostCashPayment)},
		{"/bank_receipts", domain.BankReceipt, h.postAdapter(h.postingService.PostBankReceipt)},
		{"/bank_payments", domain.BankPayment, h.postAdapter(h.postingService.PostBankPayment)},
	}
	for _, a := range adapters {
		group := rg.Group(a.path)
		group.POST("", a.post)
		h.registerSeriesReads(group, a.vt)
	}

	purchases := rg.Group("/stock_purchases")
	{
		purchases.POST("", h.postStockPurchase)
		purchases.GET("", h.listStockPurchases)
	}
}

func (h *voucherHandler) registerSeriesReads(group *gin.RouterGroup, vt domain.VoucherType) {
	group.GET("", h.listVouchers(vt))
	group.GET("/:voucherID", h.getVoucher)
	group.PUT("/:voucherID", h.updateVoucher(vt))
	group.DELETE("/:voucherID", h.deleteVoucher)
}

func (h *voucherHandler) postJournalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid journal voucher request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voucher, err := h.postingService.PostJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// postAdapter wraps one of the cash/bank posting adapters as a gin handler.
func (h *voucherHandler) postAdapter(post func(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req dto.PostingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Invalid posting request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		voucher, err := post(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
	}
}

func (h *voucherHandler) listVouchers(vt domain.VoucherType) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, err := parseDateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		page := parsePageParams(c)
		params := dto.ListVouchersParams{From: from, To: to, Search: c.Query("search")}

		vouchers, total, err := h.ledgerService.ListVouchers(c.Request.Context(), vt, params, page)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.PagedResponse{
			Data:         dto.ToVoucherResponses(vouchers),
			TotalRecords: total,
			TotalPages:   pagination.TotalPages(total, page.PageSize),
			CurrentPage:  page.Page,
		})
	}
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	voucher, err := h.ledgerService.GetVoucher(c.Request.Context(), c.Param("voucherID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) updateVoucher(vt domain.VoucherType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req dto.CreateVoucherRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Invalid voucher update request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		voucher, err := h.ledgerService.UpdateVoucher(c.Request.Context(), c.Param("voucherID"), vt, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
	}
}

func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	if err := h.ledgerService.DeleteVoucher(c.Request.Context(), c.Param("voucherID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *voucherHandler) postStockPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StockPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid stock purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.postingService.PostStockPurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockPurchaseResponse(purchase))
}

func (h *voucherHandler) listStockPurchases(c *gin.Context) {
	page := parsePageParams(c)

	purchases, total, err := h.ledgerService.ListStockPurchases(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Data:         dto.ToStockPurchaseResponses(purchases),
		TotalRecords: total,
		TotalPages:   pagination.TotalPages(total, page.PageSize),
		CurrentPage:  page.Page,
	})
}
