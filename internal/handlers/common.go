package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// respondError maps service errors onto the API's status codes. Anything not
// matching a known sentinel is a 500 with a generic body; details stay in the
// logs.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConfiguration):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parsePageParams reads the currentpage/recordperpage query params, clamped
// to sane bounds.
func parsePageParams(c *gin.Context) pagination.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("currentpage", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("recordperpage", strconv.Itoa(pagination.DefaultPageSize)))
	return pagination.Normalize(page, pageSize)
}

// parseDateRange reads the optional from/to query params. A present but
// malformed value is an error; absence yields nil.
func parseDateRange(c *gin.Context) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := time.Parse(dto.DateLayout, s)
		if perr != nil {
			return nil, nil, errors.New("invalid from date, use YYYY-MM-DD")
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := time.Parse(dto.DateLayout, s)
		if perr != nil {
			return nil, nil, errors.New("invalid to date, use YYYY-MM-DD")
		}
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, errors.New("from must be before or equal to to")
	}
	return from, to, nil
}
