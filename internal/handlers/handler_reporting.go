package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/dto"
	"github.com/clinicore/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for ledger and trial balance reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes for financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/ledger", h.getLedgerReport)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(reportDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// endOfDay extends a date-only value to the last instant of that day, so a
// report bound of 2026-08-28 still covers journals timestamped later that day.
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// getLedgerReport godoc
// @Summary Account ledger report
// @Description Returns the posting lines for one account with a running balance
// @Tags reports
// @Produce  json
// @Param   account query string true "Account code"
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build ledger report"
// @Router /reports/ledger [get]
func (h *reportingHandler) getLedgerReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountCode := c.Query("account")
	if accountCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account query parameter is required"})
		return
	}

	from, err := parseDateParam(c, "fromDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be formatted as YYYY-MM-DD"})
		return
	}
	to, err := parseDateParam(c, "toDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must be formatted as YYYY-MM-DD"})
		return
	}

	// Omitted bounds default to the start of the books and now.
	fromDate := time.Time{}
	if from != nil {
		fromDate = *from
	}
	toDate := time.Now().UTC()
	if to != nil {
		toDate = endOfDay(*to)
	}

	report, err := h.reportingService.LedgerReport(c.Request.Context(), accountCode, fromDate, toDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for ledger report", slog.String("account_code", accountCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to build ledger report", slog.String("account_code", accountCode), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ledger report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerReportResponse(report))
}

// getTrialBalance godoc
// @Summary Trial balance report
// @Description Returns debit and credit balances per account with totals and status
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := parseDateParam(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be formatted as YYYY-MM-DD"})
		return
	}
	reportDate := time.Now().UTC()
	if asOf != nil {
		reportDate = endOfDay(*asOf)
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), reportDate)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}
