package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/dto"
	"github.com/clinicore/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for transaction posting and journals.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes for transactions and journals.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.processTransaction)
	}
	journals := rg.Group("/journals")
	{
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/reverse", h.reverseJournal)
	}
}

// processTransaction godoc
// @Summary Record a business transaction
// @Description Records a transaction and posts its balanced double-entry journal
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.ProcessTransactionRequest true "Transaction details"
// @Success 201 {object} dto.ProcessTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unsupported transaction type"
// @Failure 500 {object} map[string]string "Failed to process transaction"
// @Router /transactions [post]
func (h *ledgerHandler) processTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to process transaction",
		slog.String("type", string(req.Type)),
		slog.String("amount", req.Amount.String()),
	)

	txn, journal, err := h.ledgerService.ProcessTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error processing transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUnsupportedTransactionType) {
			logger.Warn("Unsupported transaction type", slog.String("type", string(req.Type)))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrAccountNotFound) {
			logger.Error("Posting account missing", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else if txn != nil {
			// Lenient posting mode: the transaction was recorded but its
			// journal failed. Surface the partial result with the posting
			// error spelled out so callers can alert or retry.
			logger.Warn("Transaction recorded without journal", slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusCreated, dto.ProcessTransactionResponse{
				Transaction:  dto.ToTransactionResponse(txn),
				PostingError: err.Error(),
			})
		} else {
			logger.Error("Failed to process transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		}
		return
	}

	resp := dto.ProcessTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
	}
	if journal != nil {
		jr := dto.ToJournalResponse(journal)
		resp.Journal = &jr
	}

	logger.Info("Transaction processed successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, resp)
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves a journal entry with its posting lines
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Router /journals/{journalID} [get]
func (h *ledgerHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.ledgerService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else {
			logger.Error("Failed to retrieve journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// reverseJournal godoc
// @Summary Reverse a posted journal
// @Description Posts a new journal with debit and credit swapped and marks the original REVERSED
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 201 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal already reversed or is a reversal"
// @Failure 500 {object} map[string]string "Failed to reverse journal"
// @Router /journals/{journalID}/reverse [post]
func (h *ledgerHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	reversing, err := h.ledgerService.ReverseJournal(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found for reversal", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Journal cannot be reversed", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reverse journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse journal"})
		}
		return
	}

	logger.Info("Journal reversed", slog.String("journal_id", journalID), slog.String("reversing_journal_id", reversing.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversing))
}
