package dto

import (
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessTransactionRequest is the payload collaborator modules submit after
// their own domain write succeeds. PaymentMode carries the caller's raw
// payment-method text; the engine normalizes it.
type ProcessTransactionRequest struct {
	Type        string          `json:"type" binding:"required,txncode"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode string          `json:"paymentMode"`
	Date        *time.Time      `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
	// SettlesLiability marks a payment that clears a previously accrued
	// liability rather than recording a fresh expense.
	SettlesLiability bool `json:"settlesLiability,omitempty"`
}

// TransactionResponse mirrors the stored business transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMode     string          `json:"paymentMode"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ProcessTransactionResponse pairs the recorded transaction with its posted
// journal. When lenient posting fails after the record, Journal is null and
// PostingError carries the failure so callers can alert or retry.
type ProcessTransactionResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	Journal      *JournalResponse    `json:"journal,omitempty"`
	PostingError string              `json:"postingError,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		PaymentMode:     string(txn.PaymentMode),
		TransactionDate: txn.TransactionDate,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
	}
}
