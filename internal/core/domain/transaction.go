package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of business event a transaction records.
type TransactionType string

const (
	TxnSales           TransactionType = "SALES"
	TxnPurchase        TransactionType = "PURCHASE"
	TxnPaymentIn       TransactionType = "PAYMENT_IN"
	TxnPaymentOut      TransactionType = "PAYMENT_OUT"
	TxnSalesReturn     TransactionType = "SALES_RETURN"
	TxnPurchaseReturn  TransactionType = "PURCHASE_RETURN"
	TxnExpense         TransactionType = "EXPENSE"
	TxnIncome          TransactionType = "INCOME"
	TxnBankDeposit     TransactionType = "BANK_DEPOSIT"
	TxnProfessionalFee TransactionType = "PROFESSIONAL_FEE"
)

// PaymentMode is the normalized settlement mode of a business transaction.
type PaymentMode string

const (
	PaymentCash PaymentMode = "CASH"
	PaymentBank PaymentMode = "BANK"
	PaymentDue  PaymentMode = "DUE"
)

// Transaction is the immutable record of a raw business event, persisted
// independently of its accounting interpretation. Exactly one Journal
// references it via ReferenceID once posted.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
	PaymentMode     PaymentMode     `json:"paymentMode"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"` // Nullable
	AuditFields
}
