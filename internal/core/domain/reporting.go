package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceStatus reports whether the books reconcile.
type TrialBalanceStatus string

const (
	Balanced   TrialBalanceStatus = "BALANCED"
	Unbalanced TrialBalanceStatus = "UNBALANCED"
)

// TrialBalanceRow is one account's position in a trial balance. The net
// balance lands in exactly one of the Debit/Credit columns depending on
// its sign relative to the account's normal balance.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport is an all-accounts snapshot as of a date. Status is
// UNBALANCED rather than an error when the totals drift, so operators can
// detect the condition from a successful query.
type TrialBalanceReport struct {
	AsOf        time.Time          `json:"asOf"`
	Rows        []TrialBalanceRow  `json:"rows"`
	TotalDebit  decimal.Decimal    `json:"totalDebit"`
	TotalCredit decimal.Decimal    `json:"totalCredit"`
	Status      TrialBalanceStatus `json:"status"`
}

// LedgerLine is one journal line of an account's ledger annotated with the
// running balance after the line is applied.
type LedgerLine struct {
	JournalID      string          `json:"journalID"`
	JournalDate    time.Time       `json:"journalDate"`
	Narration      string          `json:"narration"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is the per-account ledger over a date range.
type LedgerReport struct {
	Account        Account         `json:"account"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
