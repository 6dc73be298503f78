package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference types a journal can carry. Journals created from business
// transactions reference the transaction; reversing journals reference the
// journal they undo.
const (
	ReferenceTypeTransaction = "TRANSACTION"
	ReferenceTypeJournal     = "JOURNAL"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal represents a single, balanced financial event. Its lines always sum
// to equal debits and credits; in this engine there are exactly two lines.
// Journals are never edited after creation; corrections are new, reversing
// journals that link back to the original.
type Journal struct {
	JournalID          string        `json:"journalID"`   // Primary Key (UUID)
	JournalDate        time.Time     `json:"journalDate"` // Date the event occurred
	ReferenceType      string        `json:"referenceType"`
	ReferenceID        string        `json:"referenceID"` // Weak back-reference to the source
	Narration          string        `json:"narration"`
	Status             JournalStatus `json:"status"`
	OriginalJournalID  *string       `json:"originalJournalID,omitempty"`  // Set on reversing journals
	ReversingJournalID *string       `json:"reversingJournalID,omitempty"` // Set on reversed journals
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Loaded separately unless requested
}

// JournalLine is one side of a posting. Exactly one of Debit/Credit is
// nonzero per line.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (UUID)
	JournalID string          `json:"journalID"` // FK -> Journal.journalID
	AccountID string          `json:"accountID"` // FK -> Account.accountID
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	AuditFields
}

// NewBalancedLines builds the canonical two-line posting for an amount:
// one debit line and one credit line of the same magnitude.
func NewBalancedLines(journalID, debitAccountID, creditAccountID string, amount decimal.Decimal, newID func() string, now time.Time) []JournalLine {
	audit := AuditFields{CreatedAt: now, LastUpdatedAt: now}
	return []JournalLine{
		{
			LineID:      newID(),
			JournalID:   journalID,
			AccountID:   debitAccountID,
			Debit:       amount,
			Credit:      decimal.Zero,
			AuditFields: audit,
		},
		{
			LineID:      newID(),
			JournalID:   journalID,
			AccountID:   creditAccountID,
			Debit:       decimal.Zero,
			Credit:      amount,
			AuditFields: audit,
		},
	}
}
