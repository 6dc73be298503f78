package dto

import (
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is one line of a posted journal.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalResponse is a posted journal with its lines.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	JournalDate        time.Time             `json:"journalDate"`
	ReferenceType      string                `json:"referenceType"`
	ReferenceID        string                `json:"referenceID"`
	Narration          string                `json:"narration"`
	Status             string                `json:"status"`
	OriginalJournalID  *string               `json:"originalJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	Lines              []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalResponse converts a domain journal (with lines, if loaded) to its
// response DTO.
func ToJournalResponse(journal *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          journal.JournalID,
		JournalDate:        journal.JournalDate,
		ReferenceType:      journal.ReferenceType,
		ReferenceID:        journal.ReferenceID,
		Narration:          journal.Narration,
		Status:             string(journal.Status),
		OriginalJournalID:  journal.OriginalJournalID,
		ReversingJournalID: journal.ReversingJournalID,
	}
	if len(journal.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(journal.Lines))
		for i, line := range journal.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:    line.LineID,
				AccountID: line.AccountID,
				Debit:     line.Debit,
				Credit:    line.Credit,
			}
		}
	}
	return resp
}
