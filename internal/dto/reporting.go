package dto

import (
	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLineResponse is one ledger line annotated with its running balance.
type LedgerLineResponse struct {
	JournalID      string          `json:"journalID"`
	JournalDate    string          `json:"journalDate"`
	Narration      string          `json:"narration"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReportResponse is the per-account ledger over a date range.
type LedgerReportResponse struct {
	Account        AccountResponse      `json:"account"`
	FromDate       string               `json:"fromDate"`
	ToDate         string               `json:"toDate"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
}

// TrialBalanceRowResponse is one account's row in the trial balance.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the all-accounts snapshot as of a date.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Status string `json:"status"`
}

const reportDateLayout = "2006-01-02"

// ToLedgerReportResponse converts a domain ledger report to its response DTO.
func ToLedgerReportResponse(report *domain.LedgerReport) LedgerReportResponse {
	resp := LedgerReportResponse{
		Account:        ToAccountResponse(&report.Account),
		FromDate:       report.From.Format(reportDateLayout),
		ToDate:         report.To.Format(reportDateLayout),
		OpeningBalance: report.OpeningBalance,
		Lines:          make([]LedgerLineResponse, len(report.Lines)),
		ClosingBalance: report.ClosingBalance,
	}
	for i, line := range report.Lines {
		resp.Lines[i] = LedgerLineResponse{
			JournalID:      line.JournalID,
			JournalDate:    line.JournalDate.Format(reportDateLayout),
			Narration:      line.Narration,
			Debit:          line.Debit,
			Credit:         line.Credit,
			RunningBalance: line.RunningBalance,
		}
	}
	return resp
}

// ToTrialBalanceResponse converts a domain trial balance to its response DTO.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf:   report.AsOf.Format(reportDateLayout),
		Rows:   make([]TrialBalanceRowResponse, len(report.Rows)),
		Status: string(report.Status),
	}
	for i, row := range report.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	resp.Totals.Debit = report.TotalDebit
	resp.Totals.Credit = report.TotalCredit
	return resp
}
