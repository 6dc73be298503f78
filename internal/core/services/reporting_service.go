package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/utils/accounting"
)

// reportingService computes ledger and trial-balance reports. It only reads
// committed data and never mutates the store.
type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// LedgerReport computes an account's ledger over [from, to]. The opening
// balance is the net of all lines dated before the range; each line inside
// the range carries the running balance after applying it.
func (s *reportingService) LedgerReport(ctx context.Context, accountCode string, from, to time.Time) (*domain.LedgerReport, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	openingDebit, openingCredit, err := s.reportingRepo.SumAccountActivity(ctx, account.AccountID, from)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}
	opening, err := accounting.NetAmount(account.AccountType, openingDebit, openingCredit)
	if err != nil {
		return nil, fmt.Errorf("failed to net opening balance: %w", err)
	}

	lines, err := s.reportingRepo.FindAccountLines(ctx, account.AccountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger lines", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to fetch ledger lines: %w", err)
	}

	running := opening
	for i := range lines {
		delta, err := accounting.NetAmount(account.AccountType, lines[i].Debit, lines[i].Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to fold running balance: %w", err)
		}
		running = running.Add(delta)
		lines[i].RunningBalance = running
	}

	report := &domain.LedgerReport{
		Account:        *account,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Lines:          lines,
		ClosingBalance: running,
	}

	s.LogInfo(ctx, "Ledger report generated",
		slog.String("account_code", accountCode),
		slog.Int("line_count", len(lines)),
		slog.String("closing_balance", running.String()))
	return report, nil
}

// TrialBalance computes one row per account as of the date, classifying each
// net balance into the debit or credit column by its sign. Drift between the
// column totals yields status UNBALANCED rather than an error.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	activity, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data", slog.String("as_of", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(activity)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, act := range activity {
		net, err := accounting.NetAmount(act.AccountType, act.Debit, act.Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to net balance for account %s: %w", act.AccountCode, err)
		}

		row := domain.TrialBalanceRow{
			AccountCode: act.AccountCode,
			AccountName: act.AccountName,
			AccountType: act.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}

		debitIncreases, err := accounting.DebitIncreases(act.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to classify account %s: %w", act.AccountCode, err)
		}
		// A contra balance (net below zero) flips into the opposite column.
		debitColumn := debitIncreases
		if net.IsNegative() {
			debitColumn = !debitColumn
			net = net.Abs()
		}
		if debitColumn {
			row.Debit = net
		} else {
			row.Credit = net
		}

		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.Rows = append(report.Rows, row)
	}

	// Decimal arithmetic keeps this check exact; no epsilon needed.
	if report.TotalDebit.Equal(report.TotalCredit) {
		report.Status = domain.Balanced
	} else {
		report.Status = domain.Unbalanced
		s.GetLogger(ctx).Warn("Trial balance does not reconcile",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("as_of", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(report.Rows)),
		slog.String("status", string(report.Status)))
	return report, nil
}
