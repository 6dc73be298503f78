package accounting

import (
	"fmt"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebitIncreases reports whether the account type grows with debits.
// Assets and expenses are debit-increase; liabilities, equity and income
// are credit-increase.
func DebitIncreases(accountType domain.AccountType) (bool, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return true, nil
	case domain.Liability, domain.Equity, domain.Income:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, accountType)
	}
}

// NetAmount folds a (debit, credit) pair into the account's natural sign:
// debit-increase accounts net debit-credit, credit-increase accounts net
// credit-debit. Running balances and trial-balance nets both use this.
func NetAmount(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	debitIncreases, err := DebitIncreases(accountType)
	if err != nil {
		return decimal.Zero, err
	}
	if debitIncreases {
		return debit.Sub(credit), nil
	}
	return credit.Sub(debit), nil
}
