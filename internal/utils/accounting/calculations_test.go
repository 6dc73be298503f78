package accounting

import (
	"errors"
	"testing"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebitIncreases(t *testing.T) {
	testCases := []struct {
		accountType domain.AccountType
		expected    bool
	}{
		{domain.Asset, true},
		{domain.Expense, true},
		{domain.Liability, false},
		{domain.Equity, false},
		{domain.Income, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.accountType), func(t *testing.T) {
			got, err := DebitIncreases(tc.accountType)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDebitIncreases_UnknownType(t *testing.T) {
	_, err := DebitIncreases(domain.AccountType("CONTRA"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestNetAmount(t *testing.T) {
	debit := decimal.NewFromInt(700)
	credit := decimal.NewFromInt(300)

	// Debit-increase natures net debit minus credit.
	net, err := NetAmount(domain.Asset, debit, credit)
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(400)), "asset net = %s", net)

	// Credit-increase natures net credit minus debit.
	net, err = NetAmount(domain.Income, debit, credit)
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(-400)), "income net = %s", net)

	// A credit-heavy asset yields a negative (contra) balance.
	net, err = NetAmount(domain.Asset, decimal.NewFromInt(100), decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.NewFromInt(-150)), "contra net = %s", net)
}
