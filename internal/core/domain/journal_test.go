package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBalancedLines(t *testing.T) {
	now := time.Now().UTC()
	counter := 0
	newID := func() string {
		counter++
		return fmt.Sprintf("line-%d", counter)
	}

	amount := decimal.RequireFromString("123.45")
	lines := NewBalancedLines("journal-1", "acct-debit", "acct-credit", amount, newID, now)

	require.Len(t, lines, 2)

	debitLine, creditLine := lines[0], lines[1]
	assert.Equal(t, "acct-debit", debitLine.AccountID)
	assert.True(t, debitLine.Debit.Equal(amount))
	assert.True(t, debitLine.Credit.IsZero())

	assert.Equal(t, "acct-credit", creditLine.AccountID)
	assert.True(t, creditLine.Credit.Equal(amount))
	assert.True(t, creditLine.Debit.IsZero())

	// The pair always balances and shares the journal.
	assert.True(t, debitLine.Debit.Equal(creditLine.Credit))
	for _, line := range lines {
		assert.Equal(t, "journal-1", line.JournalID)
		assert.Equal(t, now, line.CreatedAt)
	}
	assert.NotEqual(t, debitLine.LineID, creditLine.LineID)
}
