package accounting

import (
	"testing"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentMode(t *testing.T) {
	testCases := []struct {
		raw      string
		expected domain.PaymentMode
	}{
		{"", domain.PaymentCash},
		{"cash", domain.PaymentCash},
		{"Cash", domain.PaymentCash},
		{"  CASH  ", domain.PaymentCash},
		{"due", domain.PaymentDue},
		{"DUE", domain.PaymentDue},
		{"bank", domain.PaymentBank},
		{"Bank Transfer", domain.PaymentBank},
		{"debit card", domain.PaymentBank},
		{"cheque", domain.PaymentBank},
		{"check", domain.PaymentBank},
		{"UPI", domain.PaymentBank},
		{"paytm", domain.PaymentBank},
		{"GPay", domain.PaymentBank},
		{"phonepe", domain.PaymentBank},
		{"mobile wallet", domain.PaymentBank},
		{"bKash", domain.PaymentBank},
		{"nagad", domain.PaymentBank},
		{"rocket", domain.PaymentBank},
		// Unknown methods fall back to cash.
		{"barter", domain.PaymentCash},
		{"gift", domain.PaymentCash},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePaymentMode(tc.raw))
		})
	}
}
