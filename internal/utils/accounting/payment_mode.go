package accounting

import (
	"strings"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// bankKeywords are matched as substrings of the caller's raw payment-method
// text. Anything containing one of these settles through the bank account.
var bankKeywords = []string{
	"bank",
	"card",
	"transfer",
	"cheque",
	"check",
	"upi",
	"paytm",
	"gpay",
	"phonepe",
	"wallet",
	"bkash",
	"nagad",
	"rocket",
}

// NormalizePaymentMode maps the caller's raw payment-method text onto the
// closed PaymentMode set. DUE must be stated explicitly; bank-like keywords
// select BANK; everything else defaults to CASH.
func NormalizePaymentMode(raw string) domain.PaymentMode {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "due" {
		return domain.PaymentDue
	}
	for _, kw := range bankKeywords {
		if strings.Contains(s, kw) {
			return domain.PaymentBank
		}
	}
	return domain.PaymentCash
}
