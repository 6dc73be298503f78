package accounting

import (
	"fmt"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// AccountRole is the closed set of chart-of-accounts codes the posting
// rules resolve against. Roles map 1:1 onto seeded Account codes.
type AccountRole string

const (
	RoleCash           AccountRole = "CASH"
	RoleBank           AccountRole = "BANK"
	RoleReceivable     AccountRole = "AR"
	RolePayable        AccountRole = "AP"
	RoleSales          AccountRole = "SALES"
	RolePurchase       AccountRole = "PURCHASE"
	RoleSalesReturn    AccountRole = "SALES_RETURN"
	RolePurchaseReturn AccountRole = "PURCHASE_RETURN"
	RoleOfficeExpense  AccountRole = "OFFICE_EXPENSE"
	RoleOtherIncome    AccountRole = "OTHER_INCOME"
	RoleSurgeonFee     AccountRole = "SURGEON_FEE"
	RolePayableSurgeon AccountRole = "PAYABLE_SURGEON"
	RoleCapital        AccountRole = "CAPITAL"
)

// PostingContext carries the optional flags some rules depend on.
type PostingContext struct {
	// SettlesLiability marks a PROFESSIONAL_FEE payment that clears a
	// previously accrued PAYABLE_SURGEON balance instead of recording a
	// fresh expense.
	SettlesLiability bool
}

// PostingRule is the resolved debit/credit account pair for one posting.
type PostingRule struct {
	Debit  AccountRole
	Credit AccountRole
}

// ResolvePostingRule maps a business-event type and payment mode onto the
// debit/credit account pair to post. It is pure and total over the
// supported transaction types; anything else fails with
// apperrors.ErrUnsupportedTransactionType before any write happens.
func ResolvePostingRule(txnType domain.TransactionType, mode domain.PaymentMode, pctx PostingContext) (PostingRule, error) {
	switch txnType {
	case domain.TxnSales:
		// Cash/bank sales settle immediately; anything else accrues a receivable.
		switch mode {
		case domain.PaymentCash:
			return PostingRule{Debit: RoleCash, Credit: RoleSales}, nil
		case domain.PaymentBank:
			return PostingRule{Debit: RoleBank, Credit: RoleSales}, nil
		default:
			return PostingRule{Debit: RoleReceivable, Credit: RoleSales}, nil
		}
	case domain.TxnPurchase:
		switch mode {
		case domain.PaymentCash:
			return PostingRule{Debit: RolePurchase, Credit: RoleCash}, nil
		case domain.PaymentBank:
			return PostingRule{Debit: RolePurchase, Credit: RoleBank}, nil
		default:
			return PostingRule{Debit: RolePurchase, Credit: RolePayable}, nil
		}
	case domain.TxnSalesReturn:
		// Cash refunds pay out of the till; anything else reduces the receivable.
		if mode == domain.PaymentCash {
			return PostingRule{Debit: RoleSalesReturn, Credit: RoleCash}, nil
		}
		return PostingRule{Debit: RoleSalesReturn, Credit: RoleReceivable}, nil
	case domain.TxnPurchaseReturn:
		if mode == domain.PaymentCash {
			return PostingRule{Debit: RoleCash, Credit: RolePurchaseReturn}, nil
		}
		return PostingRule{Debit: RolePayable, Credit: RolePurchaseReturn}, nil
	case domain.TxnExpense:
		return PostingRule{Debit: RoleOfficeExpense, Credit: RoleCash}, nil
	case domain.TxnIncome:
		return PostingRule{Debit: RoleCash, Credit: RoleOtherIncome}, nil
	case domain.TxnBankDeposit:
		// Contra entry: moves cash into the bank, no P&L effect.
		return PostingRule{Debit: RoleBank, Credit: RoleCash}, nil
	case domain.TxnProfessionalFee:
		if mode == domain.PaymentDue {
			return PostingRule{Debit: RoleSurgeonFee, Credit: RolePayableSurgeon}, nil
		}
		if pctx.SettlesLiability {
			return PostingRule{Debit: RolePayableSurgeon, Credit: RoleCash}, nil
		}
		return PostingRule{Debit: RoleSurgeonFee, Credit: RoleCash}, nil
	case domain.TxnPaymentOut:
		if mode == domain.PaymentBank {
			return PostingRule{Debit: RolePayable, Credit: RoleBank}, nil
		}
		return PostingRule{Debit: RolePayable, Credit: RoleCash}, nil
	case domain.TxnPaymentIn:
		if mode == domain.PaymentBank {
			return PostingRule{Debit: RoleBank, Credit: RoleReceivable}, nil
		}
		return PostingRule{Debit: RoleCash, Credit: RoleReceivable}, nil
	default:
		return PostingRule{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedTransactionType, txnType)
	}
}
