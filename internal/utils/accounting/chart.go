package accounting

import "github.com/clinicore/erp-ledger/internal/core/domain"

// AccountDefinition describes one seeded chart-of-accounts entry.
type AccountDefinition struct {
	Role AccountRole
	Name string
	Type domain.AccountType
}

// ChartOfAccounts is the fixed catalogue the posting rules resolve against.
// Seeding is keyed by code and idempotent; the order here is the display
// order of the chart.
func ChartOfAccounts() []AccountDefinition {
	return []AccountDefinition{
		{Role: RoleCash, Name: "Cash in Hand", Type: domain.Asset},
		{Role: RoleBank, Name: "Bank", Type: domain.Asset},
		{Role: RoleReceivable, Name: "Accounts Receivable", Type: domain.Asset},
		{Role: RolePayable, Name: "Accounts Payable", Type: domain.Liability},
		{Role: RoleCapital, Name: "Owner's Capital", Type: domain.Equity},
		{Role: RoleSales, Name: "Sales", Type: domain.Income},
		{Role: RoleOtherIncome, Name: "Other Income", Type: domain.Income},
		{Role: RoleSalesReturn, Name: "Sales Returns", Type: domain.Income},
		{Role: RolePurchase, Name: "Purchases", Type: domain.Expense},
		{Role: RolePurchaseReturn, Name: "Purchase Returns", Type: domain.Expense},
		{Role: RoleOfficeExpense, Name: "Office Expense", Type: domain.Expense},
		{Role: RoleSurgeonFee, Name: "Surgeon Fees", Type: domain.Expense},
		{Role: RolePayableSurgeon, Name: "Surgeon Fees Payable", Type: domain.Liability},
	}
}
