package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents one entry in the chart of accounts.
// The code is the stable identifier journal lines are resolved against;
// it is never changed once any journal line references the account.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	Code        string      `json:"code"`        // Unique short identifier (e.g. "AR")
	Name        string      `json:"name"`        // Display name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	IsActive    bool        `json:"isActive"`    // Deactivation flag; accounts are never deleted
	AuditFields
}
