package dto

import "github.com/clinicore/erp-ledger/internal/core/domain"

// AccountResponse is one chart-of-accounts entry.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	IsActive    bool   `json:"isActive"`
}

// SeedAccountsResponse reports the outcome of an idempotent seed run.
type SeedAccountsResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		Code:        account.Code,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		IsActive:    account.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
