package entity

import "github.com/shopspring/decimal"

// FinancialSummary is a pure derived computation over the current cache.
// All values are decimal so callers can format them for any locale.
type FinancialSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	CashFlow         decimal.Decimal `json:"cashFlow"`
}
