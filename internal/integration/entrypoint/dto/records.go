// Package dto defines request and response types for the loopback API.
package dto

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CreateAssetRequest is the body for POST /api/assets.
type CreateAssetRequest struct {
	Title  string `json:"title" binding:"required"`
	Value  string `json:"value" binding:"required"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// CreateLiabilityRequest is the body for POST /api/liabilities.
type CreateLiabilityRequest struct {
	Title    string `json:"title" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Type     string `json:"type"`
	Interest string `json:"interest"`
	Payment  string `json:"payment"`
	DueDate  string `json:"dueDate"`
	Status   string `json:"status"`
}

// CreateExpenseRequest is the body for POST /api/expenses. Percentage
// and status are always derived server-side.
type CreateExpenseRequest struct {
	Title    string `json:"title" binding:"required"`
	Budgeted string `json:"budgeted" binding:"required"`
	Spent    string `json:"spent"`
}

// CreateIncomeRequest is the body for POST /api/income.
type CreateIncomeRequest struct {
	Title       string `json:"title" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// CreateDailyExpenseRequest is the body for POST /api/dailyExpenses.
type CreateDailyExpenseRequest struct {
	Title    string `json:"title" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

// CreateTransactionRequest is the body for POST /api/transactions.
type CreateTransactionRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}
