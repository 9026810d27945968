package wallet

import "errors"

// ErrNotFound is returned when no wallet matches the requested id.
var ErrNotFound = errors.New("wallet not found")

// AccountType distinguishes budget accounts from savings accounts.
type AccountType string

const (
	AccountTypeBudget  AccountType = "BUDGET"
	AccountTypeSavings AccountType = "SAVINGS"
)

// Wallet groups the user's accounts under a single main currency.
type Wallet struct {
	ID            int64
	RelevanceTime int64 // Epoch milliseconds of the last balance computation
	DateCreated   int64
	Currency      Currency
	// Accounts exist in the wire model only; the wallet row stores its own
	// scalars and the embedded currency, nothing else. Hydration always
	// yields an empty list.
	Accounts []Account
}

// Currency is embedded in the wallet row.
type Currency struct {
	ID       int
	Title    string
	Symbol   string
	CharCode string
}

// Account is a budget or savings account scoped to category sets.
type Account struct {
	ID                string
	Title             string
	Type              AccountType
	Limit             int64
	Currency          Currency
	IncomeCategoryIDs []string
	SpentCategoryIDs  []string
	Order             int
	RelevanceTime     int64
	DateCreated       int64
}
