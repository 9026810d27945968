package income

import "errors"

// ErrNotFound is returned when no income matches the requested id.
var ErrNotFound = errors.New("income not found")

// Income represents a single recorded income.
type Income struct {
	ID                  int64
	Category            Category
	AccountID           string
	Value               int64 // Amount in minor currency units
	ValueInMainCurrency int64
	Note                string
	Date                int64 // Epoch milliseconds
}

// Category is embedded in the income, not referenced; every income row
// carries its own copy.
type Category struct {
	ID        string
	Title     string
	Emoji     string
	IsSystem  bool
	IsVisible bool
	Order     int
}
