package purchase

import "errors"

// ErrNotFound is returned when no purchase matches the requested id.
var ErrNotFound = errors.New("purchase not found")

// Purchase represents a single recorded spend.
type Purchase struct {
	ID                  int64
	Category            Category
	AccountID           string
	Value               int64 // Amount in minor currency units
	ValueInMainCurrency int64
	Note                string
	Date                int64 // Epoch milliseconds
	Tags                []Tag
}

// Category is embedded per purchase row, same as income categories, plus a
// spending limit. An absent limit is stored as 0, never skipped.
type Category struct {
	ID        string
	Title     string
	Emoji     string
	IsSystem  bool
	IsVisible bool
	Limit     int64
	Order     int
}

// Tag is a budget tag attached to a purchase. Zero or more per purchase,
// unique per purchase by tag id.
type Tag struct {
	ID    string
	Title string
}
