package store

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermolnik/kopilka/internal/purchase"
)

// fakeRow feeds prepared column values into a scan helper, standing in for
// *sql.Row in mapper round-trip tests.
type fakeRow struct {
	vals []any
}

func (r *fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.vals), len(dest))
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = r.vals[i].(int64)
		case *int:
			*v = r.vals[i].(int)
		case *string:
			*v = r.vals[i].(string)
		case *bool:
			*v = r.vals[i].(bool)
		case *sql.NullString:
			*v = sql.NullString{String: r.vals[i].(string), Valid: true}
		case *sql.NullInt64:
			*v = sql.NullInt64{Int64: r.vals[i].(int64), Valid: true}
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}

	return nil
}

func TestPurchaseMapperRoundTrip(t *testing.T) {
	p := &purchase.Purchase{
		Category: purchase.Category{
			ID:        "c2",
			Title:     "Groceries",
			Emoji:     "🛒",
			IsSystem:  false,
			IsVisible: true,
			Limit:     50000,
			Order:     1,
		},
		AccountID:           "a1",
		Value:               1500,
		ValueInMainCurrency: 1500,
		Note:                "market",
		Date:                1700000000000,
	}

	vals := append([]any{int64(9)}, flattenPurchase(p)...)

	got, err := scanPurchase(&fakeRow{vals: vals})
	require.NoError(t, err)

	p.ID = 9
	// tags live in their own table; the row mapper yields an empty list
	p.Tags = make([]purchase.Tag, 0)
	assert.Equal(t, p, got)
}

func TestPurchaseMapperLimitAlwaysWritten(t *testing.T) {
	// an absent limit was defaulted to 0 upstream; the column is written
	// with that zero rather than skipped
	p := &purchase.Purchase{
		Category: purchase.Category{ID: "c2", Title: "Groceries"},
	}

	flat := flattenPurchase(p)
	assert.Equal(t, int64(0), flat[5])

	vals := append([]any{int64(1)}, flat...)

	got, err := scanPurchase(&fakeRow{vals: vals})
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Category.Limit)
}
