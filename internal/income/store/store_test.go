package store

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermolnik/kopilka/internal/income"
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

func TestIncomeMapperRoundTrip(t *testing.T) {
	inc := &income.Income{
		Category: income.Category{
			ID:        "c1",
			Title:     "Salary",
			Emoji:     "💰",
			IsSystem:  false,
			IsVisible: true,
			Order:     2,
		},
		AccountID:           "a1",
		Value:               100000,
		ValueInMainCurrency: 100000,
		Note:                "october",
		Date:                1700000000000,
	}

	vals := append([]any{int64(7)}, flattenIncome(inc)...)

	got, err := scanIncome(&fakeRow{vals: vals})
	require.NoError(t, err)

	inc.ID = 7
	assert.Equal(t, inc, got)
}

func TestIncomeMapperDefaults(t *testing.T) {
	// optional strings flatten to "" and survive the round trip as ""
	inc := &income.Income{
		Category: income.Category{ID: "c1", Title: "Salary"},
		Date:     1700000000000,
	}

	vals := append([]any{int64(1)}, flattenIncome(inc)...)

	got, err := scanIncome(&fakeRow{vals: vals})
	require.NoError(t, err)
	assert.Equal(t, "", got.Note)
	assert.Equal(t, "", got.Category.Emoji)
}

func TestScanIncomeArityMismatch(t *testing.T) {
	_, err := scanIncome(&fakeRow{vals: []any{int64(1)}})
	assert.Error(t, err)
}
