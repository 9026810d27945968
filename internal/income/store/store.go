package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ermolnik/kopilka/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectIncomeColumns = `
	id, category_id, category_title, category_emoji, category_is_system,
	category_is_visible, category_order, account_id, value,
	value_in_main_currency, note, date
`

// flattenIncome maps every scalar leaf of the income, category included, to
// its column position. Optional strings are written as-is; they were already
// defaulted to "" at the boundary.
func flattenIncome(inc *income.Income) []any {
	return []any{
		inc.Category.ID,
		inc.Category.Title,
		inc.Category.Emoji,
		inc.Category.IsSystem,
		inc.Category.IsVisible,
		inc.Category.Order,
		inc.AccountID,
		inc.Value,
		inc.ValueInMainCurrency,
		inc.Note,
		inc.Date,
	}
}

// scanIncome reads an income row and reconstructs the nested category.
// Expected column order matches selectIncomeColumns.
func scanIncome(s scanner) (*income.Income, error) {
	var inc income.Income

	var emoji, note sql.NullString

	if err := s.Scan(
		&inc.ID, &inc.Category.ID, &inc.Category.Title, &emoji,
		&inc.Category.IsSystem, &inc.Category.IsVisible, &inc.Category.Order,
		&inc.AccountID, &inc.Value, &inc.ValueInMainCurrency, &note, &inc.Date,
	); err != nil {
		return nil, err
	}

	inc.Category.Emoji = emoji.String
	inc.Note = note.String

	return &inc, nil
}

func (s *Store) CreateIncome(ctx context.Context, inc *income.Income) error {
	query := `
		INSERT INTO incomes (category_id, category_title, category_emoji, category_is_system,
			category_is_visible, category_order, account_id, value,
			value_in_main_currency, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, flattenIncome(inc)...).Scan(&inc.ID); err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (s *Store) GetIncome(ctx context.Context, id int64) (*income.Income, error) {
	query := `SELECT ` + selectIncomeColumns + ` FROM incomes WHERE id = $1`

	inc, err := scanIncome(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return inc, nil
}

func (s *Store) ListIncomes(ctx context.Context) ([]*income.Income, error) {
	query := `SELECT ` + selectIncomeColumns + ` FROM incomes ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incs []*income.Income

	for rows.Next() {
		inc, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		incs = append(incs, inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income rows: %w", err)
	}

	return incs, nil
}

func (s *Store) UpdateIncome(ctx context.Context, id int64, inc *income.Income) (bool, error) {
	query := `
		UPDATE incomes
		SET category_id = $1, category_title = $2, category_emoji = $3, category_is_system = $4,
			category_is_visible = $5, category_order = $6, account_id = $7, value = $8,
			value_in_main_currency = $9, note = $10, date = $11
		WHERE id = $12
	`

	res, err := s.db.ExecContext(ctx, query, append(flattenIncome(inc), id)...)
	if err != nil {
		return false, fmt.Errorf("updating income: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating income: %w", err)
	}

	return affected > 0, nil
}

func (s *Store) DeleteIncome(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM incomes WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting income: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting income: %w", err)
	}

	return affected > 0, nil
}
