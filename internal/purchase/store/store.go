package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ermolnik/kopilka/internal/purchase"
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

const selectPurchaseColumns = `
	id, category_id, category_title, category_emoji, category_is_system,
	category_is_visible, category_limit, category_order, account_id, value,
	value_in_main_currency, note, date
`

// flattenPurchase maps every scalar leaf of the purchase to its column
// position. The category limit is always written, zero included; skipping
// the column on updates would leave stale values behind.
func flattenPurchase(p *purchase.Purchase) []any {
	return []any{
		p.Category.ID,
		p.Category.Title,
		p.Category.Emoji,
		p.Category.IsSystem,
		p.Category.IsVisible,
		p.Category.Limit,
		p.Category.Order,
		p.AccountID,
		p.Value,
		p.ValueInMainCurrency,
		p.Note,
		p.Date,
	}
}

// scanPurchase reads a purchase row and reconstructs the nested category.
// Tags live in their own table and are hydrated separately.
// Expected column order matches selectPurchaseColumns.
func scanPurchase(s scanner) (*purchase.Purchase, error) {
	var p purchase.Purchase

	var emoji, note sql.NullString

	var limit sql.NullInt64

	if err := s.Scan(
		&p.ID, &p.Category.ID, &p.Category.Title, &emoji,
		&p.Category.IsSystem, &p.Category.IsVisible, &limit, &p.Category.Order,
		&p.AccountID, &p.Value, &p.ValueInMainCurrency, &note, &p.Date,
	); err != nil {
		return nil, err
	}

	p.Category.Emoji = emoji.String
	p.Category.Limit = limit.Int64
	p.Note = note.String
	p.Tags = make([]purchase.Tag, 0)

	return &p, nil
}

func (s *Store) CreatePurchase(ctx context.Context, p *purchase.Purchase) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO purchases (category_id, category_title, category_emoji, category_is_system,
			category_is_visible, category_limit, category_order, account_id, value,
			value_in_main_currency, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	if err := dbTx.QueryRowContext(ctx, query, flattenPurchase(p)...).Scan(&p.ID); err != nil {
		return fmt.Errorf("creating purchase: %w", err)
	}

	if err := insertTags(ctx, dbTx, p.ID, p.Tags); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing purchase: %w", err)
	}

	return nil
}

func (s *Store) GetPurchase(ctx context.Context, id int64) (*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + ` FROM purchases WHERE id = $1`

	p, err := scanPurchase(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, purchase.ErrNotFound
		}

		return nil, fmt.Errorf("getting purchase: %w", err)
	}

	tags, err := s.loadTags(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	p.Tags = tags

	return p, nil
}

func (s *Store) ListPurchases(ctx context.Context) ([]*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + ` FROM purchases ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var ps []*purchase.Purchase

	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		ps = append(ps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase rows: %w", err)
	}

	for _, p := range ps {
		tags, err := s.loadTags(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		p.Tags = tags
	}

	return ps, nil
}

// UpdatePurchase replaces the row and its whole tag list in one database
// transaction. An absent id rolls back and reports false without touching
// the tag table.
func (s *Store) UpdatePurchase(ctx context.Context, id int64, p *purchase.Purchase) (bool, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE purchases
		SET category_id = $1, category_title = $2, category_emoji = $3, category_is_system = $4,
			category_is_visible = $5, category_limit = $6, category_order = $7, account_id = $8,
			value = $9, value_in_main_currency = $10, note = $11, date = $12
		WHERE id = $13
	`

	res, err := dbTx.ExecContext(ctx, query, append(flattenPurchase(p), id)...)
	if err != nil {
		return false, fmt.Errorf("updating purchase: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating purchase: %w", err)
	}

	if affected == 0 {
		return false, nil
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM purchase_tags WHERE purchase_id = $1`, id); err != nil {
		return false, fmt.Errorf("clearing purchase tags: %w", err)
	}

	if err := insertTags(ctx, dbTx, id, p.Tags); err != nil {
		return false, err
	}

	if err := dbTx.Commit(); err != nil {
		return false, fmt.Errorf("committing purchase: %w", err)
	}

	return true, nil
}

// DeletePurchase removes the row; the tag table is covered by ON DELETE
// CASCADE.
func (s *Store) DeletePurchase(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM purchases WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting purchase: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting purchase: %w", err)
	}

	return affected > 0, nil
}

func (s *Store) loadTags(ctx context.Context, purchaseID int64) ([]purchase.Tag, error) {
	query := `SELECT tag_id, title FROM purchase_tags WHERE purchase_id = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("loading purchase tags: %w", err)
	}
	defer rows.Close()

	tags := make([]purchase.Tag, 0)

	for rows.Next() {
		var t purchase.Tag
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scanning purchase tag: %w", err)
		}

		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase tag rows: %w", err)
	}

	return tags, nil
}

func insertTags(ctx context.Context, dbTx *sql.Tx, purchaseID int64, tags []purchase.Tag) error {
	query := `
		INSERT INTO purchase_tags (purchase_id, tag_id, title)
		VALUES ($1, $2, $3)
		ON CONFLICT (purchase_id, tag_id) DO NOTHING
	`

	for _, t := range tags {
		if _, err := dbTx.ExecContext(ctx, query, purchaseID, t.ID, t.Title); err != nil {
			return fmt.Errorf("inserting purchase tag: %w", err)
		}
	}

	return nil
}
