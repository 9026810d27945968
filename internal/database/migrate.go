package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is created at startup; there is no migration history beyond
// CREATE TABLE IF NOT EXISTS.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS incomes (
		id SERIAL PRIMARY KEY,
		category_id TEXT NOT NULL,
		category_title TEXT NOT NULL,
		category_emoji TEXT NOT NULL DEFAULT '',
		category_is_system BOOLEAN NOT NULL,
		category_is_visible BOOLEAN NOT NULL,
		category_order INT NOT NULL,
		account_id TEXT NOT NULL,
		value BIGINT NOT NULL,
		value_in_main_currency BIGINT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		date BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id SERIAL PRIMARY KEY,
		category_id TEXT NOT NULL,
		category_title TEXT NOT NULL,
		category_emoji TEXT NOT NULL DEFAULT '',
		category_is_system BOOLEAN NOT NULL,
		category_is_visible BOOLEAN NOT NULL,
		category_limit BIGINT NOT NULL DEFAULT 0,
		category_order INT NOT NULL,
		account_id TEXT NOT NULL,
		value BIGINT NOT NULL,
		value_in_main_currency BIGINT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		date BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_tags (
		id SERIAL PRIMARY KEY,
		purchase_id INT NOT NULL REFERENCES purchases(id) ON DELETE CASCADE,
		tag_id TEXT NOT NULL,
		title TEXT NOT NULL,
		UNIQUE (purchase_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS wallets (
		id SERIAL PRIMARY KEY,
		relevance_time BIGINT NOT NULL,
		date_created BIGINT NOT NULL,
		currency_id INT NOT NULL,
		currency_title TEXT NOT NULL,
		currency_symbol TEXT NOT NULL,
		currency_char_code TEXT NOT NULL
	)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return nil
}
