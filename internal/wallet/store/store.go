package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ermolnik/kopilka/internal/wallet"
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

const selectWalletColumns = `
	id, relevance_time, date_created, currency_id, currency_title,
	currency_symbol, currency_char_code
`

// flattenWallet maps the wallet scalars and the embedded currency to their
// column positions. Accounts have no backing columns and are not written.
func flattenWallet(w *wallet.Wallet) []any {
	return []any{
		w.RelevanceTime,
		w.DateCreated,
		w.Currency.ID,
		w.Currency.Title,
		w.Currency.Symbol,
		w.Currency.CharCode,
	}
}

// scanWallet reads a wallet row and reconstructs the embedded currency.
// Accounts have no source column and default to an empty list.
// Expected column order matches selectWalletColumns.
func scanWallet(s scanner) (*wallet.Wallet, error) {
	var w wallet.Wallet

	if err := s.Scan(
		&w.ID, &w.RelevanceTime, &w.DateCreated,
		&w.Currency.ID, &w.Currency.Title, &w.Currency.Symbol, &w.Currency.CharCode,
	); err != nil {
		return nil, err
	}

	w.Accounts = make([]wallet.Account, 0)

	return &w, nil
}

func (s *Store) CreateWallet(ctx context.Context, w *wallet.Wallet) error {
	query := `
		INSERT INTO wallets (relevance_time, date_created, currency_id, currency_title,
			currency_symbol, currency_char_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, flattenWallet(w)...).Scan(&w.ID); err != nil {
		return fmt.Errorf("creating wallet: %w", err)
	}

	return nil
}

func (s *Store) GetWallet(ctx context.Context, id int64) (*wallet.Wallet, error) {
	query := `SELECT ` + selectWalletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, wallet.ErrNotFound
		}

		return nil, fmt.Errorf("getting wallet: %w", err)
	}

	return w, nil
}

func (s *Store) ListWallets(ctx context.Context) ([]*wallet.Wallet, error) {
	query := `SELECT ` + selectWalletColumns + ` FROM wallets ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing wallets: %w", err)
	}
	defer rows.Close()

	var ws []*wallet.Wallet

	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning wallet: %w", err)
		}

		ws = append(ws, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wallet rows: %w", err)
	}

	return ws, nil
}

func (s *Store) UpdateWallet(ctx context.Context, id int64, w *wallet.Wallet) (bool, error) {
	query := `
		UPDATE wallets
		SET relevance_time = $1, date_created = $2, currency_id = $3, currency_title = $4,
			currency_symbol = $5, currency_char_code = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query, append(flattenWallet(w), id)...)
	if err != nil {
		return false, fmt.Errorf("updating wallet: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating wallet: %w", err)
	}

	return affected > 0, nil
}

func (s *Store) DeleteWallet(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM wallets WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting wallet: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting wallet: %w", err)
	}

	return affected > 0, nil
}
