package wallet

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=wallet
type Repository interface {
	CreateWallet(ctx context.Context, w *Wallet) error
	GetWallet(ctx context.Context, id int64) (*Wallet, error)
	ListWallets(ctx context.Context) ([]*Wallet, error)
	UpdateWallet(ctx context.Context, id int64, w *Wallet) (bool, error)
	DeleteWallet(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	RelevanceTime int64
	DateCreated   int64
	Currency      Currency
	Accounts      []Account
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Wallet, error) {
	w := &Wallet{
		RelevanceTime: params.RelevanceTime,
		DateCreated:   params.DateCreated,
		Currency:      params.Currency,
		Accounts:      params.Accounts,
	}
	if err := s.repo.CreateWallet(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Wallet, error) {
	return s.repo.GetWallet(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Wallet, error) {
	return s.repo.ListWallets(ctx)
}

// Update replaces the wallet scalars and embedded currency. Accounts are not
// persisted, so they do not participate. Reports false for an absent id.
func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (bool, error) {
	w := &Wallet{
		ID:            id,
		RelevanceTime: params.RelevanceTime,
		DateCreated:   params.DateCreated,
		Currency:      params.Currency,
		Accounts:      params.Accounts,
	}

	return s.repo.UpdateWallet(ctx, id, w)
}

// Delete reports false for an absent id; that is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteWallet(ctx, id)
}
