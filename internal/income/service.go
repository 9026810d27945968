package income

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	CreateIncome(ctx context.Context, inc *Income) error
	GetIncome(ctx context.Context, id int64) (*Income, error)
	ListIncomes(ctx context.Context) ([]*Income, error)
	UpdateIncome(ctx context.Context, id int64, inc *Income) (bool, error)
	DeleteIncome(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Category            Category
	AccountID           string
	Value               int64
	ValueInMainCurrency int64
	Note                string
	Date                int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Income, error) {
	inc := &Income{
		Category:            params.Category,
		AccountID:           params.AccountID,
		Value:               params.Value,
		ValueInMainCurrency: params.ValueInMainCurrency,
		Note:                params.Note,
		Date:                params.Date,
	}
	if err := s.repo.CreateIncome(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Income, error) {
	return s.repo.GetIncome(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Income, error) {
	return s.repo.ListIncomes(ctx)
}

// Update replaces every mapped column of the income; there are no partial
// update semantics. It reports false when the id does not exist.
func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (bool, error) {
	inc := &Income{
		ID:                  id,
		Category:            params.Category,
		AccountID:           params.AccountID,
		Value:               params.Value,
		ValueInMainCurrency: params.ValueInMainCurrency,
		Note:                params.Note,
		Date:                params.Date,
	}

	return s.repo.UpdateIncome(ctx, id, inc)
}

// Delete reports false for an absent id; that is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteIncome(ctx, id)
}
