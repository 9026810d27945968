package purchase

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchase
type Repository interface {
	CreatePurchase(ctx context.Context, p *Purchase) error
	GetPurchase(ctx context.Context, id int64) (*Purchase, error)
	ListPurchases(ctx context.Context) ([]*Purchase, error)
	UpdatePurchase(ctx context.Context, id int64, p *Purchase) (bool, error)
	DeletePurchase(ctx context.Context, id int64) (bool, error)
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
	Tags                []Tag
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Purchase, error) {
	p := &Purchase{
		Category:            params.Category,
		AccountID:           params.AccountID,
		Value:               params.Value,
		ValueInMainCurrency: params.ValueInMainCurrency,
		Note:                params.Note,
		Date:                params.Date,
		Tags:                normalizeTags(params.Tags),
	}
	if err := s.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Purchase, error) {
	return s.repo.GetPurchase(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Purchase, error) {
	return s.repo.ListPurchases(ctx)
}

// Update replaces every mapped column and the whole tag list. It reports
// false when the id does not exist; no row is created in that case.
func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (bool, error) {
	p := &Purchase{
		ID:                  id,
		Category:            params.Category,
		AccountID:           params.AccountID,
		Value:               params.Value,
		ValueInMainCurrency: params.ValueInMainCurrency,
		Note:                params.Note,
		Date:                params.Date,
		Tags:                normalizeTags(params.Tags),
	}

	return s.repo.UpdatePurchase(ctx, id, p)
}

// Delete reports false for an absent id; that is a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeletePurchase(ctx, id)
}

// normalizeTags assigns identifiers to tags that arrived without one. The
// list is never nil so an empty association round-trips as an empty list.
func normalizeTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}

		out = append(out, t)
	}

	return out
}
