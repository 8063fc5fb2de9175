package product

import (
	"context"

	dom "example.com/product-qa/internal/domain/product"
)

const MaxLimit = 100

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	if filter.Limit < 0 || filter.Limit > MaxLimit {
		return nil, dom.ErrInvalidLimit
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, dom.ErrInvalidMaxPrice
	}
	return s.repo.List(ctx, filter)
}

// Search matches the query against product names and descriptions.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*dom.Product, error) {
	return s.List(ctx, dom.ListFilter{Search: query, Limit: limit})
}
