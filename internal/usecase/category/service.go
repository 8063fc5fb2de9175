package category

import (
	"context"

	domcategory "example.com/product-qa/internal/domain/category"
	domproduct "example.com/product-qa/internal/domain/product"
)

type Service struct {
	repo  domproduct.Repository
	rules []domcategory.Rule
}

func NewService(repo domproduct.Repository, rules []domcategory.Rule) *Service {
	return &Service{repo: repo, rules: rules}
}

// List returns the categories present in the catalog.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Recognized returns the tags the question interpreter can extract, in match order.
func (s *Service) Recognized() []string {
	return domcategory.Tags(s.rules)
}
