// Package memory serves catalog queries from an immutable in-memory snapshot.
package memory

import (
	"context"
	"strings"

	domproduct "example.com/product-qa/internal/domain/product"
)

// ProductRepository is safe for concurrent use: the snapshot is copied on
// construction and never written afterwards.
type ProductRepository struct {
	products   []domproduct.Product
	categories []string
}

func NewProductRepository(products []domproduct.Product) *ProductRepository {
	snapshot := make([]domproduct.Product, len(products))
	copy(snapshot, products)

	var categories []string
	seen := make(map[string]struct{})
	for _, p := range snapshot {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return &ProductRepository{products: snapshot, categories: categories}
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return clone(&r.products[i]), nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	var category string
	if filter.Category != nil {
		category = strings.ToLower(strings.TrimSpace(*filter.Category))
	}
	search := strings.ToLower(filter.Search)

	result := make([]*domproduct.Product, 0)
	for i := range r.products {
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
		p := &r.products[i]
		if filter.Category != nil && strings.ToLower(p.Category) != category {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		result = append(result, clone(p))
	}
	return result, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func clone(p *domproduct.Product) *domproduct.Product {
	c := *p
	c.Specifications = make(map[string]string, len(p.Specifications))
	for k, v := range p.Specifications {
		c.Specifications[k] = v
	}
	return &c
}
