package product

import "context"

// Repository is a read-only view over the loaded catalog.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	Categories(ctx context.Context) ([]string, error)
}
