package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidLimit    = errors.New("invalid limit")
	ErrInvalidMaxPrice = errors.New("invalid max_price")
)
