package assistant

import (
	"context"

	domproduct "example.com/product-qa/internal/domain/product"
)

// QueryFilter is what a question asks for, as far as keyword and price
// matching can tell.
type QueryFilter struct {
	Category *string
	MaxPrice *float64
	FreeText string
}

// Answer is the response returned for a question.
type Answer struct {
	Answer   string                `json:"answer"`
	Products []*domproduct.Product `json:"products"`
	Question string                `json:"question"`
	Note     string                `json:"note"`
	Filters  AppliedFilters        `json:"filters"`
}

type AppliedFilters struct {
	Category *string  `json:"category"`
	MaxPrice *float64 `json:"max_price"`
}

// Generator produces a narrative answer for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
