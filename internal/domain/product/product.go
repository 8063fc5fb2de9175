package product

import "strings"

type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityPreOrder   Availability = "pre_order"
)

// ParseAvailability maps a raw value onto a known availability, falling back
// to in_stock for empty or unknown values.
func ParseAvailability(s string) Availability {
	switch a := Availability(strings.ToLower(strings.TrimSpace(s))); a {
	case AvailabilityInStock, AvailabilityOutOfStock, AvailabilityPreOrder:
		return a
	default:
		return AvailabilityInStock
	}
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Price          float64           `json:"price"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
	Availability   Availability      `json:"availability"`
	StockCount     int64             `json:"stock_count"`
	Rating         float64           `json:"rating"`
	ReviewsCount   int64             `json:"reviews_count"`
}

type ListFilter struct {
	Category *string
	MaxPrice *float64
	Search   string
	// Limit caps the result size; zero or negative means no cap.
	Limit int
}
