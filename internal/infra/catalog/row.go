package catalog

import (
	"database/sql"
	"encoding/json"
)

// Row is one products table row as scanned by the SQL sources.
type Row struct {
	ID             sql.NullString
	Name           sql.NullString
	Category       sql.NullString
	Brand          sql.NullString
	Price          sql.NullFloat64
	Description    sql.NullString
	Specifications sql.NullString // JSON object text
	Availability   sql.NullString
	StockCount     sql.NullInt64
	Rating         sql.NullFloat64
	ReviewsCount   sql.NullInt64
}

// Dest returns scan destinations in SelectColumns order.
func (r *Row) Dest() []any {
	return []any{
		&r.ID, &r.Name, &r.Category, &r.Brand, &r.Price, &r.Description,
		&r.Specifications, &r.Availability, &r.StockCount, &r.Rating, &r.ReviewsCount,
	}
}

const SelectColumns = `id, name, category, brand, price, description, specifications, availability, stock_count, rating, reviews_count`

// Raw converts the row into the loosely typed form accepted by Build. NULL
// columns are left out so they take their defaults.
func (r *Row) Raw() map[string]any {
	raw := map[string]any{}
	putString := func(key string, v sql.NullString) {
		if v.Valid {
			raw[key] = v.String
		}
	}
	putString("id", r.ID)
	putString("name", r.Name)
	putString("category", r.Category)
	putString("brand", r.Brand)
	putString("description", r.Description)
	putString("availability", r.Availability)
	if r.Price.Valid {
		raw["price"] = r.Price.Float64
	}
	if r.Rating.Valid {
		raw["rating"] = r.Rating.Float64
	}
	if r.StockCount.Valid {
		raw["stock_count"] = r.StockCount.Int64
	}
	if r.ReviewsCount.Valid {
		raw["reviews_count"] = r.ReviewsCount.Int64
	}
	if r.Specifications.Valid && r.Specifications.String != "" {
		var specs map[string]any
		if err := json.Unmarshal([]byte(r.Specifications.String), &specs); err == nil {
			raw["specifications"] = specs
		}
	}
	return raw
}
