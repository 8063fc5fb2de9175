package product

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromRaw builds a Product from a loosely typed record. Missing or malformed
// fields take their zero defaults; position is the 1-based index of the record
// in its source and is used to derive an id when none is given.
func FromRaw(raw map[string]any, position int) Product {
	p := Product{
		ID:             asString(raw["id"]),
		Name:           asString(raw["name"]),
		Category:       strings.ToLower(strings.TrimSpace(asString(raw["category"]))),
		Brand:          asString(raw["brand"]),
		Price:          math.Max(0, asFloat(raw["price"])),
		Description:    asString(raw["description"]),
		Specifications: asStringMap(raw["specifications"]),
		Availability:   ParseAvailability(asString(raw["availability"])),
		StockCount:     max(0, asInt(raw["stock_count"])),
		Rating:         math.Min(5, math.Max(0, asFloat(raw["rating"]))),
		ReviewsCount:   max(0, asInt(raw["reviews_count"])),
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = fmt.Sprintf("P%03d", position)
	}
	return p
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func asFloat(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		f, _ = t.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(t), 64)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func asInt(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int64:
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n
		}
	}
	return int64(asFloat(v))
}

func asStringMap(v any) map[string]string {
	out := map[string]string{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, val := range m {
		switch t := val.(type) {
		case nil:
			out[k] = ""
		case map[string]any, []any:
			b, _ := json.Marshal(t)
			out[k] = string(b)
		default:
			out[k] = asString(t)
		}
	}
	return out
}
