package catalog

import domproduct "example.com/product-qa/internal/domain/product"

// Fallback is served whenever the configured catalog cannot be loaded.
func Fallback() []domproduct.Product {
	return []domproduct.Product{
		{
			ID:          "P001",
			Name:        "iPhone 15 Pro Max",
			Category:    "smartphone",
			Brand:       "Apple",
			Price:       21999000,
			Description: "Smartphone flagship Apple dengan chip A17 Pro dan bodi titanium.",
			Specifications: map[string]string{
				"layar":   "6.7 inci Super Retina XDR",
				"chip":    "A17 Pro",
				"storage": "256GB",
			},
			Availability: domproduct.AvailabilityInStock,
			StockCount:   15,
			Rating:       4.8,
			ReviewsCount: 1250,
		},
		{
			ID:          "P002",
			Name:        "Samsung Galaxy S24 Ultra",
			Category:    "smartphone",
			Brand:       "Samsung",
			Price:       19999000,
			Description: "Smartphone Android premium dengan S Pen dan kamera 200MP.",
			Specifications: map[string]string{
				"layar":   "6.8 inci Dynamic AMOLED 2X",
				"chip":    "Snapdragon 8 Gen 3",
				"storage": "256GB",
			},
			Availability: domproduct.AvailabilityInStock,
			StockCount:   20,
			Rating:       4.7,
			ReviewsCount: 980,
		},
		{
			ID:          "P003",
			Name:        "MacBook Air M3",
			Category:    "laptop",
			Brand:       "Apple",
			Price:       18999000,
			Description: "Laptop tipis dan ringan dengan chip Apple M3.",
			Specifications: map[string]string{
				"layar": "13.6 inci Liquid Retina",
				"chip":  "Apple M3",
				"ram":   "8GB",
			},
			Availability: domproduct.AvailabilityInStock,
			StockCount:   8,
			Rating:       4.9,
			ReviewsCount: 640,
		},
	}
}
