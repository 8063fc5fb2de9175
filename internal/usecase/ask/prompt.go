package ask

import (
	"fmt"
	"strconv"
	"strings"

	domassistant "example.com/product-qa/internal/domain/assistant"
	domproduct "example.com/product-qa/internal/domain/product"
)

// BuildPrompt describes the extracted filters and matching products so the
// model answers from the catalog rather than from memory.
func BuildPrompt(question string, filter domassistant.QueryFilter, products []*domproduct.Product) string {
	var b strings.Builder
	b.WriteString("Anda adalah asisten toko elektronik. Jawab dalam Bahasa Indonesia dengan ramah dan ringkas.\n")
	b.WriteString("Gunakan hanya data produk di bawah ini. Jika tidak ada produk yang cocok, katakan dengan jujur.\n\n")

	if filter.Category != nil {
		fmt.Fprintf(&b, "Kategori: %s\n", *filter.Category)
	}
	if filter.MaxPrice != nil {
		fmt.Fprintf(&b, "Harga maksimal: Rp %s\n", FormatRupiah(*filter.MaxPrice))
	}

	if len(products) == 0 {
		b.WriteString("Produk yang cocok: tidak ada\n")
	} else {
		b.WriteString("Produk yang cocok:\n")
		for _, p := range products {
			fmt.Fprintf(&b, "- [%s] %s (%s) Rp %s, rating %.1f, %s\n",
				p.ID, p.Name, p.Brand, FormatRupiah(p.Price), p.Rating, p.Availability)
		}
	}

	fmt.Fprintf(&b, "\nPertanyaan: %s\n", question)
	return b.String()
}

// FormatRupiah renders whole rupiah with dot thousands separators.
func FormatRupiah(v float64) string {
	digits := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
