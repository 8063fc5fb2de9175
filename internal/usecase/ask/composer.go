package ask

import (
	domassistant "example.com/product-qa/internal/domain/assistant"
	domproduct "example.com/product-qa/internal/domain/product"
)

const (
	NoteNoMatches   = "Maaf, tidak ada produk yang sesuai dengan kriteria Anda."
	NoteWithMatches = "Berikut produk yang sesuai dengan pertanyaan Anda."

	FallbackAnswer = "Maaf, terjadi kesalahan saat memproses pertanyaan Anda. Silakan coba lagi nanti."
)

// Compose assembles the response for a question. It performs no I/O.
func Compose(answer string, products []*domproduct.Product, question string, filter domassistant.QueryFilter) domassistant.Answer {
	if products == nil {
		products = []*domproduct.Product{}
	}
	note := NoteWithMatches
	if len(products) == 0 {
		note = NoteNoMatches
	}
	return domassistant.Answer{
		Answer:   answer,
		Products: products,
		Question: question,
		Note:     note,
		Filters: domassistant.AppliedFilters{
			Category: filter.Category,
			MaxPrice: filter.MaxPrice,
		},
	}
}
