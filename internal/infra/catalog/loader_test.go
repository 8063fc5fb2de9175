package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	domproduct "example.com/product-qa/internal/domain/product"
)

const sampleCatalog = `{
  "products": [
    {"id": "P001", "name": "iPhone 15 Pro Max", "category": "Smartphone", "brand": "Apple",
     "price": 21999000, "description": "Flagship", "specifications": {"storage": "256GB", "ram": 8},
     "availability": "in_stock", "stock_count": 15, "rating": 4.8, "reviews_count": 1250},
    {"id": "P002", "name": "Galaxy S24 Ultra", "category": "smartphone", "price": "19999000",
     "availability": "pre_order"}
  ]
}`

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newTestLoader(path string) (*FileLoader, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewFileLoader(path, zerolog.New(&buf)), &buf
}

func TestLoad_UTF8(t *testing.T) {
	loader, logs := newTestLoader(writeFile(t, []byte(sampleCatalog)))

	products := loader.Load()

	require.Len(t, products, 2)
	require.Equal(t, "P001", products[0].ID)
	require.Equal(t, "smartphone", products[0].Category)
	require.Equal(t, 21999000.0, products[0].Price)
	require.Equal(t, "8", products[0].Specifications["ram"])
	require.Equal(t, int64(1250), products[0].ReviewsCount)

	require.Equal(t, "P002", products[1].ID)
	require.Equal(t, 19999000.0, products[1].Price)
	require.Equal(t, domproduct.AvailabilityPreOrder, products[1].Availability)
	require.Empty(t, products[1].Brand)
	require.NotNil(t, products[1].Specifications)

	require.Contains(t, logs.String(), `"encoding":"utf-8"`)
	require.Contains(t, logs.String(), `"count":2`)
}

func TestLoad_IsDeterministic(t *testing.T) {
	path := writeFile(t, []byte(sampleCatalog))
	first, _ := newTestLoader(path)
	second, _ := newTestLoader(path)

	require.Equal(t, first.Load(), second.Load())
}

func TestLoad_Encodings(t *testing.T) {
	withLatin := `{"products":[{"id":"C1","name":"Café Espresso","category":"kitchen","price":1500000}]}`

	encode := func(t *testing.T, enc interface{ String(string) (string, error) }) []byte {
		t.Helper()
		s, err := enc.String(withLatin)
		require.NoError(t, err)
		return []byte(s)
	}

	tests := []struct {
		name         string
		data         func(t *testing.T) []byte
		wantEncoding string
	}{
		{
			name:         "utf-16 little endian with BOM",
			data:         func(t *testing.T) []byte { return encode(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()) },
			wantEncoding: "utf-16-le",
		},
		{
			name:         "utf-16 little endian without BOM",
			data:         func(t *testing.T) []byte { return encode(t, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()) },
			wantEncoding: "utf-16-le",
		},
		{
			name:         "utf-16 big endian with BOM",
			data:         func(t *testing.T) []byte { return encode(t, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()) },
			wantEncoding: "utf-16",
		},
		{
			name:         "utf-8 with BOM",
			data:         func(t *testing.T) []byte { return append([]byte("\xEF\xBB\xBF"), withLatin...) },
			wantEncoding: "utf-8",
		},
		{
			name:         "latin-1",
			data:         func(t *testing.T) []byte { return encode(t, charmap.ISO8859_1.NewEncoder()) },
			wantEncoding: "latin-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, logs := newTestLoader(writeFile(t, tt.data(t)))

			products := loader.Load()

			require.Len(t, products, 1)
			require.Equal(t, "C1", products[0].ID)
			require.Equal(t, "Café Espresso", products[0].Name)
			require.Equal(t, 1500000.0, products[0].Price)
			require.Contains(t, logs.String(), `"encoding":"`+tt.wantEncoding+`"`)
		})
	}
}

func TestLoad_FallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantLog string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantLog: "catalog file not found",
		},
		{
			name:    "truncated json",
			path:    func(t *testing.T) string { return writeFile(t, []byte(`{"products": [{"id": "P1"`)) },
			wantLog: "not valid JSON",
		},
		{
			name:    "trailing garbage",
			path:    func(t *testing.T) string { return writeFile(t, []byte(`{"products": [{"id": "P1"}]} extra`)) },
			wantLog: "not valid JSON",
		},
		{
			name:    "products is not a list",
			path:    func(t *testing.T) string { return writeFile(t, []byte(`{"products": "none"}`)) },
			wantLog: "not valid JSON",
		},
		{
			name:    "no products key",
			path:    func(t *testing.T) string { return writeFile(t, []byte(`{"items": []}`)) },
			wantLog: "has no products",
		},
		{
			name: "utf-32 document",
			path: func(t *testing.T) string {
				data, err := utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder().Bytes([]byte(sampleCatalog))
				require.NoError(t, err)
				return writeFile(t, data)
			},
			wantLog: "not valid JSON",
		},
		{
			name:    "binary with zero bytes",
			path:    func(t *testing.T) string { return writeFile(t, []byte{0x00, 0xFF, 0xFE, 0x00, 0x81, 0x9D, 0x00}) },
			wantLog: "not valid JSON",
		},
		{
			name:    "directory instead of file",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantLog: "cannot read catalog file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, logs := newTestLoader(tt.path(t))

			var products []domproduct.Product
			require.NotPanics(t, func() { products = loader.Load() })

			require.Equal(t, Fallback(), products)
			require.GreaterOrEqual(t, len(products), 2)
			require.Contains(t, logs.String(), tt.wantLog)
		})
	}
}

func TestLoad_SkipsDuplicateIDs(t *testing.T) {
	data := `{"products":[{"id":"A","name":"first"},{"id":"A","name":"second"},{"name":"no id"}]}`
	loader, logs := newTestLoader(writeFile(t, []byte(data)))

	products := loader.Load()

	require.Len(t, products, 2)
	require.Equal(t, "first", products[0].Name)
	require.Equal(t, "P003", products[1].ID)
	require.Contains(t, logs.String(), "duplicate product id skipped")
}

func TestFallback_IDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Fallback() {
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		require.GreaterOrEqual(t, p.Price, 0.0)
	}
	require.GreaterOrEqual(t, len(seen), 2)
}

func TestEncodings_UTF8IsNotTakenForUTF16(t *testing.T) {
	// Even-length ASCII text must not be accepted by the 16-bit decoders.
	data := []byte(`{"products":[]}x`)
	require.Zero(t, len(data)%2)

	_, err := encodings[0].decode(data)
	require.ErrorIs(t, err, errNoZeroBytes)

	_, err = encodings[0].decode([]byte{'{', 0, '}'})
	require.ErrorIs(t, err, errOddLength)
}

func TestLoad_UndecodableBytesTryEveryEncodingThenFallBack(t *testing.T) {
	// odd length rules out UTF-16; 0xFF is never valid UTF-8
	loader, logs := newTestLoader(writeFile(t, []byte{0x00, 0xFF, 0xFE, 0x00, 0x81, 0x9D, 0x00}))

	products := loader.Load()

	require.Equal(t, Fallback(), products)
	for _, name := range []string{"utf-16-le", "utf-16", "utf-8", "utf-8-sig"} {
		require.Contains(t, logs.String(), `"encoding":"`+name+`","message":"catalog file does not decode`)
	}
	require.Contains(t, logs.String(), `"encoding":"latin-1","message":"catalog file is not valid JSON`)
}
