// Package catalog loads the product catalog snapshot served by the API.
//
// Loading never fails: a missing, unreadable or malformed source is logged and
// replaced by the built-in fallback catalog, so callers always receive a
// non-empty list.
package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	domproduct "example.com/product-qa/internal/domain/product"
)

// Source yields the catalog snapshot once at startup.
type Source interface {
	Load() []domproduct.Product
}

type document struct {
	Products []map[string]any `json:"products"`
}

type FileLoader struct {
	path string
	log  zerolog.Logger
}

func NewFileLoader(path string, log zerolog.Logger) *FileLoader {
	return &FileLoader{
		path: path,
		log:  log.With().Str("component", "catalog").Str("path", path).Logger(),
	}
}

func (l *FileLoader) Load() []domproduct.Product {
	if _, err := os.Stat(l.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Warn().Msg("catalog file not found, using fallback catalog")
		} else {
			l.log.Error().Err(err).Msg("cannot stat catalog file, using fallback catalog")
		}
		return Fallback()
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		l.log.Error().Err(err).Msg("cannot read catalog file, using fallback catalog")
		return Fallback()
	}

	for _, enc := range encodings {
		text, err := enc.decode(data)
		if err != nil {
			l.log.Warn().Err(err).Str("encoding", enc.name).Msg("catalog file does not decode, trying next encoding")
			continue
		}
		text = strings.TrimPrefix(text, bom)

		var doc document
		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()
		err = dec.Decode(&doc)
		if err == nil {
			err = expectEOF(dec)
		}
		if err != nil {
			l.log.Error().Err(err).Str("encoding", enc.name).Msg("catalog file is not valid JSON, using fallback catalog")
			return Fallback()
		}

		products := Build(doc.Products, l.log)
		if len(products) == 0 {
			l.log.Error().Str("encoding", enc.name).Msg("catalog file has no products, using fallback catalog")
			return Fallback()
		}
		l.log.Info().Str("encoding", enc.name).Int("count", len(products)).Msg("catalog loaded")
		return products
	}

	l.log.Error().Msg("catalog file matches no supported encoding, using fallback catalog")
	return Fallback()
}

// Build converts raw records into products in source order. Records whose id
// was already seen are dropped.
func Build(raws []map[string]any, log zerolog.Logger) []domproduct.Product {
	products := make([]domproduct.Product, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for i, raw := range raws {
		p := domproduct.FromRaw(raw, i+1)
		if _, dup := seen[p.ID]; dup {
			log.Warn().Str("id", p.ID).Int("position", i+1).Msg("duplicate product id skipped")
			continue
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}
	return products
}

var errTrailingData = errors.New("unexpected data after catalog document")

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
