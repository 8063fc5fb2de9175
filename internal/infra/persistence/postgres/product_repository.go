// Package postgres reads the catalog snapshot from PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	domproduct "example.com/product-qa/internal/domain/product"
	"example.com/product-qa/internal/infra/catalog"
)

type ProductSource struct {
	dsn     string
	timeout time.Duration
	log     zerolog.Logger
}

func NewProductSource(dsn string, timeout time.Duration, log zerolog.Logger) *ProductSource {
	return &ProductSource{
		dsn:     dsn,
		timeout: timeout,
		log:     log.With().Str("component", "catalog").Str("source", "postgres").Logger(),
	}
}

func (s *ProductSource) Load() []domproduct.Product {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raws, err := s.query(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("cannot load catalog from postgres, using fallback catalog")
		return catalog.Fallback()
	}

	products := catalog.Build(raws, s.log)
	if len(products) == 0 {
		s.log.Error().Msg("postgres products table is empty, using fallback catalog")
		return catalog.Fallback()
	}
	s.log.Info().Int("count", len(products)).Msg("catalog loaded")
	return products
}

func (s *ProductSource) query(ctx context.Context) ([]map[string]any, error) {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, `SELECT `+catalog.SelectColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var raws []map[string]any
	for rows.Next() {
		var row catalog.Row
		if err := rows.Scan(row.Dest()...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		raws = append(raws, row.Raw())
	}
	return raws, rows.Err()
}
