package mysql

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"example.com/product-qa/internal/infra/catalog"
)

func TestLoad_UnreachableServerFallsBack(t *testing.T) {
	src := NewProductSource("user:pass@tcp(127.0.0.1:1)/appdb?timeout=200ms", 2*time.Second, zerolog.Nop())

	require.Equal(t, catalog.Fallback(), src.Load())
}

func TestLoad_MalformedDSNFallsBack(t *testing.T) {
	src := NewProductSource("::not a dsn::", time.Second, zerolog.Nop())

	require.Equal(t, catalog.Fallback(), src.Load())
}
