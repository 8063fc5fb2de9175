// Package ask answers a customer question from the catalog and the
// generative model.
package ask

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	domassistant "example.com/product-qa/internal/domain/assistant"
	domproduct "example.com/product-qa/internal/domain/product"
	"example.com/product-qa/internal/infra/cache"
)

type Interpreter interface {
	Interpret(question string) domassistant.QueryFilter
}

type ProductLister interface {
	List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error)
}

type Config struct {
	ProductLimit int
	Timeout      time.Duration
	CacheTTL     time.Duration
}

type Service struct {
	interpreter Interpreter
	products    ProductLister
	generator   domassistant.Generator
	cache       cache.Cache
	cfg         Config
	log         zerolog.Logger
}

func NewService(in Interpreter, products ProductLister, gen domassistant.Generator, c cache.Cache, cfg Config, log zerolog.Logger) *Service {
	if cfg.ProductLimit <= 0 {
		cfg.ProductLimit = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if c == nil {
		c = cache.Nop{}
	}
	return &Service{
		interpreter: in,
		products:    products,
		generator:   gen,
		cache:       c,
		cfg:         cfg,
		log:         log.With().Str("component", "ask").Logger(),
	}
}

func (s *Service) Ask(ctx context.Context, question string) (domassistant.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domassistant.Answer{}, domassistant.ErrEmptyQuestion
	}

	filter := s.interpreter.Interpret(question)
	products, err := s.products.List(ctx, domproduct.ListFilter{
		Category: filter.Category,
		MaxPrice: filter.MaxPrice,
		Limit:    s.cfg.ProductLimit,
	})
	if err != nil {
		return domassistant.Answer{}, err
	}

	answer := s.narrate(ctx, question, filter, products)
	return Compose(answer, products, question, filter), nil
}

// narrate returns the model's answer, or FallbackAnswer when the model fails.
func (s *Service) narrate(ctx context.Context, question string, filter domassistant.QueryFilter, products []*domproduct.Product) string {
	key := cacheKey(question)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		return cached
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn().Err(err).Msg("answer cache read failed")
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	answer, err := s.generator.Generate(genCtx, BuildPrompt(question, filter, products))
	if err != nil {
		s.log.Error().Err(err).Str("question", question).Msg("answer generation failed")
		return FallbackAnswer
	}

	if err := s.cache.Set(ctx, key, answer, s.cfg.CacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("answer cache write failed")
	}
	return answer
}

func cacheKey(question string) string {
	return "answer:" + strings.Join(strings.Fields(strings.ToLower(question)), " ")
}
