package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"example.com/product-qa/internal/config"
	"example.com/product-qa/internal/infra/genai"
	"example.com/product-qa/internal/infra/persistence/memory"
	httpapi "example.com/product-qa/internal/interface/http"
	"example.com/product-qa/internal/logging"
	askuc "example.com/product-qa/internal/usecase/ask"
	categoryuc "example.com/product-qa/internal/usecase/category"
	"example.com/product-qa/internal/usecase/interpreter"
	productuc "example.com/product-qa/internal/usecase/product"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	products := newCatalogSource(cfg.Catalog, log).Load()
	repo := memory.NewProductRepository(products)

	in, err := interpreter.New(cfg.Interpreter.Categories, cfg.Interpreter.PriceMarkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid interpreter tables")
	}

	gen := genai.New(genai.Config{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	})
	if _, disabled := gen.(genai.Disabled); disabled {
		log.Warn().Msg("no AI API key configured, answers will use the fallback text")
	}

	answers := newAnswerCache(ctx, cfg.Cache, log)
	defer answers.Close()

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService:  productuc.NewService(repo),
		CategoryService: categoryuc.NewService(repo, cfg.Interpreter.Categories),
		AskService: askuc.NewService(in, repo, gen, answers, askuc.Config{
			ProductLimit: cfg.Limits.Ask,
			Timeout:      cfg.AI.Timeout,
			CacheTTL:     cfg.Cache.TTL,
		}, log),
		Limits: httpapi.Limits{Products: cfg.Limits.Products, Search: cfg.Limits.Search},
		Logger: log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Int("products", len(products)).
			Str("catalog_source", cfg.Catalog.Source).
			Str("cache", cfg.Cache.Driver).
			Msg("listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}
	log.Info().Msg("server stopped")
}
