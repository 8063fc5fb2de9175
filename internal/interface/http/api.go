package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	domassistant "example.com/product-qa/internal/domain/assistant"
	domproduct "example.com/product-qa/internal/domain/product"
	askuc "example.com/product-qa/internal/usecase/ask"
	categoryuc "example.com/product-qa/internal/usecase/category"
	productuc "example.com/product-qa/internal/usecase/product"
)

var errInternal = errors.New("internal server error")

type API struct {
	productSvc  *productuc.Service
	categorySvc *categoryuc.Service
	askSvc      *askuc.Service
	validator   *validator.Validate
	limits      Limits
	log         zerolog.Logger
}

// Limits are the default result sizes per endpoint.
type Limits struct {
	Products int
	Search   int
}

type Dependencies struct {
	ProductService  *productuc.Service
	CategoryService *categoryuc.Service
	AskService      *askuc.Service
	Limits          Limits
	Logger          zerolog.Logger
}

func NewAPI(deps Dependencies) *API {
	limits := deps.Limits
	if limits.Products <= 0 {
		limits.Products = 20
	}
	if limits.Search <= 0 {
		limits.Search = 10
	}
	return &API{
		productSvc:  deps.ProductService,
		categorySvc: deps.CategoryService,
		askSvc:      deps.AskService,
		validator:   validator.New(),
		limits:      limits,
		log:         deps.Logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(a.recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		a.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ask", a.handleAsk)

		r.Route("/products", func(pr chi.Router) {
			pr.Get("/", a.handleListProducts)
			pr.Get("/categories", a.handleListCategories)
			pr.Get("/search", a.handleSearchProducts)
			pr.Get("/{id}", a.handleGetProduct)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

// writeJSON encodes before writing the header, so a payload that cannot be
// encoded becomes a generic 500 and the error is returned to the caller.
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(payload)
	if err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: errInternal.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return err
}

// respondJSON writes a success payload and logs an encoding failure.
func (a *API) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := writeJSON(w, status, payload); err != nil {
		a.log.Error().Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("cannot encode response")
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	_ = writeJSON(w, status, errorResponse{Error: err.Error()})
}

func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	_ = writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: details})
}

// parseLimit reads an optional limit query parameter in [1, productuc.MaxLimit].
func (a *API) parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter \"limit\" must be an integer", domproduct.ErrInvalidLimit)
	}
	if err := a.validator.Var(n, fmt.Sprintf("min=1,max=%d", productuc.MaxLimit)); err != nil {
		return 0, fmt.Errorf("%w: query parameter \"limit\" must be between 1 and %d", domproduct.ErrInvalidLimit, productuc.MaxLimit)
	}
	return n, nil
}

func parseMaxPrice(r *http.Request) (*float64, error) {
	raw := r.URL.Query().Get("max_price")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, fmt.Errorf("%w: query parameter \"max_price\" must be a finite non-negative number", domproduct.ErrInvalidMaxPrice)
	}
	return &v, nil
}

func productsOrEmpty(products []*domproduct.Product) []*domproduct.Product {
	if products == nil {
		return []*domproduct.Product{}
	}
	return products
}

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrInvalidLimit),
		errors.Is(err, domproduct.ErrInvalidMaxPrice),
		errors.Is(err, domassistant.ErrEmptyQuestion):
		respondError(w, http.StatusBadRequest, err)
	default:
		a.log.Error().Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		respondError(w, http.StatusInternalServerError, errInternal)
	}
}
