package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/product-qa/internal/domain/product"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := a.parseLimit(r, a.limits.Products)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	maxPrice, err := parseMaxPrice(r)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	filter := domproduct.ListFilter{
		Search:   r.URL.Query().Get("search"),
		MaxPrice: maxPrice,
		Limit:    limit,
	}
	if c := strings.TrimSpace(r.URL.Query().Get("category")); c != "" {
		filter.Category = &c
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	a.respondJSON(w, r, http.StatusOK, map[string]any{
		"data":  productsOrEmpty(products),
		"count": len(products),
	})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.respondJSON(w, r, http.StatusOK, p)
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		respondError(w, http.StatusBadRequest, errors.New(`query parameter "query" is required`))
		return
	}
	limit, err := a.parseLimit(r, a.limits.Search)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	products, err := a.productSvc.Search(r.Context(), query, limit)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	a.respondJSON(w, r, http.StatusOK, map[string]any{
		"products": productsOrEmpty(products),
		"query":    query,
		"source":   "catalog",
	})
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.List(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	a.respondJSON(w, r, http.StatusOK, map[string]any{
		"categories": categories,
		"recognized": a.categorySvc.Recognized(),
	})
}
