package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonathanI21/Courses-solidaires-2/api/responses"
	"github.com/JonathanI21/Courses-solidaires-2/api/validators"
	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/pagination"
)

// ListProducts serves the paginated catalog, optionally filtered by
// category and search text.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := catalog.ProductListQuery{
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
		}
		query.Pagination.Cursor = r.URL.Query().Get("cursor")
		limit, err := parseLimit(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query.Pagination.Limit = limit

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			query.Category = category.String()
		}

		page, err := svc.ListProducts(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// GetProduct serves one product with its per-store prices.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProductWithPrices(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// GetProductPrices serves the price rows of one product.
func GetProductPrices(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		prices, err := svc.GetPricesForProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prices)
	}
}

// GetProductByBarcode resolves a scanned barcode to a product.
func GetProductByBarcode(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProductByBarcode(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "produit non reconnu"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// GetProductAlternatives serves same-category substitutes for a product,
// the product itself excluded.
func GetProductAlternatives(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		candidates, err := svc.GetProductsByCategory(r.Context(), product.Category.String())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		alternatives := make([]catalog.Product, 0, len(candidates))
		for _, candidate := range candidates {
			if candidate.ID != id {
				alternatives = append(alternatives, candidate)
			}
		}
		responses.WriteSuccess(w, alternatives)
	}
}

// ListStores serves the store network.
func ListStores(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		stores, err := svc.GetStores(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stores)
	}
}

// GetStore serves one store.
func GetStore(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		store, err := svc.GetStore(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "store not found"))
			return
		}
		responses.WriteSuccess(w, store)
	}
}

func parseLimit(r *http.Request) (int, error) {
	return validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
}
