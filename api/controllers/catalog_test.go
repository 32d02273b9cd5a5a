package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/types"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return envelope.Error
}

func TestGetProductSuccess(t *testing.T) {
	svc := &stubCatalogService{
		withP: &catalog.ProductWithPrices{
			Product: catalog.Product{
				ID:       "prod_001",
				Name:     "Pommes Golden",
				Category: enums.CategoryFruitsLegumes,
			},
			Prices: []catalog.StorePrice{{ProductID: "prod_001", StoreID: "store_001"}},
		},
	}
	handler := GetProduct(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/prod_001", nil)
	req = withURLParam(req, "id", "prod_001")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data catalog.ProductWithPrices `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != "prod_001" {
		t.Fatalf("expected prod_001 got %s", envelope.Data.ID)
	}
	if len(envelope.Data.Prices) != 1 {
		t.Fatalf("expected 1 price row got %d", len(envelope.Data.Prices))
	}
}

func TestGetProductNotFound(t *testing.T) {
	handler := GetProduct(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/prod_999", nil)
	req = withURLParam(req, "id", "prod_999")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message != "product not found" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestListProductsPassesFilters(t *testing.T) {
	svc := &stubCatalogService{page: &catalog.ProductListResult{Products: []catalog.Product{}}}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?search=pomme&category=fruits-legumes&limit=5&cursor=prod_004", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastPage.Search != "pomme" {
		t.Fatalf("expected search pomme got %q", svc.lastPage.Search)
	}
	if svc.lastPage.Category != "fruits-legumes" {
		t.Fatalf("expected category fruits-legumes got %q", svc.lastPage.Category)
	}
	if svc.lastPage.Pagination.Limit != 5 {
		t.Fatalf("expected limit 5 got %d", svc.lastPage.Pagination.Limit)
	}
	if svc.lastPage.Pagination.Cursor != "prod_004" {
		t.Fatalf("expected cursor prod_004 got %q", svc.lastPage.Pagination.Cursor)
	}
}

func TestListProductsRejectsUnknownCategory(t *testing.T) {
	handler := ListProducts(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?category=surgeles", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGetProductByBarcodeUnknown(t *testing.T) {
	handler := GetProductByBarcode(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/barcode/0000000000000", nil)
	req = withURLParam(req, "code", "0000000000000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message != "produit non reconnu" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestGetProductAlternativesExcludesSelf(t *testing.T) {
	svc := &stubCatalogService{
		product: &catalog.Product{ID: "prod_001", Category: enums.CategoryFruitsLegumes},
		related: []catalog.Product{
			{ID: "prod_001", Category: enums.CategoryFruitsLegumes},
			{ID: "prod_012", Category: enums.CategoryFruitsLegumes},
			{ID: "prod_013", Category: enums.CategoryFruitsLegumes},
		},
	}
	handler := GetProductAlternatives(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/prod_001/alternatives", nil)
	req = withURLParam(req, "id", "prod_001")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 alternatives got %d", len(envelope.Data))
	}
	for _, p := range envelope.Data {
		if p.ID == "prod_001" {
			t.Fatal("alternatives must not contain the product itself")
		}
	}
}

func TestListStoresSuccess(t *testing.T) {
	svc := &stubCatalogService{stores: []catalog.Store{
		{ID: "store_001", Name: "Carrefour Market"},
		{ID: "store_002", Name: "Leclerc"},
	}}
	handler := ListStores(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/stores", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []catalog.Store `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 stores got %d", len(envelope.Data))
	}
}

func TestGetProductNilService(t *testing.T) {
	handler := GetProduct(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/prod_001", nil)
	req = withURLParam(req, "id", "prod_001")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
