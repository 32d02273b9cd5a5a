package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
)

func TestGetBestOfferSuccess(t *testing.T) {
	svc := &stubPricingService{offer: &pricing.BestOffer{
		StorePrice:     catalog.StorePrice{ProductID: "prod_001", StoreID: "store_002"},
		EffectivePrice: decimal.RequireFromString("2.511"),
	}}
	handler := GetBestOffer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/best/prod_001", nil)
	req = withURLParam(req, "productID", "prod_001")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data pricing.BestOffer `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.StoreID != "store_002" {
		t.Fatalf("expected store_002 got %s", envelope.Data.StoreID)
	}
	if !envelope.Data.EffectivePrice.Equal(decimal.RequireFromString("2.511")) {
		t.Fatalf("expected 2.511 got %s", envelope.Data.EffectivePrice)
	}
}

func TestGetBestOfferNotFound(t *testing.T) {
	handler := GetBestOffer(&stubPricingService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/best/prod_999", nil)
	req = withURLParam(req, "productID", "prod_999")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestCompareBasketsSuccess(t *testing.T) {
	svc := &stubPricingService{comparisons: []pricing.StoreComparison{
		{StoreID: "store_002", StoreName: "Leclerc", Total: decimal.RequireFromString("5.022")},
		{StoreID: "store_001", StoreName: "Carrefour", Total: decimal.RequireFromString("5.58")},
	}}
	handler := CompareBaskets(svc, nil)

	body := bytes.NewBufferString(`{"items":[{"product_id":"prod_001","quantity":2}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compare", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.lastItems) != 1 || svc.lastItems[0].ProductID != "prod_001" || svc.lastItems[0].Quantity != 2 {
		t.Fatalf("unexpected items passed to service: %+v", svc.lastItems)
	}

	var envelope struct {
		Data []pricing.StoreComparison `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 comparisons got %d", len(envelope.Data))
	}
	if envelope.Data[0].StoreID != "store_002" {
		t.Fatalf("expected cheapest store first got %s", envelope.Data[0].StoreID)
	}
}

func TestCompareBasketsEmptyItems(t *testing.T) {
	svc := &stubPricingService{}
	handler := CompareBaskets(svc, nil)

	body := bytes.NewBufferString(`{"items":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compare", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastItems != nil {
		t.Fatalf("service should not be called on invalid payload")
	}
}

func TestCompareBasketsZeroQuantity(t *testing.T) {
	handler := CompareBaskets(&stubPricingService{}, nil)

	body := bytes.NewBufferString(`{"items":[{"product_id":"prod_001","quantity":0}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compare", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
