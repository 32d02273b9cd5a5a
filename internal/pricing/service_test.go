package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/seed"
	"github.com/shopspring/decimal"
)

type stubCatalog struct {
	products map[string]*catalog.Product
	prices   []catalog.StorePrice
	stores   []catalog.Store
	err      error
}

func (s *stubCatalog) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products[id], nil
}

func (s *stubCatalog) GetPricesForProduct(_ context.Context, productID string) ([]catalog.StorePrice, error) {
	if s.err != nil {
		return nil, s.err
	}
	var rows []catalog.StorePrice
	for _, row := range s.prices {
		if row.ProductID == productID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *stubCatalog) GetAllPrices(_ context.Context) ([]catalog.StorePrice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prices, nil
}

func (s *stubCatalog) GetStores(_ context.Context) ([]catalog.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stores, nil
}

func seededCatalog() *stubCatalog {
	products := map[string]*catalog.Product{}
	for _, p := range seed.Products() {
		p := p
		products[p.ID] = &p
	}
	return &stubCatalog{
		products: products,
		prices:   seed.StorePrices(),
		stores:   seed.Stores(),
	}
}

func TestNewServiceRequiresCatalog(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestBestOfferForGoldenApples(t *testing.T) {
	t.Parallel()

	svc, err := NewService(seededCatalog())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	offer, err := svc.BestOfferFor(context.Background(), "prod_001")
	if err != nil {
		t.Fatalf("BestOfferFor: %v", err)
	}
	if offer == nil {
		t.Fatal("expected an offer")
	}
	// Leclerc's 2.79 at -10% undercuts Casino's plain 2.89.
	if offer.StoreID != "store_002" {
		t.Fatalf("got store %s, want store_002", offer.StoreID)
	}
	if !offer.EffectivePrice.Equal(decimal.RequireFromString("2.511")) {
		t.Fatalf("effective price = %s, want 2.511", offer.EffectivePrice)
	}
}

func TestBestOfferForUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, err := NewService(seededCatalog())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	offer, err := svc.BestOfferFor(context.Background(), "prod_999")
	if err != nil {
		t.Fatalf("BestOfferFor: %v", err)
	}
	if offer != nil {
		t.Fatalf("expected nil, got %+v", offer)
	}
}

func TestEstimateBasket(t *testing.T) {
	t.Parallel()

	svc, err := NewService(seededCatalog())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	total, err := svc.EstimateBasket(context.Background(), []Item{{ProductID: "prod_001", Quantity: 2}})
	if err != nil {
		t.Fatalf("EstimateBasket: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("5.022")) {
		t.Fatalf("total = %s, want 5.022", total)
	}
}

func TestCompareCoversEveryStore(t *testing.T) {
	t.Parallel()

	svc, err := NewService(seededCatalog())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	got, err := svc.Compare(context.Background(), []Item{
		{ProductID: "prod_002", Quantity: 1},
		{ProductID: "prod_006", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d comparisons, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Total.LessThan(got[i-1].Total) {
			t.Fatalf("comparisons not sorted: %s before %s", got[i-1].Total, got[i].Total)
		}
	}
	// Bananas are out of stock at Casino.
	var casino *StoreComparison
	for i := range got {
		if got[i].StoreID == "store_005" {
			casino = &got[i]
		}
	}
	if casino == nil || casino.UnavailableItems != 1 {
		t.Fatalf("casino comparison = %+v, want 1 unavailable item", casino)
	}
}

func TestServicePropagatesCatalogErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc, err := NewService(&stubCatalog{err: boom})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.BestOfferFor(context.Background(), "prod_001"); !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped db error", err)
	}
	if _, err := svc.Compare(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped db error", err)
	}
}
