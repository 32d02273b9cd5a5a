package pricing

import (
	"context"
	"fmt"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/shopspring/decimal"
)

type catalogReader interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	GetPricesForProduct(ctx context.Context, productID string) ([]catalog.StorePrice, error)
	GetAllPrices(ctx context.Context) ([]catalog.StorePrice, error)
	GetStores(ctx context.Context) ([]catalog.Store, error)
}

// BestOffer pairs a price row with its effective unit price once the
// promotion is applied.
type BestOffer struct {
	catalog.StorePrice
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

// Service answers pricing questions for the API layer by joining the catalog
// with the pure engine.
type Service interface {
	// BestOfferFor returns the cheapest available offer for the product, nil
	// when the product is unknown or nowhere in stock.
	BestOfferFor(ctx context.Context, productID string) (*BestOffer, error)
	// Compare prices the basket at every store, cheapest first.
	Compare(ctx context.Context, items []Item) ([]StoreComparison, error)
	// EstimateBasket sums the best available price of every line, mixing
	// stores freely.
	EstimateBasket(ctx context.Context, items []Item) (decimal.Decimal, error)
}

type service struct {
	catalog catalogReader
}

func NewService(catalogSvc catalogReader) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("pricing: catalog service is required")
	}
	return &service{catalog: catalogSvc}, nil
}

func (s *service) BestOfferFor(ctx context.Context, productID string) (*BestOffer, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	rows, err := s.catalog.GetPricesForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	best := BestPrice(rows)
	if best == nil {
		return nil, nil
	}
	return &BestOffer{
		StorePrice:     *best,
		EffectivePrice: PromotionalPrice(best.Price, best.Promotion),
	}, nil
}

func (s *service) Compare(ctx context.Context, items []Item) ([]StoreComparison, error) {
	stores, err := s.catalog.GetStores(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.catalog.GetAllPrices(ctx)
	if err != nil {
		return nil, err
	}
	return CompareBaskets(items, stores, NewPriceBook(rows)), nil
}

func (s *service) EstimateBasket(ctx context.Context, items []Item) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		rows, err := s.catalog.GetPricesForProduct(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		best := BestPrice(rows)
		if best == nil {
			continue
		}
		unit := PromotionalPrice(best.Price, best.Promotion)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
