// Package pricing resolves promotions and compares basket costs across
// stores. The engine itself is pure: it works over catalog rows already in
// hand and never touches storage.
package pricing

import (
	"sort"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/shopspring/decimal"
)

// Item is one basket line: a product and how many of it.
type Item struct {
	ProductID string
	Quantity  int
}

// PriceBook indexes store prices by product ID, rows in reference order.
type PriceBook map[string][]catalog.StorePrice

// NewPriceBook builds a PriceBook from a flat slice of price rows.
func NewPriceBook(rows []catalog.StorePrice) PriceBook {
	book := make(PriceBook, len(rows)/4)
	for _, row := range rows {
		book[row.ProductID] = append(book[row.ProductID], row)
	}
	return book
}

// StoreComparison is the cost of one basket at one store.
type StoreComparison struct {
	StoreID           string          `json:"store_id"`
	StoreName         string          `json:"store_name"`
	Total             decimal.Decimal `json:"total"`
	Savings           decimal.Decimal `json:"savings"`
	UnavailableItems  int             `json:"unavailable_items"`
	PromotionsApplied int             `json:"promotions_applied"`
}

// PromotionalPrice returns the unit price after applying a promotion.
// Percentage and fixed discounts never go below zero. Quantity promotions
// ("N achetés = 1 offert") leave the unit price unchanged; their benefit only
// materializes at checkout and is not modeled here.
func PromotionalPrice(price decimal.Decimal, promo *catalog.Promotion) decimal.Decimal {
	if promo == nil {
		return price
	}
	switch promo.Type {
	case enums.PromotionPercentage:
		discounted := price.Mul(decimal.NewFromInt(1).Sub(promo.Amount.Div(decimal.NewFromInt(100))))
		if discounted.IsNegative() {
			return decimal.Zero
		}
		return discounted
	case enums.PromotionFixed:
		discounted := price.Sub(promo.Amount)
		if discounted.IsNegative() {
			return decimal.Zero
		}
		return discounted
	default:
		return price
	}
}

// BestPrice returns the available row with the lowest promotional price, or
// nil when no store has the product in stock. The first row wins ties, so
// callers get a stable answer for a stable input order.
func BestPrice(rows []catalog.StorePrice) *catalog.StorePrice {
	var best *catalog.StorePrice
	var bestPrice decimal.Decimal
	for i := range rows {
		row := &rows[i]
		if !row.Availability {
			continue
		}
		effective := PromotionalPrice(row.Price, row.Promotion)
		if best == nil || effective.LessThan(bestPrice) {
			best = row
			bestPrice = effective
		}
	}
	return best
}

// BasketTotal prices a basket at a single store. Products the store does not
// carry, or carries out of stock, contribute nothing.
func BasketTotal(items []Item, storeID string, book PriceBook) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		row := storeRow(book[item.ProductID], storeID)
		if row == nil || !row.Availability {
			continue
		}
		unit := PromotionalPrice(row.Price, row.Promotion)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CompareBaskets prices the basket at every store and ranks the results from
// cheapest to most expensive. Savings are measured against the most expensive
// store, which therefore reports zero.
func CompareBaskets(items []Item, stores []catalog.Store, book PriceBook) []StoreComparison {
	comparisons := make([]StoreComparison, 0, len(stores))
	for _, store := range stores {
		comparison := StoreComparison{
			StoreID:   store.ID,
			StoreName: store.Name,
			Total:     decimal.Zero,
			Savings:   decimal.Zero,
		}
		for _, item := range items {
			row := storeRow(book[item.ProductID], store.ID)
			if row == nil || !row.Availability {
				comparison.UnavailableItems++
				continue
			}
			unit := PromotionalPrice(row.Price, row.Promotion)
			comparison.Total = comparison.Total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
			if row.Promotion != nil {
				comparison.PromotionsApplied++
			}
		}
		comparisons = append(comparisons, comparison)
	}

	maxTotal := decimal.Zero
	for _, c := range comparisons {
		if c.Total.GreaterThan(maxTotal) {
			maxTotal = c.Total
		}
	}
	for i := range comparisons {
		comparisons[i].Savings = maxTotal.Sub(comparisons[i].Total)
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].Total.LessThan(comparisons[j].Total)
	})
	return comparisons
}

func storeRow(rows []catalog.StorePrice, storeID string) *catalog.StorePrice {
	for i := range rows {
		if rows[i].StoreID == storeID {
			return &rows[i]
		}
	}
	return nil
}
