package pricing

import (
	"testing"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return d
}

func TestPromotionalPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price string
		promo *catalog.Promotion
		want  string
	}{
		{name: "no promotion", price: "2.99", promo: nil, want: "2.99"},
		{
			name:  "percentage",
			price: "2.79",
			promo: &catalog.Promotion{Type: enums.PromotionPercentage, Amount: decimal.NewFromInt(10)},
			want:  "2.511",
		},
		{
			name:  "percentage over hundred clamps to zero",
			price: "2.00",
			promo: &catalog.Promotion{Type: enums.PromotionPercentage, Amount: decimal.NewFromInt(150)},
			want:  "0",
		},
		{
			name:  "fixed",
			price: "1.25",
			promo: &catalog.Promotion{Type: enums.PromotionFixed, Amount: decimal.RequireFromString("0.20")},
			want:  "1.05",
		},
		{
			name:  "fixed larger than price clamps to zero",
			price: "0.10",
			promo: &catalog.Promotion{Type: enums.PromotionFixed, Amount: decimal.RequireFromString("0.20")},
			want:  "0",
		},
		{
			name:  "quantity leaves unit price unchanged",
			price: "1.79",
			promo: &catalog.Promotion{Type: enums.PromotionQuantity, Amount: decimal.NewFromInt(2)},
			want:  "1.79",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := PromotionalPrice(dec(t, tc.price), tc.promo)
			if !got.Equal(dec(t, tc.want)) {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBestPriceSkipsUnavailable(t *testing.T) {
	t.Parallel()

	rows := []catalog.StorePrice{
		{ProductID: "prod_x", StoreID: "store_001", Price: decimal.RequireFromString("1.50"), Availability: false},
		{ProductID: "prod_x", StoreID: "store_002", Price: decimal.RequireFromString("1.80"), Availability: true},
		{ProductID: "prod_x", StoreID: "store_003", Price: decimal.RequireFromString("1.90"), Availability: true},
	}

	best := BestPrice(rows)
	if best == nil {
		t.Fatal("expected a best price")
	}
	if best.StoreID != "store_002" {
		t.Fatalf("got store %s, want store_002", best.StoreID)
	}
}

func TestBestPricePrefersPromotionalPrice(t *testing.T) {
	t.Parallel()

	// 2.79 at -10% beats a plain 2.60.
	rows := []catalog.StorePrice{
		{StoreID: "store_001", Price: decimal.RequireFromString("2.60"), Availability: true},
		{
			StoreID:      "store_002",
			Price:        decimal.RequireFromString("2.79"),
			Availability: true,
			Promotion:    &catalog.Promotion{Type: enums.PromotionPercentage, Amount: decimal.NewFromInt(10)},
		},
	}

	best := BestPrice(rows)
	if best == nil || best.StoreID != "store_002" {
		t.Fatalf("got %+v, want store_002", best)
	}
}

func TestBestPriceFirstRowWinsTies(t *testing.T) {
	t.Parallel()

	rows := []catalog.StorePrice{
		{StoreID: "store_003", Price: decimal.RequireFromString("2.00"), Availability: true},
		{StoreID: "store_001", Price: decimal.RequireFromString("2.00"), Availability: true},
	}

	best := BestPrice(rows)
	if best == nil || best.StoreID != "store_003" {
		t.Fatalf("got %+v, want first row store_003", best)
	}
}

func TestBestPriceNoneAvailable(t *testing.T) {
	t.Parallel()

	rows := []catalog.StorePrice{
		{StoreID: "store_001", Price: decimal.RequireFromString("2.00"), Availability: false},
	}
	if best := BestPrice(rows); best != nil {
		t.Fatalf("expected nil, got %+v", best)
	}
}

func comparisonFixture() ([]catalog.Store, PriceBook) {
	stores := []catalog.Store{
		{ID: "store_001", Name: "Carrefour Marseille Centre"},
		{ID: "store_002", Name: "Leclerc Marseille Est"},
		{ID: "store_003", Name: "Auchan Marseille Nord"},
	}
	book := NewPriceBook([]catalog.StorePrice{
		{ProductID: "prod_a", StoreID: "store_001", Price: decimal.RequireFromString("2.99"), Availability: true},
		{
			ProductID:    "prod_a",
			StoreID:      "store_002",
			Price:        decimal.RequireFromString("2.79"),
			Availability: true,
			Promotion:    &catalog.Promotion{Type: enums.PromotionPercentage, Amount: decimal.NewFromInt(10)},
		},
		{ProductID: "prod_a", StoreID: "store_003", Price: decimal.RequireFromString("3.19"), Availability: true},
		{ProductID: "prod_b", StoreID: "store_001", Price: decimal.RequireFromString("1.89"), Availability: true},
		{ProductID: "prod_b", StoreID: "store_002", Price: decimal.RequireFromString("1.69"), Availability: true},
		{ProductID: "prod_b", StoreID: "store_003", Price: decimal.RequireFromString("1.79"), Availability: false},
	})
	return stores, book
}

func TestCompareBasketsOrderAndSavings(t *testing.T) {
	t.Parallel()

	stores, book := comparisonFixture()
	items := []Item{
		{ProductID: "prod_a", Quantity: 1},
		{ProductID: "prod_b", Quantity: 2},
	}

	got := CompareBaskets(items, stores, book)
	if len(got) != 3 {
		t.Fatalf("got %d comparisons, want 3", len(got))
	}

	// store_002: 2.511 + 2×1.69 = 5.891; store_001: 2.99 + 2×1.89 = 6.77;
	// store_003: 3.19 with prod_b out of stock.
	if got[0].StoreID != "store_003" || got[1].StoreID != "store_002" || got[2].StoreID != "store_001" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].StoreID, got[1].StoreID, got[2].StoreID)
	}
	if !got[1].Total.Equal(decimal.RequireFromString("5.891")) {
		t.Fatalf("store_002 total = %s, want 5.891", got[1].Total)
	}
	if got[1].PromotionsApplied != 1 {
		t.Fatalf("store_002 promotions = %d, want 1", got[1].PromotionsApplied)
	}
	if got[0].UnavailableItems != 1 {
		t.Fatalf("store_003 unavailable = %d, want 1", got[0].UnavailableItems)
	}

	// The most expensive store saves nothing; the others save the difference.
	if !got[2].Savings.IsZero() {
		t.Fatalf("most expensive store savings = %s, want 0", got[2].Savings)
	}
	wantSavings := got[2].Total.Sub(got[1].Total)
	if !got[1].Savings.Equal(wantSavings) {
		t.Fatalf("store_002 savings = %s, want %s", got[1].Savings, wantSavings)
	}
}

func TestBasketTotalSkipsMissingRows(t *testing.T) {
	t.Parallel()

	_, book := comparisonFixture()
	items := []Item{
		{ProductID: "prod_a", Quantity: 1},
		{ProductID: "prod_missing", Quantity: 4},
	}

	got := BasketTotal(items, "store_001", book)
	if !got.Equal(decimal.RequireFromString("2.99")) {
		t.Fatalf("got %s, want 2.99", got)
	}
}
