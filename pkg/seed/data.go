package seed

import (
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/types"
	"github.com/shopspring/decimal"
)

// Reference data of the demo deployment: the Marseille store network and the
// staple-goods catalog with its per-store price grid.

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Products returns the full catalog in shelf order.
func Products() []catalog.Product {
	return []catalog.Product{
		{ID: "prod_001", Name: "Pommes Golden", Brand: "Carrefour Bio", Category: enums.CategoryFruitsLegumes, Barcode: "3560070123456", Image: "🍎", NutriScore: enums.GradeA, EcoScore: enums.GradeA, Allergens: types.StringList{}, Description: "Pommes Golden biologiques, origine France"},
		{ID: "prod_002", Name: "Bananes", Brand: "Chiquita", Category: enums.CategoryFruitsLegumes, Barcode: "3560070123457", Image: "🍌", NutriScore: enums.GradeA, EcoScore: enums.GradeB, Allergens: types.StringList{}, Description: "Bananes équitables, origine Équateur"},
		{ID: "prod_003", Name: "Tomates cerises", Brand: "Prince de Bretagne", Category: enums.CategoryFruitsLegumes, Barcode: "3560070123458", Image: "🍅", NutriScore: enums.GradeA, EcoScore: enums.GradeA, Allergens: types.StringList{}, Description: "Tomates cerises françaises, cultivées en Bretagne"},
		{ID: "prod_004", Name: "Carottes", Brand: "Carrefour", Category: enums.CategoryFruitsLegumes, Barcode: "3560070123459", Image: "🥕", NutriScore: enums.GradeA, EcoScore: enums.GradeA, Allergens: types.StringList{}, Description: "Carottes fraîches, origine France"},
		{ID: "prod_005", Name: "Salade iceberg", Brand: "Florette", Category: enums.CategoryFruitsLegumes, Barcode: "3560070123460", Image: "🥬", NutriScore: enums.GradeA, EcoScore: enums.GradeB, Allergens: types.StringList{}, Description: "Salade iceberg prête à consommer"},
		{ID: "prod_006", Name: "Lait demi-écrémé 1L", Brand: "Lactel", Category: enums.CategoryProduitsLaitiers, Barcode: "3560070123461", Image: "🥛", NutriScore: enums.GradeB, EcoScore: enums.GradeC, Allergens: types.StringList{"lait"}, Description: "Lait demi-écrémé UHT, origine France"},
		{ID: "prod_007", Name: "Yaourts nature x8", Brand: "Danone", Category: enums.CategoryProduitsLaitiers, Barcode: "3560070123462", Image: "🥛", NutriScore: enums.GradeA, EcoScore: enums.GradeC, Allergens: types.StringList{"lait"}, Description: "Yaourts nature au lait entier"},
		{ID: "prod_008", Name: "Fromage râpé", Brand: "Président", Category: enums.CategoryProduitsLaitiers, Barcode: "3560070123463", Image: "🧀", NutriScore: enums.GradeC, EcoScore: enums.GradeD, Allergens: types.StringList{"lait"}, Description: "Emmental râpé, 200g"},
		{ID: "prod_009", Name: "Beurre doux 250g", Brand: "Elle & Vire", Category: enums.CategoryProduitsLaitiers, Barcode: "3560070123464", Image: "🧈", NutriScore: enums.GradeD, EcoScore: enums.GradeD, Allergens: types.StringList{"lait"}, Description: "Beurre doux de Normandie"},
		{ID: "prod_010", Name: "Riz basmati 1kg", Brand: "Uncle Ben's", Category: enums.CategoryFeculents, Barcode: "3560070123465", Image: "🍚", NutriScore: enums.GradeA, EcoScore: enums.GradeB, Allergens: types.StringList{}, Description: "Riz basmati long grain"},
		{ID: "prod_011", Name: "Pâtes spaghetti", Brand: "Barilla", Category: enums.CategoryFeculents, Barcode: "3560070123466", Image: "🍝", NutriScore: enums.GradeA, EcoScore: enums.GradeB, Allergens: types.StringList{"gluten"}, Description: "Spaghetti n°5, 500g"},
		{ID: "prod_012", Name: "Pain de mie complet", Brand: "Harry's", Category: enums.CategoryFeculents, Barcode: "3560070123467", Image: "🍞", NutriScore: enums.GradeB, EcoScore: enums.GradeC, Allergens: types.StringList{"gluten"}, Description: "Pain de mie complet, 14 tranches"},
		{ID: "prod_013", Name: "Pommes de terre", Brand: "Carrefour", Category: enums.CategoryFeculents, Barcode: "3560070123468", Image: "🥔", NutriScore: enums.GradeA, EcoScore: enums.GradeA, Allergens: types.StringList{}, Description: "Pommes de terre Charlotte, 2kg"},
		{ID: "prod_014", Name: "Escalopes de poulet", Brand: "Le Gaulois", Category: enums.CategoryViandesPoissons, Barcode: "3560070123469", Image: "🍗", NutriScore: enums.GradeB, EcoScore: enums.GradeC, Allergens: types.StringList{}, Description: "Escalopes de poulet fermier, 4 pièces"},
		{ID: "prod_015", Name: "Saumon fumé", Brand: "Labeyrie", Category: enums.CategoryViandesPoissons, Barcode: "3560070123470", Image: "🐟", NutriScore: enums.GradeB, EcoScore: enums.GradeC, Allergens: types.StringList{"poisson"}, Description: "Saumon fumé d'Écosse, 4 tranches"},
		{ID: "prod_016", Name: "Jambon blanc", Brand: "Fleury Michon", Category: enums.CategoryViandesPoissons, Barcode: "3560070123471", Image: "🥓", NutriScore: enums.GradeC, EcoScore: enums.GradeD, Allergens: types.StringList{}, Description: "Jambon blanc découenné dégraissé, 4 tranches"},
		{ID: "prod_017", Name: "Huile d'olive", Brand: "Puget", Category: enums.CategoryEpicerie, Barcode: "3560070123472", Image: "🫒", NutriScore: enums.GradeC, EcoScore: enums.GradeB, Allergens: types.StringList{}, Description: "Huile d'olive vierge extra, 50cl"},
		{ID: "prod_018", Name: "Conserve tomates", Brand: "Mutti", Category: enums.CategoryEpicerie, Barcode: "3560070123473", Image: "🥫", NutriScore: enums.GradeA, EcoScore: enums.GradeB, Allergens: types.StringList{}, Description: "Tomates pelées entières, 400g"},
		{ID: "prod_019", Name: "Céréales", Brand: "Kellogg's", Category: enums.CategoryEpicerie, Barcode: "3560070123474", Image: "🥣", NutriScore: enums.GradeC, EcoScore: enums.GradeC, Allergens: types.StringList{"gluten"}, Description: "Corn Flakes, 375g"},
		{ID: "prod_020", Name: "Café moulu", Brand: "Carte Noire", Category: enums.CategoryEpicerie, Barcode: "3560070123475", Image: "☕", NutriScore: enums.GradeA, EcoScore: enums.GradeC, Allergens: types.StringList{}, Description: "Café moulu arabica, 250g"},
	}
}

// Stores returns the Marseille store network.
func Stores() []catalog.Store {
	return []catalog.Store{
		{ID: "store_001", Name: "Carrefour Marseille Centre", Address: "123 Avenue de la République, 13001 Marseille", Lat: 43.2965, Lng: 5.3698, DistanceKm: 1.2, OpeningHours: "Lun-Sam: 8h30-21h30, Dim: 9h-19h", Phone: "04 91 XX XX XX", Services: types.StringList{"Drive", "Livraison", "Click & Collect"}},
		{ID: "store_002", Name: "Leclerc Marseille Est", Address: "456 Boulevard National, 13003 Marseille", Lat: 43.3047, Lng: 5.3925, DistanceKm: 2.8, OpeningHours: "Lun-Sam: 8h30-20h30, Dim: 9h-19h", Phone: "04 91 YY YY YY", Services: types.StringList{"Drive", "Click & Collect"}},
		{ID: "store_003", Name: "Auchan Marseille Nord", Address: "789 Route de Lyon, 13015 Marseille", Lat: 43.3628, Lng: 5.3714, DistanceKm: 4.5, OpeningHours: "Lun-Sam: 8h30-22h, Dim: 9h-19h", Phone: "04 91 ZZ ZZ ZZ", Services: types.StringList{"Drive", "Livraison", "Click & Collect", "Retrait 2h"}},
		{ID: "store_004", Name: "Monoprix Marseille Vieux-Port", Address: "321 Rue de la République, 13002 Marseille", Lat: 43.2951, Lng: 5.3756, DistanceKm: 0.8, OpeningHours: "Lun-Sam: 9h-20h, Dim: 10h-19h", Phone: "04 91 AA AA AA", Services: types.StringList{"Livraison", "Click & Collect"}},
		{ID: "store_005", Name: "Casino Marseille Castellane", Address: "654 Avenue du Prado, 13008 Marseille", Lat: 43.2733, Lng: 5.3927, DistanceKm: 3.1, OpeningHours: "Lun-Sam: 8h-21h, Dim: 9h-19h", Phone: "04 91 BB BB BB", Services: types.StringList{"Click & Collect"}},
	}
}

// storeMeta carries the per-store constants of the price grid.
type storeMeta struct {
	id      string
	name    string
	updated time.Time
}

func storeMetas() []storeMeta {
	return []storeMeta{
		{id: "store_001", name: "Carrefour", updated: mustTime("2024-01-15T10:00:00Z")},
		{id: "store_002", name: "Leclerc", updated: mustTime("2024-01-15T09:30:00Z")},
		{id: "store_003", name: "Auchan", updated: mustTime("2024-01-15T08:45:00Z")},
		{id: "store_004", name: "Monoprix", updated: mustTime("2024-01-15T11:15:00Z")},
		{id: "store_005", name: "Casino", updated: mustTime("2024-01-15T10:30:00Z")},
	}
}

// priceCell is one cell of the product × store price grid.
type priceCell struct {
	amount      string
	promo       *catalog.Promotion
	unavailable bool
}

func percentage(value, description, until string) *catalog.Promotion {
	return &catalog.Promotion{Type: enums.PromotionPercentage, Amount: dec(value), Description: description, ValidUntil: mustTime(until)}
}

func fixed(value, description, until string) *catalog.Promotion {
	return &catalog.Promotion{Type: enums.PromotionFixed, Amount: dec(value), Description: description, ValidUntil: mustTime(until)}
}

func quantity(value, description, until string) *catalog.Promotion {
	return &catalog.Promotion{Type: enums.PromotionQuantity, Amount: dec(value), Description: description, ValidUntil: mustTime(until)}
}

func priceGrid() map[string][]priceCell {
	return map[string][]priceCell{
		"prod_001": {
			{amount: "2.99"},
			{amount: "2.79", promo: percentage("10", "-10% sur les fruits bio", "2024-01-20T23:59:59Z")},
			{amount: "3.19"},
			{amount: "3.49"},
			{amount: "2.89"},
		},
		"prod_002": {
			{amount: "1.89"},
			{amount: "1.69"},
			{amount: "1.79", promo: quantity("2", "2 kg achetés = 1 kg offert", "2024-01-18T23:59:59Z")},
			{amount: "2.19"},
			{amount: "1.99", unavailable: true},
		},
		"prod_003": {
			{amount: "3.49"},
			{amount: "3.29"},
			{amount: "3.69"},
			{amount: "3.99"},
			{amount: "3.39", promo: fixed("0.30", "-30 centimes immédiat", "2024-01-17T23:59:59Z")},
		},
		"prod_004": {
			{amount: "1.99"},
			{amount: "1.79"},
			{amount: "2.09"},
			{amount: "2.29"},
			{amount: "1.89"},
		},
		"prod_005": {
			{amount: "1.49"},
			{amount: "1.39"},
			{amount: "1.59"},
			{amount: "1.69"},
			{amount: "1.45"},
		},
		"prod_006": {
			{amount: "1.15"},
			{amount: "1.09"},
			{amount: "1.19"},
			{amount: "1.29"},
			{amount: "1.25", promo: fixed("0.20", "-20 centimes immédiat", "2024-01-17T23:59:59Z")},
		},
		"prod_007": {
			{amount: "2.89"},
			{amount: "2.69", promo: percentage("15", "-15% sur les yaourts", "2024-01-19T23:59:59Z")},
			{amount: "2.99"},
			{amount: "3.19"},
			{amount: "2.79"},
		},
		"prod_008": {
			{amount: "2.49"},
			{amount: "2.29"},
			{amount: "2.59"},
			{amount: "2.79"},
			{amount: "2.39"},
		},
		"prod_009": {
			{amount: "3.29"},
			{amount: "3.09"},
			{amount: "3.39"},
			{amount: "3.59"},
			{amount: "3.19"},
		},
		"prod_010": {
			{amount: "3.29"},
			{amount: "2.99"},
			{amount: "3.49"},
			{amount: "3.79"},
			{amount: "3.19"},
		},
		"prod_011": {
			{amount: "1.89"},
			{amount: "1.69", promo: quantity("3", "3 paquets achetés = 1 offert", "2024-01-20T23:59:59Z")},
			{amount: "1.99"},
			{amount: "2.19"},
			{amount: "1.79"},
		},
		"prod_012": {
			{amount: "2.19"},
			{amount: "1.99"},
			{amount: "2.29"},
			{amount: "2.49"},
			{amount: "2.09"},
		},
		"prod_013": {
			{amount: "2.99"},
			{amount: "2.79"},
			{amount: "3.19"},
			{amount: "3.39"},
			{amount: "2.89"},
		},
		"prod_014": {
			{amount: "6.99"},
			{amount: "6.49"},
			{amount: "7.19"},
			{amount: "7.49"},
			{amount: "6.79", promo: percentage("20", "-20% sur les volailles", "2024-01-18T23:59:59Z")},
		},
		"prod_015": {
			{amount: "4.99"},
			{amount: "4.79"},
			{amount: "5.19"},
			{amount: "5.49"},
			{amount: "4.89"},
		},
		"prod_016": {
			{amount: "2.99"},
			{amount: "2.79"},
			{amount: "3.19"},
			{amount: "3.39"},
			{amount: "2.89"},
		},
		"prod_017": {
			{amount: "4.49"},
			{amount: "4.19"},
			{amount: "4.69"},
			{amount: "4.99"},
			{amount: "4.29"},
		},
		"prod_018": {
			{amount: "1.29"},
			{amount: "1.19"},
			{amount: "1.39"},
			{amount: "1.49"},
			{amount: "1.25", promo: quantity("2", "2 boîtes achetées = 1 offerte", "2024-01-19T23:59:59Z")},
		},
		"prod_019": {
			{amount: "3.49"},
			{amount: "3.19"},
			{amount: "3.69"},
			{amount: "3.89"},
			{amount: "3.29"},
		},
		"prod_020": {
			{amount: "4.99"},
			{amount: "4.69"},
			{amount: "5.19"},
			{amount: "5.49"},
			{amount: "4.79", promo: fixed("0.50", "-50 centimes immédiat", "2024-01-17T23:59:59Z")},
		},
	}
}

// StorePrices expands the price grid into rows, one per (product, store).
func StorePrices() []catalog.StorePrice {
	metas := storeMetas()
	grid := priceGrid()

	rows := make([]catalog.StorePrice, 0, len(grid)*len(metas))
	for _, product := range Products() {
		cells, ok := grid[product.ID]
		if !ok {
			continue
		}
		for i, cell := range cells {
			meta := metas[i]
			rows = append(rows, catalog.StorePrice{
				ProductID:    product.ID,
				StoreID:      meta.id,
				StoreName:    meta.name,
				Price:        dec(cell.amount),
				Promotion:    cell.promo,
				Availability: !cell.unavailable,
				LastUpdated:  meta.updated,
				Position:     i,
			})
		}
	}
	return rows
}
