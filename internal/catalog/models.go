package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/types"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Reference data: seeded once, never mutated at
// runtime.
type Product struct {
	ID          string                `gorm:"primaryKey" json:"id"`
	Name        string                `gorm:"not null" json:"name"`
	Brand       string                `json:"brand"`
	Category    enums.ProductCategory `gorm:"index" json:"category"`
	Barcode     string                `gorm:"uniqueIndex" json:"barcode"`
	Image       string                `json:"image"`
	NutriScore  enums.Grade           `json:"nutri_score"`
	EcoScore    enums.Grade           `json:"eco_score"`
	Allergens   types.StringList      `gorm:"type:text" json:"allergens"`
	Description string                `json:"description"`
}

// Store is a physical shop carrying catalog products.
type Store struct {
	ID           string           `gorm:"primaryKey" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Address      string           `json:"address"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	DistanceKm   float64          `json:"distance_km"`
	OpeningHours string           `json:"opening_hours"`
	Phone        string           `json:"phone"`
	Services     types.StringList `gorm:"type:text" json:"services"`
}

// Promotion is the discount descriptor optionally attached to a store price.
// Stored as a JSON text column; a missing promotion is a NULL column and a
// nil pointer.
type Promotion struct {
	Type        enums.PromotionType `json:"type"`
	Amount      decimal.Decimal     `json:"value"`
	Description string              `json:"description"`
	ValidUntil  time.Time           `json:"valid_until"`
}

// Expired reports whether the promotion window has passed. Pricing does not
// consult this; expired promotions keep applying, matching the source app.
// Presentation layers may use it to badge stale offers.
func (p Promotion) Expired(now time.Time) bool {
	return now.After(p.ValidUntil)
}

// Value implements driver.Valuer.
func (p Promotion) Value() (driver.Value, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal promotion: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (p *Promotion) Scan(src any) error {
	if src == nil {
		*p = Promotion{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported promotion source %T", src)
	}

	if len(raw) == 0 {
		*p = Promotion{}
		return nil
	}
	return json.Unmarshal(raw, p)
}

// StorePrice is one (product, store) price row, optionally promoted.
type StorePrice struct {
	ProductID    string          `gorm:"primaryKey" json:"-"`
	StoreID      string          `gorm:"primaryKey" json:"store_id"`
	StoreName    string          `json:"store_name"`
	Price        decimal.Decimal `gorm:"type:numeric" json:"price"`
	Promotion    *Promotion      `gorm:"type:text" json:"promotion,omitempty"`
	Availability bool            `json:"availability"`
	LastUpdated  time.Time       `json:"last_updated"`

	// Position preserves the per-product row order of the reference data;
	// best-price ties resolve to the first row encountered.
	Position int `gorm:"index" json:"-"`
}

// ProductWithPrices joins a product with its per-store price rows. Prices is
// always non-nil; a product carried by no store has an empty slice.
type ProductWithPrices struct {
	Product
	Prices []StorePrice `json:"prices"`
}
