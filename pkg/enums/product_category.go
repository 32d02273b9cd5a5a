package enums

import "fmt"

// ProductCategory is the fixed set of catalog shelves.
type ProductCategory string

const (
	CategoryFruitsLegumes    ProductCategory = "fruits-legumes"
	CategoryProduitsLaitiers ProductCategory = "produits-laitiers"
	CategoryFeculents        ProductCategory = "feculents"
	CategoryViandesPoissons  ProductCategory = "viandes-poissons"
	CategoryEpicerie         ProductCategory = "epicerie"
)

var validProductCategories = []ProductCategory{
	CategoryFruitsLegumes,
	CategoryProduitsLaitiers,
	CategoryFeculents,
	CategoryViandesPoissons,
	CategoryEpicerie,
}

// String implements fmt.Stringer.
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCategory.
func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts the raw string to ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns every known category in shelf order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
