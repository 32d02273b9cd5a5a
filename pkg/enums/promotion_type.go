package enums

import "fmt"

// PromotionType tags the discount variant attached to a store price.
type PromotionType string

const (
	// PromotionPercentage discounts a fraction of the unit price.
	PromotionPercentage PromotionType = "percentage"
	// PromotionFixed subtracts an absolute amount, floored at zero.
	PromotionFixed PromotionType = "fixed"
	// PromotionQuantity is an N-bought-one-free offer. Its benefit is not
	// realized at the unit-price level; see internal/pricing.
	PromotionQuantity PromotionType = "quantity"
)

var validPromotionTypes = []PromotionType{
	PromotionPercentage,
	PromotionFixed,
	PromotionQuantity,
}

// String implements fmt.Stringer.
func (p PromotionType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PromotionType.
func (p PromotionType) IsValid() bool {
	for _, candidate := range validPromotionTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePromotionType converts the raw string to PromotionType.
func ParsePromotionType(value string) (PromotionType, error) {
	for _, candidate := range validPromotionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid promotion type %q", value)
}
