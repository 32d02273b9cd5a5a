// Package shoppinglist holds the household's lists: a single working draft,
// validated lists waiting for the store run, and the runs themselves.
package shoppinglist

import (
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one line of a list.
type Item struct {
	ID        string         `json:"id"`
	ProductID string         `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Priority  enums.Priority `json:"priority"`
	Notes     string         `json:"notes,omitempty"`
	AddedAt   time.Time      `json:"added_at"`
	Scanned   bool           `json:"scanned"`
	ScannedAt *time.Time     `json:"scanned_at,omitempty"`
}

// List is a shopping list across its whole lifecycle, from draft to
// completed store run.
type List struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Items          []Item           `json:"items"`
	Status         enums.ListStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	ValidatedAt    *time.Time       `json:"validated_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	TotalEstimated decimal.Decimal  `json:"total_estimated"`
	TotalActual    *decimal.Decimal `json:"total_actual,omitempty"`
}

// NewList creates an empty draft.
func NewList(name string, now time.Time) *List {
	return &List{
		ID:             uuid.NewString(),
		Name:           name,
		Items:          []Item{},
		Status:         enums.ListStatusDraft,
		CreatedAt:      now.UTC(),
		TotalEstimated: decimal.Zero,
	}
}

// NewItem creates a list line with the defaults of a fresh add.
func NewItem(productID string, now time.Time) Item {
	return Item{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  1,
		Priority:  enums.PriorityMedium,
		AddedAt:   now.UTC(),
	}
}

// FindItem returns the index of the item, or -1.
func (l *List) FindItem(itemID string) int {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// FindItemByProduct returns the index of the line holding the product, or -1.
func (l *List) FindItemByProduct(productID string) int {
	for i := range l.Items {
		if l.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// RemoveItem drops the line at index i, preserving order.
func (l *List) RemoveItem(i int) {
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
}
