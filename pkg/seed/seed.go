// Package seed loads the demo catalog into the database. Loading is
// idempotent: rows that already exist are left untouched.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Loader writes the reference catalog into a database.
type Loader struct {
	db *gorm.DB
}

func NewLoader(db *gorm.DB) (*Loader, error) {
	if db == nil {
		return nil, fmt.Errorf("seed: db is required")
	}
	return &Loader{db: db}, nil
}

// Apply inserts products, stores and prices, skipping rows already present.
// All three batches are attempted even when an earlier one fails, and the
// failures are reported together.
func (l *Loader) Apply(ctx context.Context) error {
	conn := l.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	var errs error
	if err := conn.Create(Products()).Error; err != nil {
		errs = multierr.Append(errs, fmt.Errorf("seed products: %w", err))
	}
	if err := conn.Create(Stores()).Error; err != nil {
		errs = multierr.Append(errs, fmt.Errorf("seed stores: %w", err))
	}
	if err := conn.CreateInBatches(StorePrices(), 50).Error; err != nil {
		errs = multierr.Append(errs, fmt.Errorf("seed prices: %w", err))
	}
	return errs
}
