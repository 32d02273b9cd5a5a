package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/JonathanI21/Courses-solidaires-2/pkg/pagination"
	"gorm.io/gorm"
)

// Repository wires together the catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindProductByID loads a product row. Returns nil when absent.
func (r *Repository) FindProductByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindProductByBarcode resolves a scanned barcode. Returns nil when no
// product carries it.
func (r *Repository) FindProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListProductsByCategory returns every product on the shelf, catalog order.
func (r *Repository) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var rows []Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Find(&rows).
		Error
	return rows, err
}

// SearchProducts matches the query case-insensitively against name, brand
// and description. An empty query matches every product.
func (r *Repository) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&rows).
		Error
	return rows, err
}

// ListAllProducts returns the whole catalog in shelf order.
func (r *Repository) ListAllProducts(ctx context.Context) ([]Product, error) {
	var rows []Product
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// ProductListQuery bundles pagination and filters for the product listing.
type ProductListQuery struct {
	Pagination pagination.Params
	Category   string
	Search     string
}

// ProductListResult is one page of catalog products.
type ProductListResult struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// ListProductPage returns a cursor-paginated slice of the catalog.
func (r *Repository) ListProductPage(ctx context.Context, query ProductListQuery) (*ProductListResult, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)

	cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&Product{})
	if query.Category != "" {
		qb = qb.Where("category = ?", query.Category)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern)
	}
	if cursor != nil {
		qb = qb.Where("id > ?", cursor.ID)
	}

	var rows []Product
	if err := qb.Order("id").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{ID: rows[len(rows)-1].ID})
	}

	return &ProductListResult{Products: rows, NextCursor: nextCursor}, nil
}

// ListPricesForProduct returns the per-store rows in reference order.
func (r *Repository) ListPricesForProduct(ctx context.Context, productID string) ([]StorePrice, error) {
	var rows []StorePrice
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("position").
		Find(&rows).
		Error
	return rows, err
}

// ListAllPrices returns every price row grouped by product iteration order.
func (r *Repository) ListAllPrices(ctx context.Context) ([]StorePrice, error) {
	var rows []StorePrice
	err := r.db.WithContext(ctx).
		Order("product_id").
		Order("position").
		Find(&rows).
		Error
	return rows, err
}

// ListStores returns the static store table.
func (r *Repository) ListStores(ctx context.Context) ([]Store, error) {
	var rows []Store
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// FindStoreByID loads a store row. Returns nil when absent.
func (r *Repository) FindStoreByID(ctx context.Context, id string) (*Store, error) {
	var store Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}
