package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
)

type repository interface {
	FindProductByID(ctx context.Context, id string) (*Product, error)
	FindProductByBarcode(ctx context.Context, barcode string) (*Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	ListAllProducts(ctx context.Context) ([]Product, error)
	ListProductPage(ctx context.Context, query ProductListQuery) (*ProductListResult, error)
	ListPricesForProduct(ctx context.Context, productID string) ([]StorePrice, error)
	ListAllPrices(ctx context.Context) ([]StorePrice, error)
	ListStores(ctx context.Context) ([]Store, error)
	FindStoreByID(ctx context.Context, id string) (*Store, error)
}

// Service exposes read access to the reference catalog. Lookup misses are
// nil results, not errors; only storage failures surface as errors.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	ListProducts(ctx context.Context, query ProductListQuery) (*ProductListResult, error)
	GetProductWithPrices(ctx context.Context, id string) (*ProductWithPrices, error)
	GetAllProductsWithPrices(ctx context.Context) ([]ProductWithPrices, error)
	GetPricesForProduct(ctx context.Context, productID string) ([]StorePrice, error)
	GetAllPrices(ctx context.Context) ([]StorePrice, error)
	GetStores(ctx context.Context) ([]Store, error)
	GetStore(ctx context.Context, id string) (*Store, error)
}

type service struct {
	repo repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) GetProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	product, err := s.repo.FindProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product by barcode")
	}
	return product, nil
}

func (s *service) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	rows, err := s.repo.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products by category")
	}
	return rows, nil
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	rows, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search products")
	}
	return rows, nil
}

func (s *service) ListProducts(ctx context.Context, query ProductListQuery) (*ProductListResult, error) {
	page, err := s.repo.ListProductPage(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return page, nil
}

func (s *service) GetProductWithPrices(ctx context.Context, id string) (*ProductWithPrices, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	prices, err := s.GetPricesForProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductWithPrices{Product: *product, Prices: prices}, nil
}

func (s *service) GetAllProductsWithPrices(ctx context.Context) ([]ProductWithPrices, error) {
	products, err := s.repo.ListAllProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	prices, err := s.repo.ListAllPrices(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list prices")
	}

	byProduct := make(map[string][]StorePrice, len(products))
	for _, row := range prices {
		byProduct[row.ProductID] = append(byProduct[row.ProductID], row)
	}

	out := make([]ProductWithPrices, 0, len(products))
	for _, product := range products {
		rows := byProduct[product.ID]
		if rows == nil {
			rows = []StorePrice{}
		}
		out = append(out, ProductWithPrices{Product: product, Prices: rows})
	}
	return out, nil
}

func (s *service) GetPricesForProduct(ctx context.Context, productID string) ([]StorePrice, error) {
	rows, err := s.repo.ListPricesForProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list prices for product")
	}
	if rows == nil {
		rows = []StorePrice{}
	}
	return rows, nil
}

func (s *service) GetAllPrices(ctx context.Context) ([]StorePrice, error) {
	rows, err := s.repo.ListAllPrices(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list prices")
	}
	return rows, nil
}

func (s *service) GetStores(ctx context.Context) ([]Store, error) {
	rows, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}
	return rows, nil
}

func (s *service) GetStore(ctx context.Context, id string) (*Store, error) {
	store, err := s.repo.FindStoreByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	return store, nil
}
