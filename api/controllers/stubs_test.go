package controllers

import (
	"context"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	"github.com/JonathanI21/Courses-solidaires-2/internal/scanner"
	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	"github.com/shopspring/decimal"
)

type stubCatalogService struct {
	product  *catalog.Product
	withP    *catalog.ProductWithPrices
	page     *catalog.ProductListResult
	prices   []catalog.StorePrice
	stores   []catalog.Store
	store    *catalog.Store
	related  []catalog.Product
	err      error
	lastPage catalog.ProductListQuery
}

func (s *stubCatalogService) GetProduct(context.Context, string) (*catalog.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) GetProductByBarcode(context.Context, string) (*catalog.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) GetProductsByCategory(context.Context, string) ([]catalog.Product, error) {
	return s.related, s.err
}

func (s *stubCatalogService) SearchProducts(context.Context, string) ([]catalog.Product, error) {
	return nil, s.err
}

func (s *stubCatalogService) ListProducts(_ context.Context, query catalog.ProductListQuery) (*catalog.ProductListResult, error) {
	s.lastPage = query
	return s.page, s.err
}

func (s *stubCatalogService) GetProductWithPrices(context.Context, string) (*catalog.ProductWithPrices, error) {
	return s.withP, s.err
}

func (s *stubCatalogService) GetAllProductsWithPrices(context.Context) ([]catalog.ProductWithPrices, error) {
	return nil, s.err
}

func (s *stubCatalogService) GetPricesForProduct(context.Context, string) ([]catalog.StorePrice, error) {
	return s.prices, s.err
}

func (s *stubCatalogService) GetAllPrices(context.Context) ([]catalog.StorePrice, error) {
	return s.prices, s.err
}

func (s *stubCatalogService) GetStores(context.Context) ([]catalog.Store, error) {
	return s.stores, s.err
}

func (s *stubCatalogService) GetStore(context.Context, string) (*catalog.Store, error) {
	return s.store, s.err
}

type stubPricingService struct {
	offer       *pricing.BestOffer
	comparisons []pricing.StoreComparison
	err         error
	lastItems   []pricing.Item
}

func (s *stubPricingService) BestOfferFor(context.Context, string) (*pricing.BestOffer, error) {
	return s.offer, s.err
}

func (s *stubPricingService) Compare(_ context.Context, items []pricing.Item) ([]pricing.StoreComparison, error) {
	s.lastItems = items
	return s.comparisons, s.err
}

func (s *stubPricingService) EstimateBasket(context.Context, []pricing.Item) (decimal.Decimal, error) {
	return decimal.Zero, s.err
}

type stubListService struct {
	list  *shoppinglist.List
	lists []shoppinglist.List
	err   error
}

func (s *stubListService) Draft(context.Context) (*shoppinglist.List, error) { return s.list, s.err }

func (s *stubListService) Get(context.Context, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) List(context.Context) ([]shoppinglist.List, error) {
	return s.lists, s.err
}

func (s *stubListService) GetValidated(context.Context) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) Delete(context.Context, string) error { return s.err }

func (s *stubListService) AddItem(context.Context, string, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) RemoveItem(context.Context, string, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) SetQuantity(context.Context, string, string, int) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) SetPriority(context.Context, string, string, enums.Priority) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) SetNotes(context.Context, string, string, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) MarkItemScanned(context.Context, string, string, time.Time) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) Validate(context.Context, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) Start(context.Context, string) (*shoppinglist.List, error) {
	return s.list, s.err
}

func (s *stubListService) Complete(context.Context, string, decimal.Decimal) (*shoppinglist.List, error) {
	return s.list, s.err
}

type stubScannerService struct {
	session *scanner.Session
	list    *shoppinglist.List
	err     error
}

func (s *stubScannerService) StartSession(context.Context, string) (*scanner.Session, error) {
	return s.session, s.err
}

func (s *stubScannerService) GetSession(context.Context, string) (*scanner.Session, error) {
	return s.session, s.err
}

func (s *stubScannerService) ScanBarcode(context.Context, string, string) (*scanner.Session, error) {
	return s.session, s.err
}

func (s *stubScannerService) SimulateScan(context.Context, string) (*scanner.Session, error) {
	return s.session, s.err
}

func (s *stubScannerService) StopSession(context.Context, string) error { return s.err }

func (s *stubScannerService) Complete(context.Context, string) (*shoppinglist.List, error) {
	return s.list, s.err
}
