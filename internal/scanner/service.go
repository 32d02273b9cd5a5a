package scanner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/config"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/metrics"
	"github.com/shopspring/decimal"
)

type catalogReader interface {
	GetProductByBarcode(ctx context.Context, barcode string) (*catalog.Product, error)
	SearchProducts(ctx context.Context, query string) ([]catalog.Product, error)
	GetPricesForProduct(ctx context.Context, productID string) ([]catalog.StorePrice, error)
}

type comparator interface {
	Compare(ctx context.Context, items []pricing.Item) ([]pricing.StoreComparison, error)
}

type listService interface {
	Get(ctx context.Context, id string) (*shoppinglist.List, error)
	Start(ctx context.Context, listID string) (*shoppinglist.List, error)
	MarkItemScanned(ctx context.Context, listID, productID string, at time.Time) (*shoppinglist.List, error)
	Complete(ctx context.Context, listID string, totalActual decimal.Decimal) (*shoppinglist.List, error)
}

// Service runs scan sessions. Sessions live in memory only; the durable
// outcome of a run is written to the shopping list on Complete.
type Service interface {
	// StartSession opens a run against a validated list, moving it to
	// in_progress. An in-progress list can be picked back up.
	StartSession(ctx context.Context, listID string) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	// ScanBarcode resolves the barcode and puts the product in the cart.
	ScanBarcode(ctx context.Context, sessionID, barcode string) (*Session, error)
	// SimulateScan waits the scanner's randomized delay, then scans a random
	// catalog product. Cancelling the context aborts the pending scan.
	SimulateScan(ctx context.Context, sessionID string) (*Session, error)
	// StopSession discards the session. The list keeps its state.
	StopSession(ctx context.Context, sessionID string) error
	// Complete closes the run: the cart total becomes the list's actual
	// total and the session is discarded.
	Complete(ctx context.Context, sessionID string) (*shoppinglist.List, error)
}

type service struct {
	catalog  catalogReader
	pricing  comparator
	lists    listService
	metrics  *metrics.ScannerMetrics
	cfg      config.ScannerConfig
	sessions *sessionStore
	mu       sync.Mutex

	now   func() time.Time
	delay func() time.Duration
	pick  func(n int) int
}

func NewService(catalogSvc catalogReader, pricingSvc comparator, lists listService, scannerMetrics *metrics.ScannerMetrics, cfg config.ScannerConfig) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("scanner: catalog service is required")
	}
	if pricingSvc == nil {
		return nil, fmt.Errorf("scanner: pricing service is required")
	}
	if lists == nil {
		return nil, fmt.Errorf("scanner: list service is required")
	}
	s := &service{
		catalog:  catalogSvc,
		pricing:  pricingSvc,
		lists:    lists,
		metrics:  scannerMetrics,
		cfg:      cfg,
		sessions: newSessionStore(),
		now:      time.Now,
		pick:     rand.IntN,
	}
	s.delay = func() time.Duration {
		window := cfg.MaxDelay - cfg.MinDelay
		if window <= 0 {
			return cfg.MinDelay
		}
		return cfg.MinDelay + time.Duration(rand.Int64N(int64(window)))
	}
	return s, nil
}

func (s *service) StartSession(ctx context.Context, listID string) (*Session, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
	}

	switch list.Status {
	case enums.ListStatusValidated:
		if _, err := s.lists.Start(ctx, listID); err != nil {
			return nil, err
		}
	case enums.ListStatusInProgress:
		// Resuming an interrupted run.
	default:
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "list is not ready for scanning")
	}

	session := newSession(listID, s.now(), s.cfg.SessionTTL)
	s.sessions.put(session)
	s.metrics.IncSession("started")
	return snapshot(session), nil
}

func (s *service) GetSession(_ context.Context, id string) (*Session, error) {
	session := s.sessions.get(id, s.now())
	if session == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(session), nil
}

func (s *service) ScanBarcode(ctx context.Context, sessionID, barcode string) (*Session, error) {
	session := s.sessions.get(sessionID, s.now())
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}

	product, err := s.catalog.GetProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		s.metrics.IncScan("unknown")
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "produit non reconnu")
	}

	return s.addProduct(ctx, session, product)
}

func (s *service) SimulateScan(ctx context.Context, sessionID string) (*Session, error) {
	session := s.sessions.get(sessionID, s.now())
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}

	delay := s.delay()
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.metrics.IncScan("cancelled")
		return nil, pkgerrors.Wrap(pkgerrors.CodeStateConflict, ctx.Err(), "scan cancelled")
	case <-timer.C:
	}
	s.metrics.ObserveScanDelay("simulated", delay)

	products, err := s.catalog.SearchProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog is empty")
	}
	product := products[s.pick(len(products))]

	return s.addProduct(ctx, session, &product)
}

func (s *service) StopSession(_ context.Context, sessionID string) error {
	session := s.sessions.get(sessionID, s.now())
	if session == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	s.sessions.delete(sessionID)
	s.metrics.IncSession("stopped")
	return nil
}

func (s *service) Complete(ctx context.Context, sessionID string) (*shoppinglist.List, error) {
	session := s.sessions.get(sessionID, s.now())
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}

	list, err := s.lists.Complete(ctx, session.ListID, session.Total)
	if err != nil {
		return nil, err
	}
	s.sessions.delete(sessionID)
	s.metrics.IncSession("completed")
	return list, nil
}

func (s *service) addProduct(ctx context.Context, session *Session, product *catalog.Product) (*Session, error) {
	now := s.now().UTC()

	rows, err := s.catalog.GetPricesForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	unit := decimal.Zero
	if best := pricing.BestPrice(rows); best != nil {
		unit = pricing.PromotionalPrice(best.Price, best.Promotion)
	}

	list, err := s.lists.MarkItemScanned(ctx, session.ListID, product.ID, now)
	if err != nil {
		return nil, err
	}
	onList := list.FindItemByProduct(product.ID) >= 0

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := session.findItem(product.ID); i >= 0 {
		session.Items[i].Quantity++
		session.Items[i].LineTotal = session.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(session.Items[i].Quantity)))
		session.Items[i].ScannedAt = now
	} else {
		session.Items = append(session.Items, ScannedItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Quantity:  1,
			UnitPrice: unit,
			LineTotal: unit,
			OnList:    onList,
			ScannedAt: now,
		})
	}

	session.Total = decimal.Zero
	for _, item := range session.Items {
		session.Total = session.Total.Add(item.LineTotal)
	}
	if err := s.refreshSavings(ctx, session); err != nil {
		return nil, err
	}

	s.metrics.IncScan("matched")
	return snapshot(session), nil
}

// refreshSavings measures the cart against the most expensive store: what the
// same basket would have cost there, minus what the scanner has rung up.
func (s *service) refreshSavings(ctx context.Context, session *Session) error {
	if len(session.Items) == 0 {
		session.Savings = decimal.Zero
		return nil
	}

	basket := make([]pricing.Item, 0, len(session.Items))
	for _, item := range session.Items {
		basket = append(basket, pricing.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	comparisons, err := s.pricing.Compare(ctx, basket)
	if err != nil {
		return err
	}
	if len(comparisons) == 0 {
		session.Savings = decimal.Zero
		return nil
	}

	max := comparisons[len(comparisons)-1].Total
	savings := max.Sub(session.Total)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	session.Savings = savings
	return nil
}

func snapshot(session *Session) *Session {
	out := *session
	out.Items = append([]ScannedItem(nil), session.Items...)
	if out.Items == nil {
		out.Items = []ScannedItem{}
	}
	return &out
}
