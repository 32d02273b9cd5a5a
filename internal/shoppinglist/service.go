package shoppinglist

import (
	"context"
	"fmt"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/internal/catalog"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/shopspring/decimal"
)

type productChecker interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

type basketEstimator interface {
	EstimateBasket(ctx context.Context, items []pricing.Item) (decimal.Decimal, error)
}

// Service drives the list lifecycle. Reads return nil on a miss; mutations
// on a missing list return a NotFound coded error, and illegal lifecycle
// moves return a StateConflict one. Every successful mutation is persisted
// before it returns.
type Service interface {
	Draft(ctx context.Context) (*List, error)
	Get(ctx context.Context, id string) (*List, error)
	List(ctx context.Context) ([]List, error)
	GetValidated(ctx context.Context) (*List, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, listID, productID string) (*List, error)
	RemoveItem(ctx context.Context, listID, itemID string) (*List, error)
	SetQuantity(ctx context.Context, listID, itemID string, quantity int) (*List, error)
	SetPriority(ctx context.Context, listID, itemID string, priority enums.Priority) (*List, error)
	SetNotes(ctx context.Context, listID, itemID, notes string) (*List, error)
	MarkItemScanned(ctx context.Context, listID, productID string, at time.Time) (*List, error)

	Validate(ctx context.Context, listID string) (*List, error)
	Start(ctx context.Context, listID string) (*List, error)
	Complete(ctx context.Context, listID string, totalActual decimal.Decimal) (*List, error)
}

type service struct {
	repo      Repository
	products  productChecker
	estimator basketEstimator
	now       func() time.Time
}

func NewService(repo Repository, products productChecker, estimator basketEstimator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shoppinglist: repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("shoppinglist: catalog service is required")
	}
	if estimator == nil {
		return nil, fmt.Errorf("shoppinglist: pricing service is required")
	}
	return &service{
		repo:      repo,
		products:  products,
		estimator: estimator,
		now:       time.Now,
	}, nil
}

// Draft returns the single working draft, creating it when none exists.
func (s *service) Draft(ctx context.Context) (*List, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].Status == enums.ListStatusDraft {
			return &lists[i], nil
		}
	}

	draft := NewList("Ma liste de courses", s.now())
	lists = append(lists, *draft)
	if err := s.save(ctx, lists); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *service) Get(ctx context.Context, id string) (*List, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].ID == id {
			return &lists[i], nil
		}
	}
	return nil, nil
}

func (s *service) List(ctx context.Context) ([]List, error) {
	return s.load(ctx)
}

// GetValidated returns the list waiting for, or in the middle of, a store
// run. Validated lists win over in-progress ones, matching the order the
// store-run screen picks them up.
func (s *service) GetValidated(ctx context.Context) (*List, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].Status == enums.ListStatusValidated {
			return &lists[i], nil
		}
	}
	for i := range lists {
		if lists[i].Status == enums.ListStatusInProgress {
			return &lists[i], nil
		}
	}
	return nil, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	lists, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range lists {
		if lists[i].ID == id {
			lists = append(lists[:i], lists[i+1:]...)
			return s.save(ctx, lists)
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
}

// AddItem puts one more of the product on the draft. A product already on
// the list gets its quantity bumped instead of a second line.
func (s *service) AddItem(ctx context.Context, listID, productID string) (*List, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	return s.mutateDraft(ctx, listID, func(list *List) error {
		if i := list.FindItemByProduct(productID); i >= 0 {
			list.Items[i].Quantity++
			return nil
		}
		list.Items = append(list.Items, NewItem(productID, s.now()))
		return nil
	})
}

func (s *service) RemoveItem(ctx context.Context, listID, itemID string) (*List, error) {
	return s.mutateDraft(ctx, listID, func(list *List) error {
		i := list.FindItem(itemID)
		if i < 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		list.RemoveItem(i)
		return nil
	})
}

// SetQuantity updates a line; zero or less removes it.
func (s *service) SetQuantity(ctx context.Context, listID, itemID string, quantity int) (*List, error) {
	return s.mutateDraft(ctx, listID, func(list *List) error {
		i := list.FindItem(itemID)
		if i < 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		if quantity <= 0 {
			list.RemoveItem(i)
			return nil
		}
		list.Items[i].Quantity = quantity
		return nil
	})
}

func (s *service) SetPriority(ctx context.Context, listID, itemID string, priority enums.Priority) (*List, error) {
	if !priority.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid priority")
	}
	return s.mutateDraft(ctx, listID, func(list *List) error {
		i := list.FindItem(itemID)
		if i < 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		list.Items[i].Priority = priority
		return nil
	})
}

func (s *service) SetNotes(ctx context.Context, listID, itemID, notes string) (*List, error) {
	return s.mutateDraft(ctx, listID, func(list *List) error {
		i := list.FindItem(itemID)
		if i < 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		list.Items[i].Notes = notes
		return nil
	})
}

// MarkItemScanned ticks off the line holding the product during a store run.
// Lines not on the list are ignored: scanning something off-list is allowed,
// it just has nothing to tick.
func (s *service) MarkItemScanned(ctx context.Context, listID, productID string, at time.Time) (*List, error) {
	return s.mutate(ctx, listID, func(list *List) error {
		if list.Status != enums.ListStatusInProgress {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "list is not in progress")
		}
		if i := list.FindItemByProduct(productID); i >= 0 {
			at := at.UTC()
			list.Items[i].Scanned = true
			list.Items[i].ScannedAt = &at
		}
		return nil
	})
}

// Validate freezes the draft for shopping. An empty draft is rejected and
// nothing is written.
func (s *service) Validate(ctx context.Context, listID string) (*List, error) {
	return s.mutate(ctx, listID, func(list *List) error {
		if list.Status != enums.ListStatusDraft {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only a draft can be validated")
		}
		if len(list.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot validate an empty list")
		}

		basket := make([]pricing.Item, 0, len(list.Items))
		for _, item := range list.Items {
			basket = append(basket, pricing.Item{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		total, err := s.estimator.EstimateBasket(ctx, basket)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		list.Status = enums.ListStatusValidated
		list.ValidatedAt = &now
		list.TotalEstimated = total
		return nil
	})
}

func (s *service) Start(ctx context.Context, listID string) (*List, error) {
	return s.mutate(ctx, listID, func(list *List) error {
		if !list.Status.CanTransitionTo(enums.ListStatusInProgress) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only a validated list can be started")
		}
		list.Status = enums.ListStatusInProgress
		return nil
	})
}

func (s *service) Complete(ctx context.Context, listID string, totalActual decimal.Decimal) (*List, error) {
	return s.mutate(ctx, listID, func(list *List) error {
		if !list.Status.CanTransitionTo(enums.ListStatusCompleted) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "only a list in progress can be completed")
		}
		now := s.now().UTC()
		list.Status = enums.ListStatusCompleted
		list.CompletedAt = &now
		list.TotalActual = &totalActual
		return nil
	})
}

// mutate loads the collection, applies fn to the target list and saves the
// whole collection back. fn returning an error aborts without a write.
func (s *service) mutate(ctx context.Context, listID string, fn func(*List) error) (*List, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		if err := fn(&lists[i]); err != nil {
			return nil, err
		}
		if err := s.save(ctx, lists); err != nil {
			return nil, err
		}
		return &lists[i], nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
}

func (s *service) mutateDraft(ctx context.Context, listID string, fn func(*List) error) (*List, error) {
	return s.mutate(ctx, listID, func(list *List) error {
		if list.Status != enums.ListStatusDraft {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "list is no longer editable")
		}
		return fn(list)
	})
}

func (s *service) load(ctx context.Context) ([]List, error) {
	lists, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shopping lists")
	}
	return lists, nil
}

func (s *service) save(ctx context.Context, lists []List) error {
	if err := s.repo.SaveAll(ctx, lists); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save shopping lists")
	}
	return nil
}
