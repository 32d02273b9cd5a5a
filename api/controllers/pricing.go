package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonathanI21/Courses-solidaires-2/api/responses"
	"github.com/JonathanI21/Courses-solidaires-2/api/validators"
	"github.com/JonathanI21/Courses-solidaires-2/internal/pricing"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
)

// GetBestOffer serves the cheapest available offer for a product.
func GetBestOffer(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		offer, err := svc.BestOfferFor(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if offer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no available offer"))
			return
		}
		responses.WriteSuccess(w, offer)
	}
}

type compareBasketRequest struct {
	Items []compareBasketItem `json:"items" validate:"required,min=1,dive"`
}

type compareBasketItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (r compareBasketRequest) toItems() []pricing.Item {
	items := make([]pricing.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, pricing.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}

// CompareBaskets prices a basket at every store, cheapest first.
func CompareBaskets(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		var payload compareBasketRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comparisons, err := svc.Compare(r.Context(), payload.toItems())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, comparisons)
	}
}
