package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonathanI21/Courses-solidaires-2/api/responses"
	"github.com/JonathanI21/Courses-solidaires-2/api/validators"
	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
	"github.com/shopspring/decimal"
)

// GetDraftList returns the working draft, creating one when none exists.
func GetDraftList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		draft, err := svc.Draft(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, draft)
	}
}

// ListLists returns every list, newest state included.
func ListLists(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		lists, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lists)
	}
}

// GetList serves one list.
func GetList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		list, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if list == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "list not found"))
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetValidatedList serves the list waiting for (or in) a store run.
func GetValidatedList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		list, err := svc.GetValidated(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if list == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no validated list"))
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// DeleteList removes a list outright.
func DeleteList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddListItem puts one more of a product on the draft.
func AddListItem(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.AddItem(r.Context(), chi.URLParam(r, "id"), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, list)
	}
}

type updateItemRequest struct {
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateListItem patches one line: quantity (zero removes it), priority
// and/or notes.
func UpdateListItem(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity == nil && payload.Priority == nil && payload.Notes == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update"))
			return
		}

		listID := chi.URLParam(r, "id")
		itemID := chi.URLParam(r, "itemID")

		var list *shoppinglist.List
		var err error
		if payload.Priority != nil {
			priority, perr := enums.ParsePriority(*payload.Priority)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, perr, "invalid priority"))
				return
			}
			if list, err = svc.SetPriority(r.Context(), listID, itemID, priority); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if payload.Notes != nil {
			if list, err = svc.SetNotes(r.Context(), listID, itemID, *payload.Notes); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if payload.Quantity != nil {
			if list, err = svc.SetQuantity(r.Context(), listID, itemID, *payload.Quantity); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, list)
	}
}

// RemoveListItem drops one line from the draft.
func RemoveListItem(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		list, err := svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ValidateList freezes the draft for shopping and prices it.
func ValidateList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		list, err := svc.Validate(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// StartList moves a validated list into its store run.
func StartList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		list, err := svc.Start(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

type completeListRequest struct {
	TotalActual string `json:"total_actual" validate:"required"`
}

// CompleteList closes a store run with the amount actually paid.
func CompleteList(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "list service unavailable"))
			return
		}

		var payload completeListRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		total, err := decimal.NewFromString(payload.TotalActual)
		if err != nil || total.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "total_actual must be a non-negative amount"))
			return
		}

		list, err := svc.Complete(r.Context(), chi.URLParam(r, "id"), total)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
