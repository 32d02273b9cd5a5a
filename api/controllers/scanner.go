package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonathanI21/Courses-solidaires-2/api/responses"
	"github.com/JonathanI21/Courses-solidaires-2/api/validators"
	"github.com/JonathanI21/Courses-solidaires-2/internal/scanner"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
)

type startSessionRequest struct {
	ListID string `json:"list_id" validate:"required"`
}

// StartScanSession opens a store run against a validated list.
func StartScanSession(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		var payload startSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.StartSession(r.Context(), payload.ListID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithSessionID(r.Context(), session.ID)
			logg.Info(ctx, "scan session started")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, session)
	}
}

// GetScanSession serves the live cart of a session.
func GetScanSession(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		session, err := svc.GetSession(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if session == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session not found"))
			return
		}
		responses.WriteSuccess(w, session)
	}
}

type scanRequest struct {
	Barcode string `json:"barcode" validate:"required,len=13,numeric"`
}

// Scan rings up one barcode.
func Scan(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		var payload scanRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.ScanBarcode(r.Context(), chi.URLParam(r, "id"), payload.Barcode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// SimulateScan waits out the scanner's delay then rings up a random catalog
// product. Closing the request aborts the pending scan.
func SimulateScan(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		session, err := svc.SimulateScan(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// StopScanSession discards a session without closing the run.
func StopScanSession(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		if err := svc.StopSession(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "stopped"})
	}
}

// CompleteScanSession closes the run and writes the totals to the list.
func CompleteScanSession(svc scanner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scanner service unavailable"))
			return
		}

		list, err := svc.Complete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
