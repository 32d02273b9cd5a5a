package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/internal/shoppinglist"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/enums"
	pkgerrors "github.com/JonathanI21/Courses-solidaires-2/pkg/errors"
)

func draftFixture() *shoppinglist.List {
	list := shoppinglist.NewList("Ma liste de courses", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	return list
}

func TestGetDraftListSuccess(t *testing.T) {
	handler := GetDraftList(&stubListService{list: draftFixture()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/draft", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data shoppinglist.List `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.ListStatusDraft {
		t.Fatalf("expected draft got %s", envelope.Data.Status)
	}
	if envelope.Data.Name != "Ma liste de courses" {
		t.Fatalf("unexpected name %q", envelope.Data.Name)
	}
}

func TestGetListNotFound(t *testing.T) {
	handler := GetList(&stubListService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/missing", nil)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestAddListItemCreated(t *testing.T) {
	list := draftFixture()
	list.Items = append(list.Items, shoppinglist.NewItem("prod_001", time.Now()))
	handler := AddListItem(&stubListService{list: list}, nil)

	body := bytes.NewBufferString(`{"product_id":"prod_001"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/"+list.ID+"/items", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", list.ID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	var envelope struct {
		Data shoppinglist.List `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("expected 1 item got %d", len(envelope.Data.Items))
	}
}

func TestAddListItemMissingProduct(t *testing.T) {
	handler := AddListItem(&stubListService{}, nil)

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/list_1/items", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
}

func TestAddListItemUnknownProduct(t *testing.T) {
	handler := AddListItem(&stubListService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}, nil)

	body := bytes.NewBufferString(`{"product_id":"prod_999"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/list_1/items", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestUpdateListItemEmptyPatch(t *testing.T) {
	handler := UpdateListItem(&stubListService{}, nil)

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/lists/list_1/items/item_1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdateListItemInvalidPriority(t *testing.T) {
	handler := UpdateListItem(&stubListService{}, nil)

	body := bytes.NewBufferString(`{"priority":"urgent"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/lists/list_1/items/item_1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdateListItemQuantity(t *testing.T) {
	handler := UpdateListItem(&stubListService{list: draftFixture()}, nil)

	body := bytes.NewBufferString(`{"quantity":3}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/lists/list_1/items/item_1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestValidateListEmptyList(t *testing.T) {
	handler := ValidateList(&stubListService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "cannot validate an empty list")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/list_1/validate", nil)
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message != "cannot validate an empty list" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestCompleteListRejectsNegativeTotal(t *testing.T) {
	svc := &stubListService{list: draftFixture()}
	handler := CompleteList(svc, nil)

	body := bytes.NewBufferString(`{"total_actual":"-4.20"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/list_1/complete", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "list_1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCompleteListSuccess(t *testing.T) {
	list := draftFixture()
	list.Status = enums.ListStatusCompleted
	handler := CompleteList(&stubListService{list: list}, nil)

	body := bytes.NewBufferString(`{"total_actual":"18.45"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists/"+list.ID+"/complete", body)
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", list.ID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data shoppinglist.List `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.ListStatusCompleted {
		t.Fatalf("expected completed got %s", envelope.Data.Status)
	}
}
