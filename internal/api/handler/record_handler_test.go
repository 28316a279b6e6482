package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/api/middleware"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

type stubRecordService struct {
	records map[string]*domain.Supplier

	softDeleted []string
	hardDeleted []string
	restored    []string
	lastActor   string
}

func newStubRecordService() *stubRecordService {
	return &stubRecordService{records: make(map[string]*domain.Supplier)}
}

func (s *stubRecordService) List(_ context.Context, includeDeleted bool) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, rec := range s.records {
		if !includeDeleted && !rec.Active() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *stubRecordService) Get(_ context.Context, id string) (*domain.Supplier, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (s *stubRecordService) Create(_ context.Context, rec *domain.Supplier, actor string) (*domain.Supplier, error) {
	if rec.ID == "" {
		rec.ID = "generated-id"
	}
	s.records[rec.ID] = rec
	s.lastActor = actor
	return rec, nil
}

func (s *stubRecordService) Update(_ context.Context, id, actor string, apply func(*domain.Supplier) error) (*domain.Supplier, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := apply(rec); err != nil {
		return nil, err
	}
	rec.ID = id
	s.lastActor = actor
	return rec, nil
}

func (s *stubRecordService) SoftDelete(_ context.Context, id, actor string) error {
	s.softDeleted = append(s.softDeleted, id)
	s.lastActor = actor
	return nil
}

func (s *stubRecordService) Restore(_ context.Context, id, actor string) error {
	s.restored = append(s.restored, id)
	s.lastActor = actor
	return nil
}

func (s *stubRecordService) HardDelete(_ context.Context, id, actor string) error {
	s.hardDeleted = append(s.hardDeleted, id)
	s.lastActor = actor
	return nil
}

func newSupplierHandler(svc *stubRecordService) *RecordHandler[*domain.Supplier] {
	return NewRecordHandler[*domain.Supplier](svc, func() *domain.Supplier { return &domain.Supplier{} })
}

func recordContext(t *testing.T, method, target, body string, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		middleware.SetPrincipal(c, principal)
	}
	return c, rec
}

func TestRecordHandler_Create(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	principal := &domain.Principal{ID: "u1", Name: "Marko", Role: domain.RoleEditor}
	c, rec := recordContext(t, http.MethodPost, "/suppliers", `{"name":"Putnik"}`, principal)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastActor != "Marko" {
		t.Fatalf("actor should come from the principal, got %q", svc.lastActor)
	}

	var resp recordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
}

func TestRecordHandler_Create_ValidationFailure(t *testing.T) {
	h := newSupplierHandler(newStubRecordService())
	c, rec := recordContext(t, http.MethodPost, "/suppliers", `{"email":"x@y.rs"}`, nil)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing name should be 400, got %d", rec.Code)
	}
}

func TestRecordHandler_Update_OverlaysFields(t *testing.T) {
	svc := newStubRecordService()
	svc.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik", Email: "old@putnik.rs", Phone: "011-111"}
	h := newSupplierHandler(svc)

	c, rec := recordContext(t, http.MethodPut, "/suppliers", `{"id":"sup-1","name":"Putnik","email":"new@putnik.rs"}`, nil)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	stored := svc.records["sup-1"]
	if stored.Email != "new@putnik.rs" {
		t.Fatalf("supplied field not applied: %s", stored.Email)
	}
	if stored.Phone != "011-111" {
		t.Fatalf("omitted field must keep its stored value, got %q", stored.Phone)
	}
}

func TestRecordHandler_Update_RequiresID(t *testing.T) {
	h := newSupplierHandler(newStubRecordService())
	c, rec := recordContext(t, http.MethodPut, "/suppliers", `{"name":"Putnik"}`, nil)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing id should be 400, got %d", rec.Code)
	}
}

func TestRecordHandler_Update_InvalidPayloadIsBadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"validation failure": `{"id":"sup-1","name":""}`,
		"wrong field type":   `{"id":"sup-1","name":{}}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newStubRecordService()
			svc.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
			h := newSupplierHandler(svc)

			c, _ := recordContext(t, http.MethodPut, "/suppliers", body, nil)
			err := h.Update(c)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusBadRequest {
				t.Fatalf("bad update payload should be 400, got %d", he.Code)
			}
		})
	}
}

func TestRecordHandler_Delete_SoftByDefault(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	principal := &domain.Principal{ID: "u1", Name: "Marko", Role: domain.RoleEditor}
	c, rec := recordContext(t, http.MethodDelete, "/suppliers", `{"id":"sup-1"}`, principal)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.softDeleted) != 1 || svc.softDeleted[0] != "sup-1" {
		t.Fatalf("expected soft delete of sup-1, got %v", svc.softDeleted)
	}
	if len(svc.hardDeleted) != 0 {
		t.Fatalf("hard delete must not run without the flag")
	}
}

func TestRecordHandler_Delete_HardRequiresAdmin(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	editor := &domain.Principal{ID: "u1", Name: "Marko", Role: domain.RoleEditor}
	c, _ := recordContext(t, http.MethodDelete, "/suppliers", `{"id":"sup-1","hardDelete":true}`, editor)

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("editor hard delete should be 403, got %v", err)
	}
	if len(svc.hardDeleted) != 0 || len(svc.softDeleted) != 0 {
		t.Fatalf("forbidden request must not mutate anything")
	}
}

func TestRecordHandler_Delete_HardAsAdmin(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	admin := &domain.Principal{ID: "u1", Name: "Ана", Role: domain.RoleAdmin}
	c, rec := recordContext(t, http.MethodDelete, "/suppliers", `{"id":"sup-1","hardDelete":true}`, admin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.hardDeleted) != 1 || svc.hardDeleted[0] != "sup-1" {
		t.Fatalf("expected hard delete of sup-1, got %v", svc.hardDeleted)
	}
}

func TestRecordHandler_Delete_IgnoresClientSuppliedUser(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	principal := &domain.Principal{ID: "u1", Name: "Marko", Role: domain.RoleEditor}
	c, _ := recordContext(t, http.MethodDelete, "/suppliers", `{"id":"sup-1","user":"Somebody Else"}`, principal)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if svc.lastActor != "Marko" {
		t.Fatalf("actor must come from the session, got %q", svc.lastActor)
	}
}

func TestRecordHandler_Restore(t *testing.T) {
	svc := newStubRecordService()
	h := newSupplierHandler(svc)

	c, rec := recordContext(t, http.MethodPatch, "/suppliers", `{"id":"sup-1"}`, nil)
	if err := h.Restore(c); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.restored) != 1 || svc.restored[0] != "sup-1" {
		t.Fatalf("expected restore of sup-1, got %v", svc.restored)
	}
}

func TestRecordHandler_List_ShowDeleted(t *testing.T) {
	svc := newStubRecordService()
	active := &domain.Supplier{ID: "a", Name: "Aktivan"}
	deleted := &domain.Supplier{ID: "d", Name: "Obrisan"}
	deleted.Deleted = true
	svc.records["a"] = active
	svc.records["d"] = deleted
	h := newSupplierHandler(svc)

	c, rec := recordContext(t, http.MethodGet, "/suppliers", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var out []*domain.Supplier
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("default listing should hide soft-deleted records, got %v", out)
	}

	c, rec = recordContext(t, http.MethodGet, "/suppliers?showDeleted=true", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	out = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("showDeleted listing should include both records, got %d", len(out))
	}
}
