package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
	"github.com/OdairGSoares/care-idosos-sub000/pkg/pagination"
)

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, userID uuid.UUID, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != uuid.Nil {
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHandlerCreateAndList(t *testing.T) {
	svc, user := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h.create, http.MethodPost, "/health-records",
		`{"type":"pressure","value":"120/80","unit":"mmHg","date":"2026-06-10","time":"08:00"}`, user, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h.list, http.MethodGet, "/health-records?type=pressure", "", user, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}

	rec = doRequest(t, h.list, http.MethodGet, "/health-records?type=steps", "", user, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown type status = %d, want 400", rec.Code)
	}
}

func TestHandlerGetAndDelete(t *testing.T) {
	svc, user := newTestService()
	h := NewHandler(svc)
	seeded := seedRecord(t, svc, user, TypeGlucose, "2026-06-10", "08:00")

	rec := doRequest(t, h.get, http.MethodGet, "/health-records/"+seeded.ID.String(), "", user, seeded.ID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doRequest(t, h.delete, http.MethodDelete, "/health-records/"+seeded.ID.String(), "", uuid.New(), seeded.ID.String())
	if rec.Code != http.StatusNotFound {
		t.Errorf("stranger delete status = %d, want 404", rec.Code)
	}

	rec = doRequest(t, h.delete, http.MethodDelete, "/health-records/"+seeded.ID.String(), "", user, seeded.ID.String())
	if rec.Code != http.StatusNoContent {
		t.Errorf("owner delete status = %d, want 204", rec.Code)
	}
}
