package refdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/pkg/pagination"
)

func doRequest(t *testing.T, h echo.HandlerFunc, target, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
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

func TestHandlerGetDoctor(t *testing.T) {
	svc, doctorID, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h.GetDoctor, "/doctors/"+doctorID.String(), doctorID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var d Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Name != "Dra. Helena Souza" {
		t.Errorf("name = %q", d.Name)
	}

	rec = doRequest(t, h.GetDoctor, "/doctors/nope", "nope")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}

	unknown := uuid.New().String()
	rec = doRequest(t, h.GetDoctor, "/doctors/"+unknown, unknown)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}

func TestHandlerListLocations(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h.ListLocations, "/locations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
}
