package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
)

func newTestHandler(t *testing.T) (*Handler, *fixture) {
	t.Helper()
	f := newFixture()
	h := NewHandler(f.svc)
	h.now = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	}
	return h, f
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target string, body string, userID uuid.UUID, params ...string) *httptest.ResponseRecorder {
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
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	err := h(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHandlerCreate(t *testing.T) {
	h, f := newTestHandler(t)
	body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`
	rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var d Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.DoctorName == "" {
		t.Error("expected resolved doctor name in response")
	}
}

func TestHandlerCreateConflict(t *testing.T) {
	h, f := newTestHandler(t)
	body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`
	if rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}
	rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, uuid.New())
	if rec.Code != http.StatusConflict {
		t.Errorf("second create status = %d, want 409", rec.Code)
	}
}

func TestHandlerCreateBadInput(t *testing.T) {
	h, f := newTestHandler(t)
	cases := []string{
		`{"doctorId":"not-a-uuid","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`,
		`{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-13-45","time":"14:30"}`,
		`not json`,
	}
	for _, body := range cases {
		rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandlerCreateUnknownDoctor(t *testing.T) {
	h, f := newTestHandler(t)
	body := `{"doctorId":"` + uuid.NewString() + `","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`
	rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown doctor status = %d, want 404", rec.Code)
	}
}

func TestHandlerUnauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doRequest(t, h.list, http.MethodGet, "/appointments", "", uuid.Nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerListFilter(t *testing.T) {
	h, f := newTestHandler(t)
	seed := func(date, tm string) {
		body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"` + date + `","time":"` + tm + `"}`
		if rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user); rec.Code != http.StatusCreated {
			t.Fatalf("seed %s %s: status %d", date, tm, rec.Code)
		}
	}
	seed("2026-06-14", "10:00")
	seed("2026-06-20", "10:00")

	for _, tc := range []struct {
		filter string
		want   int
	}{
		{"", 2},
		{"upcoming", 1},
		{"past", 1},
	} {
		rec := doRequest(t, h.list, http.MethodGet, "/appointments?filter="+tc.filter, "", f.user)
		if rec.Code != http.StatusOK {
			t.Fatalf("filter %q status = %d", tc.filter, rec.Code)
		}
		var items []*Detail
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(items) != tc.want {
			t.Errorf("filter %q returned %d items, want %d", tc.filter, len(items), tc.want)
		}
	}

	rec := doRequest(t, h.list, http.MethodGet, "/appointments?filter=bogus", "", f.user)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus filter status = %d, want 400", rec.Code)
	}
}

func TestHandlerNext(t *testing.T) {
	h, f := newTestHandler(t)
	rec := doRequest(t, h.next, http.MethodGet, "/appointments/next", "", f.user)
	if rec.Code != http.StatusNotFound {
		t.Errorf("empty next status = %d, want 404", rec.Code)
	}

	body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-06-20","time":"10:00"}`
	if rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user); rec.Code != http.StatusCreated {
		t.Fatalf("seed: status %d", rec.Code)
	}
	rec = doRequest(t, h.next, http.MethodGet, "/appointments/next", "", f.user)
	if rec.Code != http.StatusOK {
		t.Fatalf("next status = %d", rec.Code)
	}
	var d Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Date != "2026-06-20" {
		t.Errorf("next date = %s", d.Date)
	}
}

func TestHandlerConfirm(t *testing.T) {
	h, f := newTestHandler(t)
	body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`
	rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doRequest(t, h.confirm, http.MethodPut, "/appointments/confirmed/"+created.ID.String(), "", f.user, "id", created.ID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var confirmed Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !confirmed.Confirmed {
		t.Error("expected confirmed = true")
	}

	rec = doRequest(t, h.confirm, http.MethodPut, "/appointments/confirmed/"+created.ID.String(), `{"confirmed":false}`, f.user, "id", created.ID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("unconfirm status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if confirmed.Confirmed {
		t.Error("expected confirmed = false")
	}
}

func TestHandlerCancel(t *testing.T) {
	h, f := newTestHandler(t)
	body := `{"doctorId":"` + f.doctor.String() + `","locationId":"` + f.location.String() + `","date":"2026-09-15","time":"14:30"}`
	rec := doRequest(t, h.create, http.MethodPost, "/appointments", body, f.user)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created Detail
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doRequest(t, h.cancel, http.MethodDelete, "/appointments/"+created.ID.String(), "", uuid.New(), "id", created.ID.String())
	if rec.Code != http.StatusNotFound {
		t.Errorf("stranger cancel status = %d, want 404", rec.Code)
	}

	rec = doRequest(t, h.cancel, http.MethodDelete, "/appointments/"+created.ID.String(), "", f.user, "id", created.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("owner cancel status = %d, want 200", rec.Code)
	}

	rec = doRequest(t, h.get, http.MethodGet, "/appointments/"+created.ID.String(), "", f.user, "id", created.ID.String())
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after cancel status = %d, want 404", rec.Code)
	}
}

func TestHandlerBadID(t *testing.T) {
	h, f := newTestHandler(t)
	rec := doRequest(t, h.get, http.MethodGet, "/appointments/nope", "", f.user, "id", "nope")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
