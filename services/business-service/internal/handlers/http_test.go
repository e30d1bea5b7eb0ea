package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func newTestHandler() *Handler {
	return New(nil, nil, slog.Default())
}

func TestUpdateProfile_RejectsStepNotDividing60(t *testing.T) {
	h := newTestHandler()

	for _, step := range []int{7, 25, 45, 90, -5} {
		body := strings.NewReader(`{"name":"Salon","slot_step_minutes":` + strconv.Itoa(step) + `}`)
		req := httptest.NewRequest(http.MethodPut, "http://example.com/api/v1/business/profile", body)
		req.Header.Set("X-Business-Id", "biz-1")
		rw := httptest.NewRecorder()
		h.UpdateProfile(rw, req)
		if rw.Code != http.StatusBadRequest {
			t.Fatalf("step %d: expected 400, got %d", step, rw.Code)
		}
	}
}

func TestUpdateProfile_RequiresBusinessHeader(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "http://example.com/api/v1/business/profile", strings.NewReader(`{}`))
	rw := httptest.NewRecorder()
	h.UpdateProfile(rw, req)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
}

func TestUpsertWorkingHours_Validation(t *testing.T) {
	h := newTestHandler()

	cases := []struct {
		name string
		body string
	}{
		{"weekday out of range", `{"weekday":7,"is_open":true,"open_minute":540,"close_minute":1080}`},
		{"negative weekday", `{"weekday":-1,"is_open":false}`},
		{"open after close", `{"weekday":1,"is_open":true,"open_minute":1080,"close_minute":540}`},
		{"open equals close", `{"weekday":1,"is_open":true,"open_minute":540,"close_minute":540}`},
		{"close past midnight", `{"weekday":1,"is_open":true,"open_minute":540,"close_minute":1500}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPut, "http://example.com/api/v1/business/working-hours", strings.NewReader(tc.body))
		req.Header.Set("X-Business-Id", "biz-1")
		rw := httptest.NewRecorder()
		h.UpsertWorkingHours(rw, req)
		if rw.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rw.Code)
		}
	}
}

func TestCreateClosedDate_RejectsBadDate(t *testing.T) {
	h := newTestHandler()

	for _, date := range []string{"", "2026-13-01", "01/02/2026", "tomorrow"} {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/business/closed-dates", strings.NewReader(`{"date":"`+date+`"}`))
		req.Header.Set("X-Business-Id", "biz-1")
		rw := httptest.NewRecorder()
		h.CreateClosedDate(rw, req)
		if rw.Code != http.StatusBadRequest {
			t.Fatalf("date %q: expected 400, got %d", date, rw.Code)
		}
	}
}

func TestCreateService_RejectsBadDuration(t *testing.T) {
	h := newTestHandler()

	for _, body := range []string{
		`{"name":"Cut","duration_minutes":0}`,
		`{"name":"Cut","duration_minutes":-30}`,
		`{"name":"Cut","duration_minutes":600}`,
		`{"name":"","duration_minutes":30}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/business/services", strings.NewReader(body))
		req.Header.Set("X-Business-Id", "biz-1")
		rw := httptest.NewRecorder()
		h.CreateService(rw, req)
		if rw.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rw.Code)
		}
	}
}
