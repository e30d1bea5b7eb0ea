package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHandler() *Handler {
	return New(nil, nil, slog.Default(), Config{})
}

func TestCheckout_RequiresStripeConfig(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/billing/checkout", strings.NewReader(`{"tier":"starter"}`))
	req.Header.Set("X-Business-Id", "biz-1")
	rw := httptest.NewRecorder()
	h.CheckoutStub(rw, req)
	if rw.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 without a stripe key, got %d", rw.Code)
	}
}

func TestCancelSubscription_RequiresStripeConfig(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/billing/subscription/cancel", strings.NewReader(`{}`))
	req.Header.Set("X-Business-Id", "biz-1")
	rw := httptest.NewRecorder()
	h.CancelSubscription(rw, req)
	if rw.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 without a stripe key, got %d", rw.Code)
	}
}

func TestAckCheckoutReturn_RejectsBadResult(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/billing/checkout/session/ack",
		strings.NewReader(`{"session_id":"cs_1","state":"tok","result":"maybe"}`))
	rw := httptest.NewRecorder()
	h.AckCheckoutReturn(rw, req)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid result, got %d", rw.Code)
	}
}

func TestWithQueryParam(t *testing.T) {
	if got := withQueryParam("https://shop.example/return", "state", "tok"); got != "https://shop.example/return?state=tok" {
		t.Fatalf("unexpected url: %s", got)
	}
	if got := withQueryParam("https://shop.example/return?x=1", "state", "tok"); got != "https://shop.example/return?x=1&state=tok" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestNewReturnToken_Unique(t *testing.T) {
	a := newReturnToken()
	b := newReturnToken()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", a, b)
	}
}
