package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jyotish/api/internal/content"
)

func TestGetConfigFallbackBeforeFirstSave(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var doc content.Document
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if doc.Currency != "INR" {
		t.Errorf("expected fallback currency INR, got %q", doc.Currency)
	}
	if doc.Banners.WhatsappNumber == "" {
		t.Error("expected fallback whatsapp number")
	}
	if len(doc.Services) == 0 {
		t.Error("expected fallback services")
	}

	if cache := rr.Header().Get("Cache-Control"); cache != "no-store" {
		t.Errorf("expected no-store, got %q", cache)
	}
	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS *, got %q", origin)
	}
}

func TestGetConfigReturnsStoredDocument(t *testing.T) {
	stored := content.Document{
		Currency: "INR",
		Banners:  content.Banners{HeroHeadline: "Stored Headline"},
		Services: []content.Service{{ID: "love", Name: "Love", Price: 351}},
	}
	server := newTestServer(&fakeContentStore{doc: &stored}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var doc content.Document
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if doc.Banners.HeroHeadline != "Stored Headline" {
		t.Errorf("expected stored document, got %+v", doc)
	}
}

func TestGetConfigStoreError(t *testing.T) {
	server := newTestServer(&fakeContentStore{getErr: errors.New("redis down")}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body["code"] != "PERSISTENCE_FAILURE" {
		t.Errorf("expected PERSISTENCE_FAILURE, got %v", body["code"])
	}
}

func TestOptionsPreflight(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/save", nil)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for OPTIONS, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("expected ok=true, got %v", body)
	}
	if methods := rr.Header().Get("Access-Control-Allow-Methods"); methods != "GET,POST,OPTIONS" {
		t.Errorf("unexpected allowed methods: %q", methods)
	}
	if headers := rr.Header().Get("Access-Control-Allow-Headers"); headers != "Content-Type, X-Admin-Token, X-Request-ID" {
		t.Errorf("unexpected allowed headers: %q", headers)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := doRequest(t, server, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("expected request id echoed, got %q", got)
	}
}
