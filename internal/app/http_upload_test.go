package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func uploadRequest(t *testing.T, filename, variant string, contents []byte, token string) *http.Request {
	t.Helper()
	body, contentType := multipartUpload(t, filename, variant, contents)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-banner", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("x-admin-token", token)
	}
	return req
}

func TestUploadBannerRequiresToken(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := uploadRequest(t, "hero.jpg", "desktop", []byte("jpeg-bytes"), "")
	rr := doRequest(t, server, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestUploadBannerDesktop(t *testing.T) {
	bs := &fakeBannerStore{}
	server := newTestServer(&fakeContentStore{}, bs, nil)

	req := uploadRequest(t, "hero.jpg", "desktop", []byte("jpeg-bytes"), testToken)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp)
	}
	if resp["key"] != "banners/hero-desktop.jpg" {
		t.Errorf("unexpected key: %v", resp["key"])
	}
	if resp["url"] != "https://cdn.example.com/banners/hero-desktop.jpg" {
		t.Errorf("unexpected url: %v", resp["url"])
	}

	if bs.key != "banners/hero-desktop.jpg" {
		t.Errorf("stored under wrong key: %q", bs.key)
	}
	if !bytes.Equal(bs.body, []byte("jpeg-bytes")) {
		t.Errorf("stored wrong bytes: %q", bs.body)
	}
}

func TestUploadBannerMobileKey(t *testing.T) {
	bs := &fakeBannerStore{}
	server := newTestServer(&fakeContentStore{}, bs, nil)

	req := uploadRequest(t, "hero.jpg", "mobile", []byte("x"), testToken)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if bs.key != "banners/hero-mobile.jpg" {
		t.Errorf("stored under wrong key: %q", bs.key)
	}
}

func TestUploadBannerInvalidVariant(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := uploadRequest(t, "hero.jpg", "tablet", []byte("x"), testToken)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp["code"] != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %v", resp["code"])
	}
}

func TestUploadBannerMissingFile(t *testing.T) {
	server := newTestServer(&fakeContentStore{}, &fakeBannerStore{}, nil)

	req := uploadRequest(t, "", "desktop", nil, testToken)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", rr.Code)
	}
}

func TestUploadBannerStorageFailure(t *testing.T) {
	bs := &fakeBannerStore{err: errors.New("bucket unreachable")}
	server := newTestServer(&fakeContentStore{}, bs, nil)

	req := uploadRequest(t, "hero.jpg", "desktop", []byte("x"), testToken)
	rr := doRequest(t, server, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp["code"] != "PERSISTENCE_FAILURE" {
		t.Errorf("expected PERSISTENCE_FAILURE, got %v", resp["code"])
	}
}
