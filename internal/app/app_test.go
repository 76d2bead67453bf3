package app

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jyotish/api/internal/config"
	"jyotish/api/internal/content"
	"jyotish/api/internal/sheets"
)

const testToken = "test-admin-token"

// fakeContentStore implements store.ContentStore in memory.
type fakeContentStore struct {
	doc    *content.Document
	getErr error
	putErr error
	puts   int
}

func (f *fakeContentStore) Get(ctx context.Context) (content.Document, bool, error) {
	if f.getErr != nil {
		return content.Document{}, false, f.getErr
	}
	if f.doc == nil {
		return content.Document{}, false, nil
	}
	return *f.doc, true, nil
}

func (f *fakeContentStore) Put(ctx context.Context, doc content.Document) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.doc = &doc
	return nil
}

func (f *fakeContentStore) Ping(ctx context.Context) error { return nil }
func (f *fakeContentStore) Close() error                   { return nil }

// fakeBannerStore records the last PutBanner call.
type fakeBannerStore struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeBannerStore) PutBanner(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if f.err != nil {
		return f.err
	}
	data, _ := io.ReadAll(body)
	f.key = key
	f.contentType = contentType
	f.body = data
	return nil
}

type fakeSheetSource struct {
	tabs sheets.Tabs
	err  error
}

func (f *fakeSheetSource) FetchAll(ctx context.Context) (sheets.Tabs, error) {
	if f.err != nil {
		return sheets.Tabs{}, f.err
	}
	return f.tabs, nil
}

func configWithToken(token string) config.Config {
	return config.Config{
		AdminToken:      token,
		CDNBaseURL:      "https://cdn.example.com",
		LiveCacheMaxAge: 60,
	}
}

func newTestServer(cs *fakeContentStore, bs *fakeBannerStore, ss SheetSource) *HTTPServer {
	svc := New(configWithToken(testToken), cs, bs, ss)
	return NewHTTPServer(svc, "*")
}

func doRequest(t *testing.T, server *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	return rr
}

// multipartUpload builds a multipart body with the given file and
// variant fields. An empty filename omits the file part entirely.
func multipartUpload(t *testing.T, filename, variant string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(contents); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.WriteField("variant", variant); err != nil {
		t.Fatalf("write variant: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}
