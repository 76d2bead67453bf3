package app

import (
	"context"
	"io"
	"net/http"
	"time"

	"jyotish/api/internal/config"
	"jyotish/api/internal/content"
	"jyotish/api/internal/objstore"
	"jyotish/api/internal/sheets"
	"jyotish/api/internal/store"
)

// SheetSource is the spreadsheet aggregate fetch, abstracted for
// tests.
type SheetSource interface {
	FetchAll(ctx context.Context) (sheets.Tabs, error)
}

// Service holds the request-independent collaborators. There is no
// shared mutable state; concurrent saves are last-writer-wins.
type Service struct {
	cfg     config.Config
	store   store.ContentStore
	banners objstore.BannerStore
	sheets  SheetSource
}

func New(cfg config.Config, contentStore store.ContentStore, bannerStore objstore.BannerStore, sheetSource SheetSource) *Service {
	return &Service{
		cfg:     cfg,
		store:   contentStore,
		banners: bannerStore,
		sheets:  sheetSource,
	}
}

func (s *Service) AdminToken() string {
	return s.cfg.AdminToken
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// GetContent returns the stored document, or the hardcoded fallback
// before the first save.
func (s *Service) GetContent(ctx context.Context) (content.Document, error) {
	doc, found, err := s.store.Get(ctx)
	if err != nil {
		return content.Document{}, domainError(http.StatusInternalServerError, "PERSISTENCE_FAILURE", "Failed to read content", nil)
	}
	if !found {
		return content.Fallback(), nil
	}
	return doc, nil
}

// SaveResult reports what a save actually persisted.
type SaveResult struct {
	SavedAt                 time.Time
	PreservedWhatsappNumber string
}

// SaveContent normalizes the submission against the stored document
// and fully replaces it. A store read failure at the preserve step is
// treated as "nothing stored" so a flaky read cannot block saves; the
// write itself must succeed.
func (s *Service) SaveContent(ctx context.Context, body map[string]any) (SaveResult, error) {
	var existing *content.Document
	if prev, found, err := s.store.Get(ctx); err == nil && found {
		existing = &prev
	}

	doc := content.NormalizeAdmin(body, existing)
	if err := s.store.Put(ctx, doc); err != nil {
		return SaveResult{}, domainError(http.StatusInternalServerError, "PERSISTENCE_FAILURE", "Failed to save content", nil)
	}

	return SaveResult{
		SavedAt:                 time.Now().UTC(),
		PreservedWhatsappNumber: doc.Banners.WhatsappNumber,
	}, nil
}

// LiveContent assembles the spreadsheet-backed payload. All four tabs
// must fetch; a single failure fails the request.
func (s *Service) LiveContent(ctx context.Context) (content.SheetDocument, error) {
	if s.sheets == nil {
		return content.SheetDocument{}, domainError(http.StatusInternalServerError, "UPSTREAM_FETCH_FAILURE", "Live sheet source is not configured", nil)
	}
	tabs, err := s.sheets.FetchAll(ctx)
	if err != nil {
		return content.SheetDocument{}, domainError(http.StatusInternalServerError, "UPSTREAM_FETCH_FAILURE", err.Error(), nil)
	}
	return content.FromSheetRows(tabs.Services, tabs.Banners, tabs.FAQ, tabs.Testimonials), nil
}

// UploadBanner writes the image to its fixed key and returns the key
// plus its public CDN URL.
func (s *Service) UploadBanner(ctx context.Context, variant, contentType string, body io.Reader, size int64) (key, publicURL string, err error) {
	key, err = objstore.KeyForVariant(variant)
	if err != nil {
		return "", "", domainError(http.StatusBadRequest, "INVALID_INPUT", "Invalid variant", nil)
	}
	if err := s.banners.PutBanner(ctx, key, contentType, body, size); err != nil {
		return "", "", domainError(http.StatusInternalServerError, "PERSISTENCE_FAILURE", "Failed to store banner", nil)
	}
	return key, objstore.PublicURL(s.cfg.CDNBaseURL, key), nil
}
