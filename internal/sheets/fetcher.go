// Package sheets pulls CSV exports of a published spreadsheet's tabs.
// The spreadsheet is the editorial source for the live content path:
// four named tabs (services, banners, faq, testimonials) exported as
// CSV over HTTP.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jyotish/api/internal/sheetcsv"
)

const (
	TabServices     = "services"
	TabBanners      = "banners"
	TabFAQ          = "faq"
	TabTestimonials = "testimonials"
)

const defaultBaseURL = "https://docs.google.com"

// excerptLen caps how much of an upstream error body ends up in our
// error messages.
const excerptLen = 200

// Tabs holds the parsed rows of all four tabs.
type Tabs struct {
	Services     []sheetcsv.Row
	Banners      []sheetcsv.Row
	FAQ          []sheetcsv.Row
	Testimonials []sheetcsv.Row
}

// Fetcher retrieves named tab exports for one spreadsheet.
type Fetcher struct {
	client        *http.Client
	baseURL       string
	spreadsheetID string
}

// New creates a Fetcher. baseURL overrides the public endpoint and is
// meant for tests; pass "" for the real service.
func New(spreadsheetID, baseURL string, timeout time.Duration) *Fetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:        &http.Client{Timeout: timeout},
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: spreadsheetID,
	}
}

// FetchTab downloads one tab's CSV export and parses it. A non-2xx
// status or a body that looks like an HTML page fails the fetch; no
// retries are attempted.
func (f *Fetcher) FetchTab(ctx context.Context, tab string) ([]sheetcsv.Row, error) {
	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		f.baseURL, url.PathEscape(f.spreadsheetID), url.QueryEscape(tab))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for tab %q: %w", tab, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tab %q: %w", tab, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tab %q: %w", tab, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch tab %q: status %d: %s", tab, resp.StatusCode, excerpt(body))
	}
	if looksLikeHTML(body) {
		return nil, fmt.Errorf("tab %q returned an HTML page instead of CSV; check the spreadsheet's sharing settings (must be published or link-visible)", tab)
	}

	return sheetcsv.Parse(string(body)), nil
}

// FetchAll retrieves all four tabs concurrently. Any single failure
// fails the aggregate; there is no partial result.
func (f *Fetcher) FetchAll(ctx context.Context) (Tabs, error) {
	var tabs Tabs
	g, ctx := errgroup.WithContext(ctx)

	fetch := func(tab string, dst *[]sheetcsv.Row) func() error {
		return func() error {
			rows, err := f.FetchTab(ctx, tab)
			if err != nil {
				return err
			}
			*dst = rows
			return nil
		}
	}

	g.Go(fetch(TabServices, &tabs.Services))
	g.Go(fetch(TabBanners, &tabs.Banners))
	g.Go(fetch(TabFAQ, &tabs.FAQ))
	g.Go(fetch(TabTestimonials, &tabs.Testimonials))

	if err := g.Wait(); err != nil {
		return Tabs{}, err
	}
	return tabs, nil
}

// looksLikeHTML detects the login/permission page the export URL
// serves when the spreadsheet is not shared.
func looksLikeHTML(body []byte) bool {
	head := strings.TrimSpace(strings.TrimPrefix(string(body[:min(len(body), 512)]), "\uFEFF"))
	lower := strings.ToLower(head)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > excerptLen {
		return s[:excerptLen] + "..."
	}
	return s
}
