package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/tmcfar/nfl-schedule/internal/logger"
)

const (
	// PFRBaseURL is the pro-football-reference origin all schedule pages live under
	PFRBaseURL = "https://www.pro-football-reference.com"
	UserAgent  = "nfl-schedule/1.0 (github.com/tmcfar/nfl-schedule)"
	Timeout    = 60 * time.Second
)

// Scraper fetches pages from a fixed base origin and wraps them in goquery
// documents. The HTTP client is constructed once and shared across all static
// fetches; dynamic fetches spin up an ephemeral headless browser per call.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a Scraper for the given base origin
func New(baseURL string) *Scraper {
	logger.Info("creating client", logger.Fields{"base_url": baseURL})
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewPFR creates a Scraper configured for pro-football-reference.com
func NewPFR() *Scraper {
	return New(PFRBaseURL)
}

// URL joins a relative path onto the scraper's base origin.
func (s *Scraper) URL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

// FetchDocument fetches the page at the given relative path and parses it
// into a goquery document. With dynamic set, the page is rendered in a
// headless browser so script-driven content is present; otherwise a plain
// GET against the shared client is used. Transport failures, non-2xx
// statuses, and HTML parse failures all propagate to the caller.
func (s *Scraper) FetchDocument(ctx context.Context, path string, dynamic bool) (*goquery.Document, error) {
	logger.Debug("fetching page", logger.Fields{"path": path, "dynamic": dynamic})

	start := time.Now()
	var (
		html string
		err  error
	)
	if dynamic {
		html, err = s.fetchDynamic(ctx, path)
	} else {
		html, err = s.fetchStatic(ctx, path)
	}
	logger.RecordTiming("scraper.fetch", time.Since(start))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML for %s: %w", path, err)
	}
	return doc, nil
}

// fetchStatic issues a single blocking GET against the shared client
func (s *Scraper) fetchStatic(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(path), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: unexpected status code: %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response for %s: %w", path, err)
	}
	return string(body), nil
}

// fetchDynamic renders the page in an ephemeral headless browser. The browser
// context is cancelled on every exit path, which tears the instance down
// before control returns to the caller.
func (s *Scraper) fetchDynamic(ctx context.Context, path string) (string, error) {
	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, Timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(s.URL(path)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	return html, nil
}
