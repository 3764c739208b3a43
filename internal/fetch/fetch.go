// Package fetch retrieves job description pages over HTTP and reduces them
// to plain text for JD matching.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ATSRefinery/1.0)"

// Error represents a failure fetching or processing a job description URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures job description fetching.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// JobDescription fetches a job posting URL and returns its plain text. With
// UseBrowser set, pages whose static HTML yields too little text are
// re-rendered in a headless browser before extraction.
func JobDescription(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	html, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		rendered, berr := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if berr != nil {
			return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: berr}
		}
		text, err = ExtractText(rendered)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to extract rendered text", Cause: err}
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &Error{URL: urlStr, Message: "page contained no extractable text"}
	}
	return text, nil
}

func fetchHTML(ctx context.Context, urlStr string, opts *Options) (string, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// ExtractText parses HTML and returns the visible body text with navigation,
// scripts, and other boilerplate removed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	text := doc.Find("body").Text()
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " ")), nil
}
