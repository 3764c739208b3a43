package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length below which the
// static HTML is assumed to be a script-rendered shell.
const MinContentLength = 500

// ShouldUseBrowser reports whether the extracted text is short enough to
// warrant a headless-browser render.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func renderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate the page.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
