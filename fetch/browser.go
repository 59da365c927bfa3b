package fetch

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// BrowserFetcher renders pages in Chrome and returns the resulting document,
// for sites that build their markup client side.
type BrowserFetcher struct {
	allocatorContext context.Context
	// Element that must be visible before the document is captured.
	SelectorToWaitVisible string
}

// NewBrowserFetcher starts a Chrome allocator. The returned cancel func stops
// the browser.
func NewBrowserFetcher(ctx context.Context, headless bool) (*BrowserFetcher, context.CancelFunc) {
	allocatorContext, cancel := chromedp.NewExecAllocator(ctx, append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
	)...)

	return &BrowserFetcher{
		allocatorContext:      allocatorContext,
		SelectorToWaitVisible: "body",
	}, cancel
}

func (f *BrowserFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	_, span := tracer.Start(ctx, "BrowserFetcher:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	tabContext, cancel := chromedp.NewContext(f.allocatorContext)
	defer cancel()

	// the tab lives under the allocator, stop it when the caller gives up
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err := chromedp.Run(tabContext,
		chromedp.Navigate(url),
		chromedp.WaitVisible(f.SelectorToWaitVisible),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to render")
		return nil, fmt.Errorf("render %s: %w", url, err)
	}

	return []byte(html), nil
}
