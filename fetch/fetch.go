// Package fetch retrieves documentation pages. Every fetch is a single
// blocking request, there is no retry and no cache.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("rpglogs-typegen/fetch")

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher returns a fetcher backed by resty. A zero timeout waits
// forever.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New().
		SetHeader("Accept", "text/html").
		SetTimeout(timeout)
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "HTTPFetcher:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	if res.IsError() {
		err := &StatusError{URL: url, StatusCode: res.StatusCode()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	return res.Body(), nil
}
