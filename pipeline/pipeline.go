// Package pipeline runs one generation pass: fetch the index, classify its
// links, extract every linked declaration and write them out in link order.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"

	"rpglogs-typegen/dts"
	"rpglogs-typegen/fetch"
	"rpglogs-typegen/typedoc"
	"rpglogs-typegen/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("rpglogs-typegen/pipeline")

type Pipeline struct {
	Fetcher  fetch.Fetcher
	IndexURL string
	Output   io.Writer
	// RawDir archives every fetched documentation page when set.
	RawDir string
	Log    logrus.FieldLogger
}

// Result describes one written declaration.
type Result struct {
	Kind dts.Kind
	Name string
	URL  string
}

// Run is strictly sequential. The first failing fetch or extraction aborts
// the run, whatever was written before stays in Output and the manual
// addition is not appended.
func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "Pipeline:Run")
	defer span.End()

	log := p.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	index, err := p.fetchDocument(ctx, p.IndexURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch index")
		return nil, err
	}

	writer := dts.NewWriter(p.Output)
	if err := writer.WriteHeader(p.IndexURL); err != nil {
		return nil, err
	}

	var results []Result
	for _, href := range typedoc.CollectHrefs(index) {
		link, ok := typedoc.ClassifyLink(href)
		if !ok {
			log.WithField("href", href).Debug("skipping link")
			continue
		}

		targetURL, err := utils.ResolveDocsURL(p.IndexURL, utils.SanitizeDocsURL(href))
		if err != nil {
			return results, err
		}
		log.WithFields(logrus.Fields{
			"url":         targetURL,
			"declaration": link.Signature(),
		}).Info("processing")

		decl, err := p.extract(ctx, link, targetURL)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract declaration")
			return results, fmt.Errorf("%s (%s): %w", link.Signature(), targetURL, err)
		}
		if err := writer.WriteDeclaration(decl); err != nil {
			return results, err
		}

		results = append(results, Result{Kind: link.Kind, Name: decl.DeclName(), URL: targetURL})
	}

	if err := writer.WriteFooter(); err != nil {
		return results, err
	}

	span.SetAttributes(attribute.Int("declarations", writer.Count()))
	return results, nil
}

func (p *Pipeline) extract(ctx context.Context, link typedoc.Link, targetURL string) (dts.Declaration, error) {
	doc, err := p.fetchDocument(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	switch link.Kind {
	case dts.KindInterface:
		return typedoc.ExtractInterface(doc, link.Name)
	case dts.KindType:
		return typedoc.ExtractTypeAlias(doc)
	}
	return nil, fmt.Errorf("unsupported declaration kind %s", link.Kind)
}

func (p *Pipeline) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if p.RawDir != "" {
		if err := p.archive(pageURL, body); err != nil {
			return nil, err
		}
	}
	return typedoc.Parse(body)
}

// archive stores the page under RawDir by its url path, prefixed with a
// comment naming the source.
func (p *Pipeline) archive(pageURL string, body []byte) error {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return err
	}
	outputPath := filepath.Join(p.RawDir, parsed.Host, filepath.FromSlash(parsed.Path))
	return utils.WriteNewFile(outputPath, fmt.Sprintf("<!-- %s -->\n%s", pageURL, body))
}
