// Package typedoc extracts declarations from pages rendered by the TypeDoc
// documentation generator.
//
// ASSUMPTION: The scraped site keeps the TypeDoc markup described by the
// selectors below. Any layout change surfaces as a *SchemaError.
package typedoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	signatureSelector     = ".tsd-signature"
	commentSelector       = ".tsd-comment"
	descriptionSelector   = ".tsd-description"
	parameterListSelector = ".tsd-parameter-list"
	returnsTitleSelector  = ".tsd-returns-title"
	declarationListSel    = "ul.tsd-parameters"
)

var ErrSchemaMismatch = errors.New("page does not match the expected documentation layout")

// SchemaError names the field that could not be located and the selector
// that was used to look for it.
type SchemaError struct {
	Field    string
	Selector string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing %s (%s)", ErrSchemaMismatch, e.Field, e.Selector)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}

func missing(field, selector string) error {
	return &SchemaError{Field: field, Selector: selector}
}

func Parse(body []byte) (*goquery.Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

var textReplacer = strings.NewReplacer("\n", "", "\u00a0", " ")

// normalize drops newlines and turns non-breaking spaces into plain ones.
func normalize(s string) string {
	return strings.TrimSpace(textReplacer.Replace(s))
}

func text(sel *goquery.Selection) string {
	return normalize(sel.Text())
}

// headingsTitled returns the tag headings whose trimmed text equals title.
func headingsTitled(sel *goquery.Selection, tag, title string) *goquery.Selection {
	return sel.Find(tag).FilterFunction(func(_ int, h *goquery.Selection) bool {
		return strings.TrimSpace(h.Text()) == title
	})
}

// firstElementChild skips the whitespace text nodes goquery keeps around.
func firstElementChild(sel *goquery.Selection) *html.Node {
	if sel.Length() == 0 {
		return nil
	}
	for child := sel.Get(0).FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return child
		}
	}
	return nil
}
