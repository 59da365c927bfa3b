package typedoc

import (
	"strings"

	"rpglogs-typegen/dts"
	"rpglogs-typegen/utils"

	"github.com/PuerkitoBio/goquery"
)

type Link struct {
	Href string
	Kind dts.Kind
	Name string
}

// Signature is the declaration head, e.g. "interface Actor".
func (l Link) Signature() string {
	return l.Kind.String() + " " + l.Name
}

// CollectHrefs returns the href of every anchor in document order. Anchors
// without an href are skipped.
func CollectHrefs(doc *goquery.Document) []string {
	var hrefs []string
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		hrefs = append(hrefs, href)
	})
	return hrefs
}

// ClassifyLink maps interfaces/<...>.html to an interface and types/<...>.html
// to a type alias. Everything else is skipped.
func ClassifyLink(href string) (Link, bool) {
	if !utils.IsDocsURLValid(href) {
		return Link{}, false
	}
	path := strings.TrimSuffix(utils.SanitizeDocsURL(href), ".html")
	segments := strings.Split(path, "/")

	var kind dts.Kind
	switch segments[0] {
	case "interfaces":
		kind = dts.KindInterface
	case "types":
		kind = dts.KindType
	default:
		return Link{}, false
	}

	// ASSUMPTION: Pages are named <namespace>.<Name>.html
	last := segments[len(segments)-1]
	name := last[strings.LastIndex(last, ".")+1:]
	if name == "" {
		return Link{}, false
	}

	return Link{Href: href, Kind: kind, Name: name}, true
}
