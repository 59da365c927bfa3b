package typedoc

import (
	"fmt"

	"rpglogs-typegen/dts"

	"github.com/PuerkitoBio/goquery"
)

// memberSections returns the member sections grouped under the first h2
// titled title that actually holds any. found reports whether such a heading
// exists at all.
func memberSections(doc *goquery.Document, title string) (sections *goquery.Selection, found bool) {
	headings := headingsTitled(doc.Selection, "h2", title)
	if headings.Length() == 0 {
		return doc.Selection.Slice(0, 0), false
	}
	// ASSUMPTION: The index at the top of a page repeats the group headings
	// without member sections, only the group itself has them.
	sections = headings.First().Parent().ChildrenFiltered("section")
	headings.EachWithBreak(func(_ int, h *goquery.Selection) bool {
		candidate := h.Parent().ChildrenFiltered("section")
		if candidate.Length() > 0 {
			sections = candidate
			return false
		}
		return true
	})
	return sections, true
}

func extractProperty(section *goquery.Selection) (dts.Property, error) {
	signature := section.Find(signatureSelector).First()
	if signature.Length() == 0 {
		return dts.Property{}, missing("property signature", signatureSelector)
	}
	return dts.Property{
		Signature:   text(signature),
		Description: text(section.Find("p").First()),
	}, nil
}

// ExtractInterface reads the Properties and Methods groups of an interface
// page. A page without a Properties heading is rejected.
func ExtractInterface(doc *goquery.Document, name string) (dts.Interface, error) {
	propertySections, found := memberSections(doc, "Properties")
	if !found {
		return dts.Interface{}, missing("Properties heading of "+name, `h2 "Properties"`)
	}

	out := dts.Interface{Name: name}

	var err error
	propertySections.EachWithBreak(func(i int, section *goquery.Selection) bool {
		var property dts.Property
		property, err = extractProperty(section)
		if err != nil {
			err = fmt.Errorf("interface %s property %d: %w", name, i, err)
			return false
		}
		out.Properties = append(out.Properties, property)
		return true
	})
	if err != nil {
		return dts.Interface{}, err
	}

	methodSections, _ := memberSections(doc, "Methods")
	methodSections.EachWithBreak(func(i int, section *goquery.Selection) bool {
		var method dts.Method
		method, err = ExtractMethod(section, "")
		if err != nil {
			err = fmt.Errorf("interface %s method %d: %w", name, i, err)
			return false
		}
		out.Methods = append(out.Methods, method)
		return true
	})
	if err != nil {
		return dts.Interface{}, err
	}

	return out, nil
}
