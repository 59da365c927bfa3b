package typedoc

import (
	"fmt"
	"strings"

	"rpglogs-typegen/dts"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMethod reads one documented call signature rooted at sel. name
// overrides the member anchor id when not empty.
//
// Expected layout:
//
//	<section>
//	  <a id="name"></a>
//	  ...
//	  <li class="tsd-description">
//	    <div class="tsd-comment"><p>description</p><h4>Returns</h4><p>return description</p></div>
//	    <ul class="tsd-parameter-list"><li><h5>a: string</h5><div class="tsd-comment">...</div></li></ul>
//	    <h4 class="tsd-returns-title">Returns void</h4>
//	  </li>
//	</section>
func ExtractMethod(sel *goquery.Selection, name string) (dts.Method, error) {
	if name == "" {
		anchor := firstElementChild(sel)
		if anchor == nil {
			return dts.Method{}, missing("method name", "first child id")
		}
		for _, a := range anchor.Attr {
			if a.Key == "id" {
				name = a.Val
				break
			}
		}
		if name == "" {
			return dts.Method{}, missing("method name", "first child id")
		}
	}

	description := sel.Find(descriptionSelector).First()
	if description.Length() == 0 {
		return dts.Method{}, missing("description of "+name, descriptionSelector)
	}
	comment := description.ChildrenFiltered(commentSelector).First()
	if comment.Length() == 0 {
		return dts.Method{}, missing("comment of "+name, descriptionSelector+" > "+commentSelector)
	}
	summary := comment.ChildrenFiltered("p").First()
	if summary.Length() == 0 {
		return dts.Method{}, missing("summary of "+name, commentSelector+" > p")
	}
	returnDescription := comment.ChildrenFiltered("h4").
		FilterFunction(func(_ int, h *goquery.Selection) bool {
			return strings.TrimSpace(h.Text()) == "Returns"
		}).
		First().
		NextAllFiltered("p").
		First()
	if returnDescription.Length() == 0 {
		return dts.Method{}, missing("return description of "+name, commentSelector+" > h4 + p")
	}

	returnsTitle := sel.Find(returnsTitleSelector).First()
	if returnsTitle.Length() == 0 {
		return dts.Method{}, missing("return signature of "+name, returnsTitleSelector)
	}

	parameters, err := ExtractParameters(sel.Find(parameterListSelector).First())
	if err != nil {
		return dts.Method{}, fmt.Errorf("method %s: %w", name, err)
	}

	return dts.Method{
		Name:              name,
		Description:       text(summary),
		ReturnSignature:   strings.TrimPrefix(text(returnsTitle), "Returns "),
		ReturnDescription: text(returnDescription),
		Parameters:        parameters,
	}, nil
}

// ExtractParameters reads every item of a parameter list. An empty selection
// yields no parameters.
func ExtractParameters(list *goquery.Selection) ([]dts.Parameter, error) {
	var parameters []dts.Parameter
	var err error
	list.ChildrenFiltered("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		signature := item.ChildrenFiltered("h5").First()
		if signature.Length() == 0 {
			err = missing("parameter signature", parameterListSelector+" > li > h5")
			return false
		}
		description := item.ChildrenFiltered(commentSelector).First()
		if description.Length() == 0 {
			err = missing("description of parameter "+text(signature), parameterListSelector+" > li > "+commentSelector)
			return false
		}

		var parameter dts.Parameter
		parameter, err = dts.NewParameter(text(signature), text(description))
		if err != nil {
			return false
		}
		parameters = append(parameters, parameter)
		return true
	})
	if err != nil {
		return nil, err
	}
	return parameters, nil
}
