package typedoc

import (
	"fmt"
	"strings"

	"rpglogs-typegen/dts"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTypeAlias reads a type alias page. Aliases without any comment
// blocks keep the documented signature as is. Object literal aliases have
// their members listed under "Type declaration" rebuilt so that comments and
// function members can be rendered as doc comments. Any other alias (unions,
// function types, ...) keeps its signature.
func ExtractTypeAlias(doc *goquery.Document) (dts.TypeAlias, error) {
	signature := doc.Find(signatureSelector).First()
	if signature.Length() == 0 {
		return dts.TypeAlias{}, missing("type signature", signatureSelector)
	}
	name, underlying, found := strings.Cut(normalize(signature.Text()), ":")
	if !found {
		return dts.TypeAlias{}, missing("type name separator", signatureSelector+` ":"`)
	}
	alias := dts.TypeAlias{Name: name, Type: underlying}

	if doc.Find(commentSelector).Length() == 0 || !isObjectLiteral(underlying) {
		return alias, nil
	}

	list := headingsTitled(doc.Selection, "h4", "Type declaration").
		First().
		NextAllFiltered(declarationListSel).
		First()
	if list.Length() == 0 {
		return alias, nil
	}

	members := []dts.Member{}
	var err error
	list.ChildrenFiltered("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		line := item.ChildrenFiltered("h5").First()
		if line.Length() == 0 {
			return true
		}
		lineText := text(line)

		if strings.Contains(lineText, "function") {
			methodName, _, _ := strings.Cut(lineText, ":")
			var method dts.Method
			method, err = ExtractMethod(item, methodName)
			if err != nil {
				err = fmt.Errorf("type %s: %w", name, err)
				return false
			}
			members = append(members, method)
			return true
		}

		field := dts.Field{Signature: lineText}
		// a comment documents the member line right before it
		if comment := line.Next(); comment.Is(commentSelector) {
			field.Comment = text(comment)
		}
		members = append(members, field)
		return true
	})
	if err != nil {
		return dts.TypeAlias{}, err
	}

	if len(members) == 0 {
		return alias, nil
	}
	alias.Members = members
	return alias, nil
}

// isObjectLiteral reports whether the whole type is a single { ... } body, the
// only shape the member list can describe completely.
func isObjectLiteral(underlying string) bool {
	trimmed := strings.TrimSpace(underlying)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return false
	}
	// { a: A } & { b: B } closes its first brace before the end
	depth := 0
	for i, c := range trimmed {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(trimmed)-1 {
				return false
			}
		}
	}
	return depth == 0
}
