package dts

import (
	"fmt"
	"strings"
)

func (p Property) DocString() string {
	return fmt.Sprintf("\t/**\n\t* %s\n\t*/\n\t%s\n", p.Description, p.Signature)
}

func (p Parameter) DocString() string {
	return fmt.Sprintf("\t* @param %s %s", p.Name, p.Description)
}

func (m Method) DocString() string {
	var b strings.Builder
	b.WriteString("\t/**\n")
	fmt.Fprintf(&b, "\t* %s\n", m.Description)
	for _, p := range m.Parameters {
		b.WriteString(p.DocString())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\t* @return %s\n", m.ReturnDescription)
	b.WriteString("\t*/\n")
	fmt.Fprintf(&b, "\t%s\n", m.Signature())
	return b.String()
}

func (m Method) docString() string { return m.DocString() }

func (f Field) docString() string {
	if f.Comment == "" {
		return fmt.Sprintf("\t%s\n", f.Signature)
	}
	return Property{Signature: f.Signature, Description: f.Comment}.DocString()
}

// Render lays out properties and methods as two separate blocks.
func (i Interface) Render() string {
	props := make([]string, len(i.Properties))
	for n, p := range i.Properties {
		props[n] = p.DocString()
	}
	methods := make([]string, len(i.Methods))
	for n, m := range i.Methods {
		methods[n] = m.DocString()
	}
	return fmt.Sprintf(
		"%s %s {\n%s\n%s\n}",
		KindInterface, i.Name,
		strings.Join(props, "\n"),
		strings.Join(methods, "\n"),
	)
}

func (t TypeAlias) Render() string {
	if t.Members == nil {
		return fmt.Sprintf("%s %s =%s", KindType, t.Name, t.Type)
	}
	members := make([]string, len(t.Members))
	for n, m := range t.Members {
		members[n] = m.docString()
	}
	return fmt.Sprintf("%s %s = {\n%s}", KindType, t.Name, strings.Join(members, ""))
}
