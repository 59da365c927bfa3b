// Package dts models the declarations written into a TypeScript declaration
// file and renders them to text.
package dts

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInterface Kind = iota
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindType:
		return "type"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Declaration is one top-level block of the output file.
type Declaration interface {
	Kind() Kind
	DeclName() string
	Render() string
}

type Property struct {
	Signature   string
	Description string
}

var ErrNoParameterName = errors.New("parameter signature has no name")

type Parameter struct {
	Signature   string
	Description string
	Name        string
}

// NewParameter derives the parameter name from everything before the first
// colon of its signature.
func NewParameter(signature, description string) (Parameter, error) {
	name, _, found := strings.Cut(signature, ":")
	if !found {
		return Parameter{}, fmt.Errorf("%w: %q", ErrNoParameterName, signature)
	}
	return Parameter{
		Signature:   signature,
		Description: description,
		Name:        name,
	}, nil
}

type Method struct {
	Name              string
	Description       string
	ReturnSignature   string
	ReturnDescription string
	// Order matches the documented call-site argument order.
	Parameters []Parameter
}

func (m Method) Signature() string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.Signature
	}
	return fmt.Sprintf("%s(%s): %s", m.Name, strings.Join(params, ", "), m.ReturnSignature)
}

type Interface struct {
	Name       string
	Properties []Property
	Methods    []Method
}

func (i Interface) Kind() Kind       { return KindInterface }
func (i Interface) DeclName() string { return i.Name }

// Member is one entry of an object type alias body, either a Field or a Method.
type Member interface {
	docString() string
}

// Field is a plain member line of an object type alias. Comment is optional.
type Field struct {
	Signature string
	Comment   string
}

// TypeAlias with nil Members renders Type verbatim; otherwise the body is an
// object type built from Members.
type TypeAlias struct {
	Name string
	// Type is everything after the first colon of the documented signature,
	// leading whitespace included.
	Type    string
	Members []Member
}

func (t TypeAlias) Kind() Kind       { return KindType }
func (t TypeAlias) DeclName() string { return t.Name }
