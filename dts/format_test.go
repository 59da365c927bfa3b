package dts

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertyDocString(t *testing.T) {
	p := Property{Signature: "foo: number", Description: "Does X"}
	require.Equal(t, "\t/**\n\t* Does X\n\t*/\n\tfoo: number\n", p.DocString())
}

func TestNewParameter(t *testing.T) {
	p, err := NewParameter("count: number", "how many")
	require.NoError(t, err)
	require.Equal(t, "count", p.Name)

	p, err = NewParameter("fn: (a: string) => void", "")
	require.NoError(t, err)
	require.Equal(t, "fn", p.Name)

	_, err = NewParameter("count", "how many")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoParameterName))
}

func testMethod(t *testing.T) Method {
	a, err := NewParameter("a: string", "first")
	require.NoError(t, err)
	b, err := NewParameter("b: number", "second")
	require.NoError(t, err)
	return Method{
		Name:              "name",
		Description:       "Does a thing",
		ReturnSignature:   "void",
		ReturnDescription: "nothing",
		Parameters:        []Parameter{a, b},
	}
}

func TestMethodDocString(t *testing.T) {
	m := testMethod(t)
	require.Equal(t, "name(a: string, b: number): void", m.Signature())

	doc := m.DocString()
	require.Equal(t,
		"\t/**\n"+
			"\t* Does a thing\n"+
			"\t* @param a first\n"+
			"\t* @param b second\n"+
			"\t* @return nothing\n"+
			"\t*/\n"+
			"\tname(a: string, b: number): void\n",
		doc,
	)
	require.Less(t, strings.Index(doc, "@param a first"), strings.Index(doc, "@param b second"))
}

func TestMethodWithoutParameters(t *testing.T) {
	m := Method{Name: "now", ReturnSignature: "number", ReturnDescription: "the time"}
	require.Equal(t, "now(): number", m.Signature())
	require.NotContains(t, m.DocString(), "@param")
}

func TestInterfaceRender(t *testing.T) {
	i := Interface{
		Name: "Actor",
		Properties: []Property{
			{Signature: "id: number", Description: "The id."},
			{Signature: "name: string"},
		},
		Methods: []Method{testMethod(t)},
	}

	out := i.Render()
	require.True(t, strings.HasPrefix(out, "interface Actor {\n"))
	require.True(t, strings.HasSuffix(out, "}"))
	require.Contains(t, out, "\t/**\n\t* The id.\n\t*/\n\tid: number\n\n\t/**\n\t* \n\t*/\n\tname: string\n")
	require.Less(t, strings.Index(out, "name: string"), strings.Index(out, "@param a first"))
}

func TestEmptyInterfaceRender(t *testing.T) {
	require.Equal(t, "interface Empty {\n\n\n}", Interface{Name: "Empty"}.Render())
}

func TestTypeAliasRender(t *testing.T) {
	testCases := []struct {
		name     string
		alias    TypeAlias
		expected string
	}{
		{
			name:     "raw",
			alias:    TypeAlias{Name: "Foo", Type: " { bar: string }"},
			expected: "type Foo = { bar: string }",
		},
		{
			name: "members",
			alias: TypeAlias{
				Name: "Combatant",
				Members: []Member{
					Field{Signature: "id: number", Comment: "Unique id."},
					Field{Signature: "name: string"},
					Method{Name: "isPet", ReturnSignature: "boolean", Description: "Pet check.", ReturnDescription: "true for pets"},
				},
			},
			expected: "type Combatant = {\n" +
				"\t/**\n\t* Unique id.\n\t*/\n\tid: number\n" +
				"\tname: string\n" +
				"\t/**\n\t* Pet check.\n\t* @return true for pets\n\t*/\n\tisPet(): boolean\n" +
				"}",
		},
		{
			name:     "empty members",
			alias:    TypeAlias{Name: "Nothing", Type: " {}", Members: []Member{}},
			expected: "type Nothing = {\n}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.alias.Render())
		})
	}
}

func TestKind(t *testing.T) {
	require.Equal(t, "interface", KindInterface.String())
	require.Equal(t, "type", KindType.String())
	require.Equal(t, KindInterface, Interface{}.Kind())
	require.Equal(t, KindType, TypeAlias{}.Kind())
}
