package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.jackc.dev/pkg/token"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		raw    string
		expect token.Type
	}{
		{"class", token.Keyword},
		{"while", token.Keyword},
		{"{", token.Symbol},
		{"#", token.Symbol},
		{"^", token.Symbol},
		{"123", token.IntConst},
		{`"hello"`, token.StringConst},
		{`""`, token.StringConst},
		{"myVar", token.Identifier},
		{"Foo3", token.Identifier},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, token.Classify(c.raw), "raw=%q", c.raw)
	}
}

func TestIntValWrapsModulo32768(t *testing.T) {
	cases := []struct {
		raw    string
		expect int
	}{
		{"0", 0},
		{"32767", 32767},
		{"32768", 0},
		{"40000", 40000 % 32768},
	}

	for _, c := range cases {
		tok := token.Token{Type: token.IntConst, Literal: c.raw}
		assert.Equal(t, c.expect, tok.IntVal())
	}
}

func TestSymbolEntityEncoding(t *testing.T) {
	assert.Equal(t, "&lt;", token.Token{Type: token.Symbol, Literal: "<"}.Symbol())
	assert.Equal(t, "&gt;", token.Token{Type: token.Symbol, Literal: ">"}.Symbol())
	assert.Equal(t, "&amp;", token.Token{Type: token.Symbol, Literal: "&"}.Symbol())
	assert.Equal(t, "+", token.Token{Type: token.Symbol, Literal: "+"}.Symbol())

	assert.Equal(t, "<", token.Token{Type: token.Symbol, Literal: "<"}.RawSymbol())
}

func TestKeywordUpperCases(t *testing.T) {
	assert.Equal(t, "WHILE", token.Token{Type: token.Keyword, Literal: "while"}.Keyword())
}
