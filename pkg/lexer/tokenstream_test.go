package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.jackc.dev/pkg/lexer"
	"go.jackc.dev/pkg/token"
)

func TestTokenStreamCursorInvariant(t *testing.T) {
	s := lexer.NewTokenStream(strings.NewReader("let x = 1 ;"))

	assert.True(t, s.HasMore())

	var got []string
	for s.HasMore() {
		got = append(got, s.Advance().Literal)
	}
	assert.Equal(t, []string{"let", "x", "=", "1", ";"}, got)
	assert.False(t, s.HasMore())
}

func TestTokenStreamPeekDoesNotAdvance(t *testing.T) {
	s := lexer.NewTokenStream(strings.NewReader("let x = 1 ;"))
	s.Advance() // "let"

	peeked := s.Peek()
	assert.Equal(t, "x", peeked.Literal)
	// Peeking again without Advance returns the same token.
	assert.Equal(t, peeked, s.Peek())

	s.Advance()
	assert.Equal(t, "x", s.Current().Literal)
}

func TestTokenStreamFromTokens(t *testing.T) {
	s := lexer.NewTokenStreamFromTokens([]token.Token{
		{Type: token.Identifier, Literal: "a"},
		{Type: token.Identifier, Literal: "b"},
	})
	assert.Equal(t, "a", s.Advance().Literal)
	assert.Equal(t, "b", s.Peek().Literal)
	assert.Equal(t, "b", s.Advance().Literal)
	assert.False(t, s.HasMore())
}
