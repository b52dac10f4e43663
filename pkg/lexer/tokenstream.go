package lexer

import (
	"io"

	"go.jackc.dev/pkg/token"
)

// TokenStream is an ordered, finite, random-accessible sequence of tokens
// plus a 0-based cursor, satisfying spec.md §3's TokenStream contract:
// cursor ∈ [-1, len], Advance is the only mutation of cursor.
type TokenStream struct {
	tokens []token.Token
	cursor int
}

// NewTokenStream scans r to completion and returns a TokenStream positioned
// before the first token (cursor == -1). The lexer's channel is fully
// drained here, so no goroutine outlives this call and no concurrent
// access to cursor state is possible — the compiler only ever sees a plain
// synchronous slice.
func NewTokenStream(r io.Reader) *TokenStream {
	return &TokenStream{
		tokens: New(r).Run(),
		cursor: -1,
	}
}

// NewTokenStreamFromTokens builds a TokenStream directly from an already
// scanned token slice, useful for tests that want to exercise the compiler
// or symbol table without going through the lexer.
func NewTokenStreamFromTokens(tokens []token.Token) *TokenStream {
	return &TokenStream{tokens: tokens, cursor: -1}
}

// HasMore reports whether Advance would move the cursor onto a valid
// token.
func (s *TokenStream) HasMore() bool {
	return s.cursor+1 < len(s.tokens)
}

// Advance moves the cursor to the next token and returns it. Precondition:
// HasMore().
func (s *TokenStream) Advance() token.Token {
	s.cursor++
	return s.tokens[s.cursor]
}

// Current returns the token at the cursor. Precondition: cursor >= 0.
func (s *TokenStream) Current() token.Token {
	return s.tokens[s.cursor]
}

// CurrentType returns the type of the current token.
func (s *TokenStream) CurrentType() token.Type {
	return s.Current().Type
}

// Raw returns the current token's raw lexeme.
func (s *TokenStream) Raw() string {
	return s.Current().Literal
}

// Peek returns the lexeme one past current without advancing. At the end
// of the stream it returns the zero Token.
func (s *TokenStream) Peek() token.Token {
	if s.cursor+1 >= len(s.tokens) {
		return token.Token{}
	}
	return s.tokens[s.cursor+1]
}
