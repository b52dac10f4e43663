// Package fixtures supplies Jack test inputs: random sequences of valid
// lexemes (not grammatical programs) for the whitespace property test in
// pkg/lexer, and a fixed set of complete sample classes for the golden tests
// in pkg/compiler. Adapted from internal/test/lexer.go's random-choice-from-a-
// fixed-list generator (see DESIGN.md).
package fixtures

import (
	"math/rand"
	"strings"
)

// validLexemes is the fixed pool of lexemes the generator draws from: every
// keyword and symbol, plus a handful of identifiers, integers and string
// constants representative of real source.
var validLexemes = []string{
	"class", "constructor", "function", "method", "field", "static", "var",
	"int", "char", "boolean", "void", "true", "false", "null", "this",
	"let", "do", "if", "else", "while", "return",
	"{", "}", "(", ")", "[", "]", ".", ",", ";",
	"+", "-", "*", "/", "&", "|", "<", ">", "=", "~", "#", "^",
	"foo", "bar", "count", "SomeClass", "x", "y",
	"0", "1", "42", "32767",
	`"hello"`, `"a longer string literal with spaces"`, `""`,
}

// RandomTokenSequence returns n randomly chosen lexemes as a slice; sep is
// not used (Join renders the slice as source text). Used by the whitespace
// property test, which joins the same chosen lexemes with two different
// separators and asserts the resulting token count is unchanged.
func RandomTokenSequence(n int, sep string) []string {
	toks := make([]string, n)
	for i := range toks {
		toks[i] = validLexemes[rand.Intn(len(validLexemes))]
	}
	return toks
}

// Join re-renders a token sequence as source text, separating lexemes with
// sep. Adjacent lexemes that would merge into a single word (two
// identifiers, or an identifier and a keyword) are always given at least one
// separator regardless of sep, since the lexer has no other way to tell them
// apart.
func Join(toks []string, sep string) string {
	isWord := func(c byte) bool {
		return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
	}
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteString(sep)
			prev := toks[i-1]
			if sep == "" && prev != "" && t != "" && isWord(prev[len(prev)-1]) && isWord(t[0]) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t)
	}
	return b.String()
}

// SampleClass returns one of six small, complete, syntactically valid Jack
// class sources (i modulo 6): an empty function, a constructor setting
// fields, a method calling another method on this, an array write inside a
// while loop, a while loop with a comparison, and a string literal. The set
// is fixed so golden tests stay stable across runs.
func SampleClass(i int) string {
	samples := []string{
		sampleEmptyFunction,
		sampleConstructorField,
		sampleMethodSelfCall,
		sampleArrayWrite,
		sampleWhileCompare,
		sampleStringLiteral,
	}
	return samples[i%len(samples)]
}

const sampleEmptyFunction = `class Main {
	function void run() {
		return;
	}
}
`

const sampleConstructorField = `class Point {
	field int x, y;

	constructor Point new(int ax, int ay) {
		let x = ax;
		let y = ay;
		return this;
	}
}
`

const sampleMethodSelfCall = `class Counter {
	field int value;

	method void bump() {
		do increment();
		return;
	}

	method void increment() {
		let value = value + 1;
		return;
	}
}
`

const sampleArrayWrite = `class Arrays {
	function void fill(Array a, int n, int v) {
		var int i;
		let i = 0;
		while (i < n) {
			let a[i] = v;
			let i = i + 1;
		}
		return;
	}
}
`

const sampleWhileCompare = `class Loop {
	function int sumTo(int n) {
		var int i, total;
		let i = 0;
		let total = 0;
		while (~(i > n)) {
			let total = total + i;
			let i = i + 1;
		}
		return total;
	}
}
`

const sampleStringLiteral = `class Greeter {
	function String greet() {
		return "hello, world";
	}
}
`
