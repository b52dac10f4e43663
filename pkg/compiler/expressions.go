package compiler

import (
	"go.jackc.dev/pkg/symtab"
	"go.jackc.dev/pkg/token"
	"go.jackc.dev/pkg/vmwriter"
)

// binaryOps maps the encoded operator spelling (spec.md §4.1's symbol()
// accessor encodes '<', '>' and '&' as HTML entities) to the VM op it
// compiles to. The table is deliberately keyed on the encoded form per
// spec.md §4.4's note, even though the raw-character check below is what
// decides whether to keep looping.
var binaryOps = map[string]vmwriter.Op{
	"+":     vmwriter.Add,
	"-":     vmwriter.Sub,
	"&amp;": vmwriter.And,
	"|":     vmwriter.Or,
	"&lt;":  vmwriter.Lt,
	"&gt;":  vmwriter.Gt,
	"=":     vmwriter.Eq,
}

// rawBinaryOperators is the set of raw (unencoded) operator characters
// that continue an expression's `(op term)*` loop.
var rawBinaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"&": true, "|": true, "<": true, ">": true, "=": true,
}

func isBinaryOp(tok token.Token) bool {
	return tok.Type == token.Symbol && rawBinaryOperators[tok.RawSymbol()]
}

// compileExpression: term (op term)*, associating left-to-right with no
// precedence (spec.md §4.4).
func (c *Compiler) compileExpression() {
	c.compileTerm()

	for isBinaryOp(c.cur()) {
		opTok := c.cur()
		c.advance()
		c.compileTerm()
		c.emitBinaryOp(opTok)
	}
}

func (c *Compiler) emitBinaryOp(opTok token.Token) {
	switch opTok.RawSymbol() {
	case "*":
		c.out.WriteCall("Math.multiply", 2)
	case "/":
		c.out.WriteCall("Math.divide", 2)
	default:
		op, ok := binaryOps[opTok.Symbol()]
		if !ok {
			fail(opTok.Literal, "unknown binary operator %q", opTok.Literal)
		}
		c.out.WriteArithmetic(op)
	}
}

// compileExpressionList: (expression (',' expression)*)?, returning the
// count of expressions compiled.
func (c *Compiler) compileExpressionList() int {
	if c.cur().IsTerminal(")") {
		return 0
	}

	count := 0
	for {
		c.compileExpression()
		count++

		if c.cur().IsTerminal(",") {
			c.advance()
			continue
		}
		break
	}
	return count
}

// compileTerm dispatches by token type/spelling per spec.md §4.4's "Terms"
// rule.
func (c *Compiler) compileTerm() {
	tok := c.cur()

	switch {
	case tok.Type == token.IntConst:
		c.out.WritePush(vmwriter.Constant, tok.IntVal())
		c.advance()

	case tok.Type == token.StringConst:
		c.compileStringConstant(tok.StringVal())
		c.advance()

	case tok.Type == token.Keyword:
		c.compileKeywordConstant()

	case tok.IsTerminal("("):
		c.advance()
		c.compileExpression()
		c.expect(")")

	case tok.IsTerminal("-"):
		c.advance()
		c.compileTerm()
		c.out.WriteArithmetic(vmwriter.Neg)

	case tok.IsTerminal("~"):
		c.advance()
		c.compileTerm()
		c.out.WriteArithmetic(vmwriter.Not)

	case tok.IsTerminal("#"):
		c.advance()
		c.compileTerm()
		c.out.WriteArithmetic(vmwriter.ShiftRight)

	case tok.IsTerminal("^"):
		c.advance()
		c.compileTerm()
		c.out.WriteArithmetic(vmwriter.ShiftLeft)

	case tok.Type == token.Identifier:
		c.compileIdentifierTerm()

	default:
		fail(tok.Literal, "unexpected token %q in term", tok.Literal)
	}
}

// compileStringConstant: push constant len(s); call String.new 1; then for
// each byte of s, push constant <byte>; call String.appendChar 2. Leaves
// the string object on top of the stack (spec.md §4.4; unicode semantics
// beyond 8-bit code points are an explicit non-goal).
func (c *Compiler) compileStringConstant(s string) {
	c.out.WritePush(vmwriter.Constant, len(s))
	c.out.WriteCall("String.new", 1)
	for i := 0; i < len(s); i++ {
		c.out.WritePush(vmwriter.Constant, int(s[i]))
		c.out.WriteCall("String.appendChar", 2)
	}
}

func (c *Compiler) compileKeywordConstant() {
	tok := c.cur()
	switch {
	case tok.IsTerminal("true"):
		c.out.WritePush(vmwriter.Constant, 1)
		c.out.WriteArithmetic(vmwriter.Neg)
	case tok.IsTerminal("false"), tok.IsTerminal("null"):
		c.out.WritePush(vmwriter.Constant, 0)
	case tok.IsTerminal("this"):
		c.out.WritePush(vmwriter.Pointer, 0)
	default:
		fail(tok.Literal, "unexpected keyword %q in term", tok.Literal)
	}
	c.advance()
}

// compileIdentifierTerm: varName | varName '[' expression ']' | subroutineCall
func (c *Compiler) compileIdentifierTerm() {
	name := c.expectIdentifier()

	switch {
	case c.cur().IsTerminal("["):
		c.expect("[")
		c.compileArrayElemPointer(name)
		c.expect("]")
		c.out.WritePop(vmwriter.Pointer, 1)
		c.out.WritePush(vmwriter.That, 0)

	case c.cur().IsTerminal("(", "."):
		c.compileSubroutineCall(name)

	default:
		segment, index := c.resolveVariable(name)
		c.out.WritePush(segment, index)
	}
}

// compileSubroutineCall compiles a call whose callee identifier has already
// been consumed (name). Two forms: `name(args)` calls a method on the
// implicit `this`; `name.method(args)` either calls a method on the
// variable `name` (if it is one) or a function/constructor on the class
// `name` (spec.md §4.4).
func (c *Compiler) compileSubroutineCall(name string) {
	switch {
	case c.cur().IsTerminal("."):
		c.advance()
		methodName := c.expectIdentifier()

		nArgs := 0
		var callee string
		if kind := c.sym.KindOf(name); kind != symtab.None {
			nArgs = 1
			segment, index := c.resolveVariable(name)
			c.out.WritePush(segment, index)
			callee = c.sym.TypeOf(name) + "." + methodName
		} else {
			callee = name + "." + methodName
		}

		c.expect("(")
		nArgs += c.compileExpressionList()
		c.expect(")")

		c.out.WriteCall(callee, nArgs)

	case c.cur().IsTerminal("("):
		c.out.WritePush(vmwriter.Pointer, 0)
		c.advance()
		nArgs := 1 + c.compileExpressionList()
		c.expect(")")
		c.out.WriteCall(c.className+"."+name, nArgs)

	default:
		fail(name, "expected \"(\" or \".\" after %q", name)
	}
}
