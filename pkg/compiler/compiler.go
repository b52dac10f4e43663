// Package compiler implements the Compilation Engine: a recursive-descent
// translator that walks the Jack grammar and emits stack VM code directly
// as it parses — no AST is materialized (spec.md §4.4/§9).
package compiler

import (
	"fmt"
	"strconv"

	"go.jackc.dev/pkg/lexer"
	"go.jackc.dev/pkg/symtab"
	"go.jackc.dev/pkg/token"
	"go.jackc.dev/pkg/vmwriter"
)

// subroutineKind distinguishes the three subroutine flavors, each with its
// own calling-convention prologue (spec.md §4.4).
type subroutineKind int

const (
	function subroutineKind = iota
	method
	constructor
)

// Compiler drives the tokenizer forward, declares and resolves names via a
// SymbolTable, and emits VM instructions through an Emitter. One Compiler
// compiles exactly one class (spec.md §5): it is a closed, single-threaded
// operation that consumes its entire token stream and writes its entire
// output before returning.
type Compiler struct {
	tokens *lexer.TokenStream
	out    *vmwriter.Emitter
	sym    *symtab.SymbolTable

	className   string
	nextLabelID int
}

// New builds a Compiler reading from tokens and writing to out.
func New(tokens *lexer.TokenStream, out *vmwriter.Emitter) *Compiler {
	return &Compiler{
		tokens: tokens,
		out:    out,
		sym:    symtab.New(),
	}
}

// Compile translates the entire token stream as one Jack class, recovering
// any internal CompileError panic into a returned error. I/O errors
// observed by the emitter during compilation are also surfaced here
// (spec.md §7.5).
func (c *Compiler) Compile() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CompileError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	c.advance()
	c.compileClass()

	if c.out.Err() != nil {
		err = c.out.Err()
	}
	return
}

func (c *Compiler) cur() token.Token {
	return c.tokens.Current()
}

func (c *Compiler) peek() token.Token {
	return c.tokens.Peek()
}

func (c *Compiler) advance() token.Token {
	if !c.tokens.HasMore() {
		fail("<eof>", "unexpected end of input")
	}
	return c.tokens.Advance()
}

// expect asserts that the current token's literal is one of terms, then
// advances past it. With no terms it unconditionally advances.
func (c *Compiler) expect(terms ...string) {
	if len(terms) == 0 {
		c.advance()
		return
	}
	for _, term := range terms {
		if !c.cur().IsTerminal(term) {
			fail(term, "expected %q, got %q", term, c.cur().Literal)
		}
		c.advance()
	}
}

func (c *Compiler) expectIdentifier() string {
	if c.cur().Type != token.Identifier {
		fail(c.cur().Literal, "expected an identifier, got %q", c.cur().Literal)
	}
	name := c.cur().Identifier()
	c.advance()
	return name
}

func (c *Compiler) nextLabel(prefix string) string {
	id := c.nextLabelID
	c.nextLabelID++
	return prefix + strconv.Itoa(id)
}

// compileClass: 'class' className '{' classVarDec* subroutineDec* '}'
func (c *Compiler) compileClass() {
	c.expect("class")
	c.className = c.expectIdentifier()
	c.expect("{")

	for c.cur().IsTerminal("static", "field") {
		c.compileClassVarDec()
	}
	for c.cur().IsTerminal("constructor", "function", "method") {
		c.compileSubroutineDec()
	}

	// The closing '}' is the last token of the class, so it is checked but
	// not advanced past: there is no further token to move onto.
	if !c.cur().IsTerminal("}") {
		fail("}", "expected %q, got %q", "}", c.cur().Literal)
	}
}

// compileClassVarDec: (static|field) type varName (',' varName)* ';'
func (c *Compiler) compileClassVarDec() {
	var kind symtab.Kind
	switch {
	case c.cur().IsTerminal("static"):
		kind = symtab.Static
	case c.cur().IsTerminal("field"):
		kind = symtab.Field
	default:
		fail(c.cur().Literal, "expected \"static\" or \"field\"")
	}
	c.advance()

	c.declareSequence(kind)
}

// declareSequence: type varName (',' varName)* ';', declaring each name at
// kind in the symbol table. Shared by class variable and local variable
// declarations (spec.md §4.4's "class variable declaration" rule).
func (c *Compiler) declareSequence(kind symtab.Kind) int {
	typ := c.parseType()

	count := 0
	for {
		name := c.expectIdentifier()
		c.sym.Define(name, typ, kind)
		count++

		if c.cur().IsTerminal(",") {
			c.advance()
			continue
		}
		break
	}
	c.expect(";")
	return count
}

// parseType: 'int' | 'char' | 'boolean' | className
func (c *Compiler) parseType() string {
	if c.cur().IsTerminal("int", "char", "boolean") {
		typ := c.cur().Literal
		c.advance()
		return typ
	}
	return c.expectIdentifier()
}

// compileSubroutineDec: (constructor|function|method) (void|type) name
// '(' parameterList ')' subroutineBody
func (c *Compiler) compileSubroutineDec() {
	c.sym.StartSubroutine()

	var kind subroutineKind
	switch {
	case c.cur().IsTerminal("constructor"):
		kind = constructor
	case c.cur().IsTerminal("function"):
		kind = function
	case c.cur().IsTerminal("method"):
		kind = method
	}
	c.advance()

	if kind == method {
		// Pre-defined as arg 0, so real parameters begin at index 1
		// (spec.md §4.4).
		c.sym.Define("this", c.className, symtab.Arg)
	}

	// return type: 'void' | type
	c.advance()

	name := c.expectIdentifier()
	c.expect("(")
	if !c.cur().IsTerminal(")") {
		c.compileParameterList()
	}
	c.expect(")")

	c.compileSubroutineBody(name, kind)
}

// compileParameterList: (type varName (',' type varName)*)?
func (c *Compiler) compileParameterList() {
	for {
		typ := c.parseType()
		name := c.expectIdentifier()
		c.sym.Define(name, typ, symtab.Arg)

		if c.cur().IsTerminal(",") {
			c.advance()
			continue
		}
		break
	}
}

// compileSubroutineBody: '{' varDec* statements '}', emitting the
// `function` declaration once locals are counted, followed by the
// calling-convention prologue for kind.
func (c *Compiler) compileSubroutineBody(name string, kind subroutineKind) {
	c.expect("{")

	nLocals := 0
	for c.cur().IsTerminal("var") {
		c.advance()
		nLocals += c.declareSequence(symtab.Var)
	}

	c.out.WriteFunction(c.className+"."+name, nLocals)

	switch kind {
	case constructor:
		nFields := c.sym.CountOf(symtab.Field)
		c.out.WritePush(vmwriter.Constant, nFields)
		c.out.WriteCall("Memory.alloc", 1)
		c.out.WritePop(vmwriter.Pointer, 0)
	case method:
		c.out.WritePush(vmwriter.Argument, 0)
		c.out.WritePop(vmwriter.Pointer, 0)
	}

	c.compileStatements()
	c.expect("}")
}

// segmentFor maps a symbol kind to its VM segment (spec.md §4.4's
// kind/segment mapping).
func segmentFor(kind symtab.Kind) vmwriter.Segment {
	switch kind {
	case symtab.Static:
		return vmwriter.Static
	case symtab.Field:
		return vmwriter.This
	case symtab.Arg:
		return vmwriter.Argument
	case symtab.Var:
		return vmwriter.Local
	default:
		panic(fmt.Sprintf("compiler: variable of kind %v has no VM segment", kind))
	}
}

// resolveVariable looks up name and returns its VM segment and index.
// Centralizing this one lookup keeps scalar reads, array reads, and array
// writes from each re-deriving the kind→segment mapping separately
// (supplemented from original_source/CompilationEngine.py, see DESIGN.md).
func (c *Compiler) resolveVariable(name string) (vmwriter.Segment, int) {
	kind := c.sym.KindOf(name)
	if kind == symtab.None {
		fail(name, "unknown variable %q", name)
	}
	return segmentFor(kind), c.sym.IndexOf(name)
}
