package compiler

import "go.jackc.dev/pkg/vmwriter"

// compileStatements: statement*, dispatching on the leading keyword.
func (c *Compiler) compileStatements() {
	for !c.cur().IsTerminal("}") {
		c.out.WriteComment(c.cur().Literal + " " + c.peek().Literal)

		switch {
		case c.cur().IsTerminal("let"):
			c.compileLet()
		case c.cur().IsTerminal("if"):
			c.compileIf()
		case c.cur().IsTerminal("while"):
			c.compileWhile()
		case c.cur().IsTerminal("do"):
			c.compileDo()
		case c.cur().IsTerminal("return"):
			c.compileReturn()
		default:
			fail(c.cur().Literal, "expected a statement, got %q", c.cur().Literal)
		}
	}
}

// compileLet: 'let' varName ('[' expression ']')? '=' expression ';'
func (c *Compiler) compileLet() {
	c.expect("let")
	name := c.expectIdentifier()

	isArray := c.cur().IsTerminal("[")
	if isArray {
		c.expect("[")
		c.compileArrayElemPointer(name)
		c.expect("]")
	}

	c.expect("=")
	c.compileExpression()
	c.expect(";")

	if isArray {
		// Canonical swap to avoid clobbering the RHS value with the
		// pointer-retarget that follows (spec.md §4.4).
		c.out.WritePop(vmwriter.Temp, 0)
		c.out.WritePop(vmwriter.Pointer, 1)
		c.out.WritePush(vmwriter.Temp, 0)
		c.out.WritePop(vmwriter.That, 0)
		return
	}

	segment, index := c.resolveVariable(name)
	c.out.WritePop(segment, index)
}

// compileArrayElemPointer compiles the index expression (the cursor is just
// past the opening '['), then pushes name's base and adds, leaving
// base+index on top of the stack.
func (c *Compiler) compileArrayElemPointer(name string) {
	c.compileExpression()
	segment, index := c.resolveVariable(name)
	c.out.WritePush(segment, index)
	c.out.WriteArithmetic(vmwriter.Add)
}

// compileIf: 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
//
// Uses the two-goto pattern spec.md §4.4 requires (rather than negating
// the condition), and parses the optional else branch strictly by
// lookahead — never by a blind advance past the closing '}' — per the
// fix spec.md §9 calls for.
func (c *Compiler) compileIf() {
	c.expect("if", "(")

	trueLabel := c.nextLabel("TrueIf_")
	falseLabel := c.nextLabel("FalseIf_")
	endLabel := c.nextLabel("EndIf_")

	c.compileExpression()
	c.expect(")")

	c.out.WriteIf(trueLabel)
	c.out.WriteGoto(falseLabel)
	c.out.WriteLabel(trueLabel)

	c.expect("{")
	c.compileStatements()
	c.expect("}")

	c.out.WriteGoto(endLabel)
	c.out.WriteLabel(falseLabel)

	if c.cur().IsTerminal("else") {
		c.advance()
		c.expect("{")
		c.compileStatements()
		c.expect("}")
	}

	c.out.WriteLabel(endLabel)
}

// compileWhile: 'while' '(' expression ')' '{' statements '}'
func (c *Compiler) compileWhile() {
	c.expect("while", "(")

	topLabel := c.nextLabel("WhileTop_")
	endLabel := c.nextLabel("WhileEnd_")

	c.out.WriteLabel(topLabel)
	c.compileExpression()
	c.expect(")")

	c.out.WriteArithmetic(vmwriter.Not)
	c.out.WriteIf(endLabel)

	c.expect("{")
	c.compileStatements()
	c.expect("}")

	c.out.WriteGoto(topLabel)
	c.out.WriteLabel(endLabel)
}

// compileDo: 'do' subroutineCall ';'
func (c *Compiler) compileDo() {
	c.expect("do")
	c.compileSubroutineCall(c.expectIdentifier())
	c.out.WritePop(vmwriter.Temp, 0) // discard unused return value
	c.expect(";")
}

// compileReturn: 'return' expression? ';'
func (c *Compiler) compileReturn() {
	c.expect("return")

	if c.cur().IsTerminal(";") {
		c.out.WritePush(vmwriter.Constant, 0)
	} else {
		c.compileExpression()
	}

	c.out.WriteReturn()
	c.expect(";")
}
