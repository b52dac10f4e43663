// Package vmwriter implements the VM Emitter: a thin, order-preserving sink
// that writes well-formed VM assembly lines to an output stream, per
// spec.md §4.3.
package vmwriter

import (
	"fmt"
	"io"
)

// Segment names a region of the stack VM's memory model. The emitter does
// not validate segment/opcode combinations (spec.md §4.3).
type Segment string

const (
	Constant Segment = "constant"
	Argument Segment = "argument"
	Local    Segment = "local"
	Static   Segment = "static"
	This     Segment = "this"
	That     Segment = "that"
	Pointer  Segment = "pointer"
	Temp     Segment = "temp"
)

// Op names an arithmetic/logical VM instruction.
type Op string

const (
	Add        Op = "add"
	Sub        Op = "sub"
	Neg        Op = "neg"
	Eq         Op = "eq"
	Gt         Op = "gt"
	Lt         Op = "lt"
	And        Op = "and"
	Or         Op = "or"
	Not        Op = "not"
	ShiftRight Op = "shiftright"
	ShiftLeft  Op = "shiftleft"
)

// Emitter writes one VM instruction per line to an underlying io.Writer.
// Ordering of lines in the output is the order of emission (spec.md §5).
type Emitter struct {
	w   io.Writer
	err error
}

// New wraps w as an Emitter. w may be a file, an in-memory buffer, or any
// other io.Writer — the emitter itself does not own or close it.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Err returns the first I/O error encountered while writing, if any. I/O
// errors propagate unchanged to the caller (spec.md §7.5).
func (e *Emitter) Err() error {
	return e.err
}

func (e *Emitter) writeLine(line string) {
	if e.err != nil {
		return
	}
	_, err := fmt.Fprintln(e.w, line)
	if err != nil {
		e.err = err
	}
}

// WriteCommand writes an arbitrary line verbatim (the comment-passthrough
// instruction of spec.md §4.3). The engine's statement-tracing comments go
// through WriteComment instead.
func (e *Emitter) WriteCommand(line string) {
	e.writeLine(line)
}

// WriteComment writes a `// ...`-prefixed debugging aid line.
func (e *Emitter) WriteComment(comment string) {
	e.writeLine("// " + comment)
}

func (e *Emitter) WritePush(segment Segment, index int) {
	e.writeLine(fmt.Sprintf("push %s %d", segment, index))
}

func (e *Emitter) WritePop(segment Segment, index int) {
	e.writeLine(fmt.Sprintf("pop %s %d", segment, index))
}

func (e *Emitter) WriteArithmetic(op Op) {
	e.writeLine(string(op))
}

func (e *Emitter) WriteLabel(label string) {
	e.writeLine("label " + label)
}

func (e *Emitter) WriteGoto(label string) {
	e.writeLine("goto " + label)
}

func (e *Emitter) WriteIf(label string) {
	e.writeLine("if-goto " + label)
}

func (e *Emitter) WriteCall(name string, nArgs int) {
	e.writeLine(fmt.Sprintf("call %s %d", name, nArgs))
}

func (e *Emitter) WriteFunction(name string, nLocals int) {
	e.writeLine(fmt.Sprintf("function %s %d", name, nLocals))
}

func (e *Emitter) WriteReturn() {
	e.writeLine("return")
}
