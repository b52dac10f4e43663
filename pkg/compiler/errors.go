package compiler

import "fmt"

// CompileError is the panic value the compiler raises for the fatal
// conditions it detects itself: a reference to an undeclared variable, and
// grammar violations in malformed source (including running out of tokens).
// The core operates under a trusted-input model — these are programmer-bug
// signals, not recoverable diagnostics, and carry no source position
// (spec.md's Non-goals explicitly exclude that). The symbol table's own
// fatal conditions (an unknown Define kind, TypeOf/IndexOf on an undeclared
// name) panic inside pkg/symtab with a plain string, not a CompileError.
type CompileError struct {
	Name string // the identifying name/context required by spec.md §7.1
	Msg  string
}

func (e *CompileError) Error() string {
	if e.Name == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}

func fail(name, format string, args ...any) {
	panic(&CompileError{Name: name, Msg: fmt.Sprintf(format, args...)})
}
