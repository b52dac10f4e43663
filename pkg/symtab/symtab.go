// Package symtab implements the Jack compiler's two-level scoped symbol
// table: a class scope (static, field) and a subroutine scope (arg, var),
// with per-kind monotonic index counters, per spec.md §3/§4.2.
package symtab

import "fmt"

// Kind is the storage class of a variable. The four kinds form a closed
// enumeration (spec.md §9's design note).
type Kind int

const (
	None Kind = iota
	Static
	Field
	Arg
	Var
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Field:
		return "field"
	case Arg:
		return "arg"
	case Var:
		return "var"
	default:
		return "none"
	}
}

// Entry is a (Kind, Type, Index) triple. Type is either a primitive
// keyword (int, char, boolean) or an identifier naming a class.
type Entry struct {
	Kind  Kind
	Type  string
	Index int
}

// scope holds one level's name→Entry mapping plus the per-kind counters
// for that level.
type scope struct {
	entries  map[string]Entry
	counters map[Kind]int
}

func newScope() scope {
	return scope{entries: make(map[string]Entry), counters: make(map[Kind]int)}
}

// SymbolTable tracks the class scope and the current subroutine's scope.
// Subroutine scope wins on lookup (spec.md §3's shadowing invariant).
type SymbolTable struct {
	class      scope
	subroutine scope
}

// New returns an empty SymbolTable, ready for one class compilation.
func New() *SymbolTable {
	return &SymbolTable{class: newScope(), subroutine: newScope()}
}

// StartSubroutine clears the subroutine scope and resets the arg/var
// counters. Class scope and its counters are untouched.
func (t *SymbolTable) StartSubroutine() {
	t.subroutine = newScope()
}

// Define inserts (kind, typ, counter[kind]) under name in the scope
// appropriate for kind, then increments that counter. An unknown kind is a
// fatal error (spec.md §7.3).
func (t *SymbolTable) Define(name, typ string, kind Kind) Entry {
	s := t.scopeFor(kind)

	entry := Entry{Kind: kind, Type: typ, Index: s.counters[kind]}
	s.entries[name] = entry
	s.counters[kind]++

	return entry
}

func (t *SymbolTable) scopeFor(kind Kind) *scope {
	switch kind {
	case Static, Field:
		return &t.class
	case Arg, Var:
		return &t.subroutine
	default:
		panic(fmt.Sprintf("symtab: unknown kind %v", kind))
	}
}

// lookup returns the entry for name, searching subroutine scope first,
// then class scope.
func (t *SymbolTable) lookup(name string) (Entry, bool) {
	if e, ok := t.subroutine.entries[name]; ok {
		return e, true
	}
	if e, ok := t.class.entries[name]; ok {
		return e, true
	}
	return Entry{}, false
}

// KindOf returns the kind of name, or None if it is not declared in either
// scope — a distinguishable value the engine uses to decide whether a
// dotted-call receiver is a variable or a class name.
func (t *SymbolTable) KindOf(name string) Kind {
	e, ok := t.lookup(name)
	if !ok {
		return None
	}
	return e.Kind
}

// TypeOf returns the declared type of name. Fatal if name is undeclared
// (spec.md §7.2).
func (t *SymbolTable) TypeOf(name string) string {
	e, ok := t.lookup(name)
	if !ok {
		panic(fmt.Sprintf("symtab: unknown symbol %q", name))
	}
	return e.Type
}

// IndexOf returns the declared index of name. Fatal if name is undeclared
// (spec.md §7.2).
func (t *SymbolTable) IndexOf(name string) int {
	e, ok := t.lookup(name)
	if !ok {
		panic(fmt.Sprintf("symtab: unknown symbol %q", name))
	}
	return e.Index
}

// CountOf returns the current count of declarations of kind, used to size
// constructor allocations and function frames.
func (t *SymbolTable) CountOf(kind Kind) int {
	return t.scopeFor(kind).counters[kind]
}
