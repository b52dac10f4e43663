package compiler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.jackc.dev/pkg/compiler"
	"go.jackc.dev/pkg/lexer"
	"go.jackc.dev/pkg/vmwriter"
)

func compile(t *testing.T, src string) string {
	t.Helper()

	tokens := lexer.NewTokenStream(strings.NewReader(src))
	var out strings.Builder
	c := compiler.New(tokens, vmwriter.New(&out))

	err := c.Compile()
	require.NoError(t, err)

	return out.String()
}

func TestCompileEmptyFunction(t *testing.T) {
	vm := compile(t, `class Main {
		function void run() {
			return;
		}
	}`)

	assert.Contains(t, vm, "function Main.run 0")
	assert.Contains(t, vm, "push constant 0")
	assert.Contains(t, vm, "return")
}

func TestCompileConstructorAllocatesFields(t *testing.T) {
	vm := compile(t, `class Point {
		field int x, y;

		constructor Point new(int ax, int ay) {
			let x = ax;
			let y = ay;
			return this;
		}
	}`)

	assert.Contains(t, vm, "function Point.new 0")
	assert.Contains(t, vm, "push constant 2")
	assert.Contains(t, vm, "call Memory.alloc 1")
	assert.Contains(t, vm, "pop pointer 0")
	assert.Contains(t, vm, "pop this 0")
	assert.Contains(t, vm, "pop this 1")
	assert.Contains(t, vm, "push pointer 0")
}

func TestCompileMethodSelfCall(t *testing.T) {
	vm := compile(t, `class Counter {
		field int value;

		method void bump() {
			do increment();
			return;
		}

		method void increment() {
			let value = value + 1;
			return;
		}
	}`)

	assert.Contains(t, vm, "push argument 0")
	assert.Contains(t, vm, "call Counter.increment 1")
}

func TestCompileArrayWriteUsesCanonicalSwap(t *testing.T) {
	vm := compile(t, `class Arrays {
		function void fill(Array a, int n, int v) {
			var int i;
			let i = 0;
			while (i < n) {
				let a[i] = v;
				let i = i + 1;
			}
			return;
		}
	}`)

	idx := strings.Index(vm, "pop temp 0")
	require.GreaterOrEqual(t, idx, 0)
	rest := vm[idx:]
	assert.True(t, strings.HasPrefix(rest, "pop temp 0\npop pointer 1\npush temp 0\npop that 0\n"))
}

func TestCompileWhileUsesNotAndIfGoto(t *testing.T) {
	vm := compile(t, `class Loop {
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
	}`)

	assert.Contains(t, vm, "gt\n")
	assert.Contains(t, vm, "not\n")
	assert.Contains(t, vm, "if-goto")
	assert.Contains(t, vm, "goto")
}

func TestCompileStringLiteralBuildsViaAppendChar(t *testing.T) {
	vm := compile(t, `class Greeter {
		function String greet() {
			return "hi";
		}
	}`)

	assert.Contains(t, vm, "push constant 2")
	assert.Contains(t, vm, "call String.new 1")
	assert.Contains(t, vm, "call String.appendChar 2")
}

func TestCompileIfElseUsesThreeLabels(t *testing.T) {
	vm := compile(t, `class Branch {
		function void choose(boolean b) {
			if (b) {
				let b = false;
			} else {
				let b = true;
			}
			return;
		}
	}`)

	// The label counter is a single monotonic sequence shared across every
	// if/while in the subroutine (spec.md §9), so the three labels of one
	// if-statement take consecutive, not identical, ids.
	assert.Contains(t, vm, "label TrueIf_0")
	assert.Contains(t, vm, "label FalseIf_1")
	assert.Contains(t, vm, "label EndIf_2")
}

func TestCompileUnknownVariableFails(t *testing.T) {
	tokens := lexer.NewTokenStream(strings.NewReader(`class Main {
		function void run() {
			let missing = 1;
			return;
		}
	}`))
	var out strings.Builder
	c := compiler.New(tokens, vmwriter.New(&out))

	err := c.Compile()
	assert.Error(t, err)
}
