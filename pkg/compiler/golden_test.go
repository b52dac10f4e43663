package compiler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"go.jackc.dev/internal/fixtures"
	"go.jackc.dev/pkg/compiler"
	"go.jackc.dev/pkg/lexer"
	"go.jackc.dev/pkg/vmwriter"
)

// TestCompileSampleClassesGolden snapshots the full VM output of each sample
// class in internal/fixtures against the six scenarios spec.md §8 names:
// empty function, constructor with field, method self-invocation, array
// write, while-with-comparison, and a string literal.
func TestCompileSampleClassesGolden(t *testing.T) {
	for i := 0; i < 6; i++ {
		src := fixtures.SampleClass(i)

		t.Run(fmt.Sprintf("sample_%d", i), func(t *testing.T) {
			tokens := lexer.NewTokenStream(strings.NewReader(src))
			var out strings.Builder
			c := compiler.New(tokens, vmwriter.New(&out))

			require.NoError(t, c.Compile())
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
