// Command jackc compiles Jack source files to stack VM assembly.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.jackc.dev/pkg/compiler"
	"go.jackc.dev/pkg/lexer"
	"go.jackc.dev/pkg/vmwriter"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "jackc",
		Short: "Compile Jack source files to stack VM assembly",
	}

	compileCmd := &cobra.Command{
		Use:   "compile <path>",
		Short: "Compile a .jack file or a directory of .jack files",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	compileCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each file as it compiles")

	root.AddCommand(compileCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	sources, err := discoverSources(args[0])
	if err != nil {
		color.Red("jackc: %v", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		color.Yellow("jackc: no .jack files found at %s", args[0])
		os.Exit(0)
	}

	var eg errgroup.Group
	failed := make([]string, len(sources))

	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			if err := compileFile(src); err != nil {
				failed[i] = fmt.Sprintf("%s: %v", src, err)
				return nil
			}
			if verbose {
				color.Green("compiled %s", src)
			}
			return nil
		})
	}
	_ = eg.Wait()

	anyFailed := false
	for _, msg := range failed {
		if msg == "" {
			continue
		}
		anyFailed = true
		color.Red("%s", msg)
	}

	if anyFailed {
		os.Exit(2)
	}
	return nil
}

// discoverSources resolves path to a flat list of .jack source files: the
// file itself if path names one, or every .jack file directly inside it if
// path names a directory (spec.md's CLI driver is a flat, non-recursive
// per-directory compile, mirroring the convention nand2tetris tools use).
func discoverSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !strings.HasSuffix(path, ".jack") {
			return nil, fmt.Errorf("%s is not a .jack file", path)
		}
		return []string{path}, nil
	}

	matches, err := filepath.Glob(filepath.Join(path, "*.jack"))
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// compileFile compiles one .jack file and writes the VM output alongside it
// with a .vm extension.
func compileFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	outPath := strings.TrimSuffix(path, ".jack") + ".vm"
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	tokens := lexer.NewTokenStream(in)
	emitter := vmwriter.New(out)
	c := compiler.New(tokens, emitter)

	return c.Compile()
}
