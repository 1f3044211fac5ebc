package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"rlox/interpreter"
	"rlox/lexer"
	"rlox/parser"
	"rlox/reporter"
	"rlox/resolver"
)

// runCmd executes a script file through the tree-walk interpreter.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute a rlox script with the tree-walk interpreter" }
func (*runCmd) Usage() string {
	return `run <script>:
  Execute a rlox script.
`
}
func (r *runCmd) SetFlags(f *flag.FlagSet) {}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: rlox run <script>")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitStatus(runFile(args[0], os.Stdout))
}

// runFile lexes, parses, resolves, and interprets the file at path,
// reporting every error found along the way, and returns the process
// exit code described in the CLI's exit-code table.
func runFile(path string, out *os.File) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return 1
	}
	source := string(data)

	tokens, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) > 0 {
		reporter.ReportAll(os.Stderr, source, reporter.Lexing, lexErrs)
		return 65
	}

	statements, parseErrs := parser.Make(tokens).Parse()
	if len(parseErrs) > 0 {
		reporter.ReportAll(os.Stderr, source, reporter.Parsing, parseErrs)
		return 65
	}

	locals := resolver.Resolve(statements)

	interp := interpreter.New(out)
	interp.SetLocals(locals)
	if err := interp.Interpret(statements); err != nil {
		reporter.Report(os.Stderr, source, reporter.Classify(reporter.Runtime, err))
		return 70
	}
	return 0
}
