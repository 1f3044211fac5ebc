package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"rlox/interpreter"
	"rlox/lexer"
	"rlox/parser"
	"rlox/reporter"
	"rlox/resolver"
)

// replCmd starts an interactive tree-walk REPL session.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start a tree-walk REPL session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive REPL session.
`
}
func (r *replCmd) SetFlags(f *flag.FlagSet) {}

func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return subcommands.ExitStatus(runRepl())
}

// runRepl reads one line at a time until EOF, evaluating each against
// an interpreter whose environment and resolver table persist across
// lines, so definitions on one line are visible on the next.
func runRepl() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>>>\033[0m ",
		HistoryFile:     "/tmp/.rlox_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer rl.Close()

	fmt.Fprintln(os.Stdout, "rlox REPL - type \"exit\" or press Ctrl-D to quit")
	interp := interpreter.New(os.Stdout)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if line == "exit" {
			return 0
		}
		if line == "" {
			continue
		}

		evalLine(interp, line)
	}
}

// evalLine lexes, parses, resolves, and interprets a single REPL line,
// reporting any error to stderr without aborting the session.
func evalLine(interp *interpreter.TreeWalkInterpreter, line string) {
	tokens, lexErrs := lexer.New(line).Scan()
	if len(lexErrs) > 0 {
		reporter.ReportAll(os.Stderr, line, reporter.Lexing, lexErrs)
		return
	}

	statements, parseErrs := parser.Make(tokens).Parse()
	if len(parseErrs) > 0 {
		reporter.ReportAll(os.Stderr, line, reporter.Parsing, parseErrs)
		return
	}

	locals := resolver.Resolve(statements)
	interp.SetLocals(locals)

	if err := interp.Interpret(statements); err != nil {
		reporter.Report(os.Stderr, line, reporter.Classify(reporter.Runtime, err))
	}
}
