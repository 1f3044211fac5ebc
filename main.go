// Command rlox is a tree-walk interpreter (and experimental bytecode
// VM) for the Lox language.
//
// Usage:
//
//	rlox                 start a REPL using the tree-walk interpreter
//	rlox <script>         run <script> through the tree-walk interpreter
//	rlox --vm <script>    run <script> through the bytecode VM
//	rlox <subcommand> ... run/repl/emit tooling variants (see rlox help)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func registerSubcommands() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&runCompiledCmd{}, "")
	subcommands.Register(&replCompiledCmd{}, "")
	subcommands.Register(&emitBytecodeCmd{}, "")
}

// knownSubcommands names every subcommands.Command registered above,
// so main can tell "rlox run foo.lox" (a subcommand invocation) apart
// from the bare-script shorthand "rlox foo.lox".
var knownSubcommands = map[string]bool{
	"help": true, "flags": true, "commands": true,
	"run": true, "repl": true, "run-vm": true, "repl-vm": true, "emit": true,
}

func main() {
	registerSubcommands()

	args := os.Args[1:]

	switch {
	case len(args) == 0:
		os.Exit(runRepl())

	case args[0] == "--vm":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: rlox --vm <script>")
			os.Exit(64)
		}
		os.Exit(runCompiledFile(args[1]))

	case knownSubcommands[args[0]]:
		flag.Parse()
		os.Exit(int(subcommands.Execute(context.Background())))

	default:
		os.Exit(runFile(args[0], os.Stdout))
	}
}
