package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"rlox/compiler"
	"rlox/lexer"
	"rlox/parser"
	"rlox/reporter"
)

// emitBytecodeCmd compiles a script and writes its disassembly (and,
// optionally, the raw encoded bytes) to disk for inspection.
type emitBytecodeCmd struct {
	dumpBytecode bool
}

func (*emitBytecodeCmd) Name() string { return "emit" }
func (*emitBytecodeCmd) Synopsis() string {
	return "Emit the bytecode disassembly for a source file"
}
func (*emitBytecodeCmd) Usage() string {
	return `rlox emit <file>`
}

func (cmd *emitBytecodeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.dumpBytecode, "dump-bytes", false, "also write the raw encoded bytecode as hex to a .bytes file")
}

func (r *emitBytecodeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: rlox emit <file>")
		return subcommands.ExitUsageError
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}
	source := string(data)

	tokens, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) > 0 {
		reporter.ReportAll(os.Stderr, source, reporter.Lexing, lexErrs)
		return subcommands.ExitFailure
	}

	statements, parseErrs := parser.Make(tokens).Parse()
	if len(parseErrs) > 0 {
		reporter.ReportAll(os.Stderr, source, reporter.Parsing, parseErrs)
		return subcommands.ExitFailure
	}

	chunk, err := compiler.Compile(statements)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		return subcommands.ExitFailure
	}

	base := strings.TrimSuffix(path, ".lox")
	disPath := base + ".dis"
	if err := os.WriteFile(disPath, []byte(chunk.Disassemble()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write disassembly: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", disPath)

	if r.dumpBytecode {
		bytesPath := base + ".bytes"
		if err := os.WriteFile(bytesPath, []byte(fmt.Sprintf("%x\n", chunk.Code)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write bytecode: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", bytesPath)
	}

	return subcommands.ExitSuccess
}
