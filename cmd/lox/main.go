// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

// Command lox is the Lox expression interpreter.
//
// Usage:
//
//	lox [script]
//
// With no arguments lox starts an interactive prompt; with a single argument
// it evaluates that file and prints the result. Subcommands expose the
// individual pipeline stages:
//
//	lox run <script>     Evaluate a script file
//	lox repl             Start the interactive prompt
//	lox tokens <script>  Print the token stream
//	lox ast <script>     Print the parse tree
//	lox dumpconfig       Show configuration values
package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-lox/lang/diag"
	"github.com/probechain/go-lox/lang/interp"
	"github.com/probechain/go-lox/lang/lexer"
	"github.com/probechain/go-lox/lang/parser"
	"github.com/probechain/go-lox/lang/value"
)

const version = "0.1.0"

// Exit codes follow the BSD sysexits convention: 64 for a usage error, 65
// for input that fails to scan or parse, 70 for a failure during evaluation.
const (
	exitUsage   = 64
	exitParse   = 65
	exitRuntime = 70
)

var (
	app = cli.NewApp()

	runCommand = cli.Command{
		Action:    runScript,
		Name:      "run",
		Usage:     "Evaluate a script file and print the result",
		ArgsUsage: "<script>",
		Category:  "INTERPRETER COMMANDS",
		Description: `The run command evaluates the given script file and prints the resulting
value to standard output. A script that fails to scan or parse exits 65, one
that fails during evaluation exits 70; either way the diagnostic goes to
standard error.`,
	}

	replCommand = cli.Command{
		Action:   runREPL,
		Name:     "repl",
		Usage:    "Start the interactive prompt",
		Category: "INTERPRETER COMMANDS",
		Description: `The repl command starts the interactive prompt, the same as running lox
with no arguments.`,
	}
)

func init() {
	app.Name = "lox"
	app.Usage = "the Lox expression language interpreter"
	app.Version = version
	app.Action = lox
	app.Flags = []cli.Flag{configFileFlag}
	app.Commands = []cli.Command{
		runCommand,
		replCommand,
		tokensCommand,
		astCommand,
		dumpConfigCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// lox is the default action: no arguments starts the interactive prompt, a
// single argument evaluates that file as a script.
func lox(ctx *cli.Context) error {
	switch ctx.NArg() {
	case 0:
		return runREPL(ctx)
	case 1:
		return evalFile(ctx, ctx.Args().Get(0))
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}
	return nil
}

func runScript(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lox run <script>")
		os.Exit(exitUsage)
	}
	return evalFile(ctx, ctx.Args().Get(0))
}

// evalFile runs a script file through the full pipeline, printing the value
// to stdout or the diagnostic to stderr.
func evalFile(ctx *cli.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	val, err := interpret(string(src))
	if err != nil {
		bail(ctx, err)
	}
	fmt.Println(val)
	return nil
}

// interpret scans, parses and evaluates a source string.
func interpret(src string) (value.Value, error) {
	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	expr, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return interp.Eval(expr)
}

func diagExitCode(err error) int {
	if errors.Is(err, diag.ErrRuntime) {
		return exitRuntime
	}
	return exitParse
}

// bail reports a diagnostic on stderr and exits with its mapped code.
func bail(ctx *cli.Context, err error) {
	newPrinter(makeConfig(ctx).REPL.Color).diagnostic(err)
	os.Exit(diagExitCode(err))
}
