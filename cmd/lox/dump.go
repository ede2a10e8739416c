// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-colorable"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-lox/lang/lexer"
	"github.com/probechain/go-lox/lang/parser"
	"github.com/probechain/go-lox/lang/token"
	"github.com/probechain/go-lox/lang/value"
)

var (
	tokensCommand = cli.Command{
		Action:    dumpTokens,
		Name:      "tokens",
		Usage:     "Print the token stream of a script",
		ArgsUsage: "<script>",
		Category:  "DEVELOPER COMMANDS",
		Description: `The tokens command scans the given script and prints one row per token
with its type, lexeme, decoded literal and line.`,
	}

	astCommand = cli.Command{
		Action:    dumpAST,
		Name:      "ast",
		Usage:     "Print the parse tree of a script",
		ArgsUsage: "<script>",
		Flags:     []cli.Flag{dumpFlag},
		Category:  "DEVELOPER COMMANDS",
		Description: `The ast command parses the given script and prints the parenthesized
canonical form of the tree. With --dump the raw node structure is printed
instead.`,
	}

	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "Print the raw node structure",
	}
)

func dumpTokens(ctx *cli.Context) error {
	src, err := readScript(ctx)
	if err != nil {
		return err
	}
	toks, err := lexer.Scan(src)
	if err != nil {
		bail(ctx, err)
	}

	table := tablewriter.NewWriter(colorable.NewColorableStdout())
	table.SetHeader([]string{"TYPE", "LEXEME", "LITERAL", "LINE"})
	for _, tok := range toks {
		table.Append([]string{tok.Type.String(), tok.Lexeme, literalColumn(tok), strconv.Itoa(tok.Line)})
	}
	table.Render()
	return nil
}

func dumpAST(ctx *cli.Context) error {
	src, err := readScript(ctx)
	if err != nil {
		return err
	}
	toks, err := lexer.Scan(src)
	if err != nil {
		bail(ctx, err)
	}
	expr, err := parser.Parse(toks)
	if err != nil {
		bail(ctx, err)
	}
	if ctx.Bool(dumpFlag.Name) {
		spew.Fdump(colorable.NewColorableStdout(), expr)
	} else {
		fmt.Println(expr.String())
	}
	return nil
}

// readScript reads the single script file argument of a command.
func readScript(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("%s command requires a script file", ctx.Command.Name)
	}
	src, err := os.ReadFile(ctx.Args().Get(0))
	if err != nil {
		return "", err
	}
	return string(src), nil
}

// literalColumn renders the decoded literal carried by string and number
// tokens; other token types have none.
func literalColumn(tok token.Token) string {
	switch tok.Type {
	case token.STRING:
		return tok.Literal
	case token.NUMBER:
		return value.Number(tok.Number).String()
	default:
		return ""
	}
}
