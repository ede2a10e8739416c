// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/go-lox/lang/value"
)

// runREPL is the repl command and the zero-argument default. Each line runs
// through the full pipeline; a diagnostic is reported and the prompt keeps
// accepting input.
func runREPL(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	out := newPrinter(cfg.REPL.Color)

	fmt.Printf("Lox %s\nCtrl+C clears the line, Ctrl+D exits.\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := expandHome(cfg.REPL.History)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		val, err := interpret(line)
		if err != nil {
			out.diagnostic(err)
			continue
		}
		out.value(val)
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// printer writes evaluation results and diagnostics, in color when enabled
// and the destination is a terminal.
type printer struct {
	stdout io.Writer
	stderr io.Writer
	good   *color.Color
	bad    *color.Color
}

func newPrinter(colored bool) *printer {
	p := &printer{
		stdout: colorable.NewColorableStdout(),
		stderr: colorable.NewColorableStderr(),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
	}
	if !colored || !isatty.IsTerminal(os.Stderr.Fd()) {
		p.good.DisableColor()
		p.bad.DisableColor()
	}
	return p
}

func (p *printer) value(v value.Value) {
	_, _ = p.good.Fprintln(p.stdout, v)
}

func (p *printer) diagnostic(err error) {
	_, _ = p.bad.Fprintln(p.stderr, err)
}
