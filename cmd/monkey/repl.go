package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"monkey/interpreter-go/pkg/driver"
	"monkey/interpreter-go/pkg/interpreter"
	"monkey/interpreter-go/pkg/parser"
)

const continuationPrompt = ".. "

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

func printParserErrors(w io.Writer, messages []string) {
	io.WriteString(w, monkeyFace)
	io.WriteString(w, "Woops! We ran into some monkey business here!\n")
	io.WriteString(w, " parser errors:\n")
	for _, msg := range messages {
		io.WriteString(w, "\t"+msg+"\n")
	}
}

func (c *cli) runRepl() int {
	fmt.Fprintf(c.stdout, "%s (%s mode). Type quit to exit.\n", cliToolVersion, c.cfg.Mode)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := c.cfg.HistoryFile; path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	interp := c.newInterpreter()
	for {
		source, ok := readSource(ln, c.cfg.Prompt, continuationPrompt)
		if !ok {
			fmt.Fprintln(c.stdout)
			return 0
		}
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" {
			return 0
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
		c.evalLine(interp, source)
	}
}

// readSource keeps prompting while brackets are unbalanced. ok is false once
// input is exhausted; an aborted line comes back empty.
func readSource(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := ln.Prompt(current)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !parser.IsIncomplete(b.String()) {
			return b.String(), true
		}
	}
}

// evalLine runs one REPL entry against the session interpreter and prints
// the outcome for the configured mode.
func (c *cli) evalLine(interp *interpreter.Interpreter, source string) {
	if c.cfg.Mode == driver.ModeParse {
		program, err := interp.Parse(source)
		if err != nil {
			c.reportError(c.stdout, err)
			return
		}
		fmt.Fprintln(c.stdout, program.String())
		return
	}
	value, err := interp.EvaluateSource(source)
	if err != nil {
		c.reportError(c.stdout, err)
		return
	}
	fmt.Fprintln(c.stdout, value.String())
}
