package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"monkey/interpreter-go/pkg/driver"
	"monkey/interpreter-go/pkg/interpreter"
	"monkey/interpreter-go/pkg/runtime"
)

const cliToolVersion = "monkey 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return newCLI(os.Stdout, os.Stderr).run(args)
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *driver.Config
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr}
}

func (c *cli) run(args []string) int {
	fs := flag.NewFlagSet("monkey", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = c.printUsage
	configPath := fs.String("config", "", "path to monkey.yml")
	mode := fs.String("mode", "", "REPL output: eval or parse")
	trace := fs.Bool("trace", false, "log parser rules at debug level")
	version := fs.Bool("version", false, "print the version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *version {
		fmt.Fprintln(c.stdout, cliToolVersion)
		return 0
	}

	cfg, err := driver.ResolveConfig(*configPath, ".")
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to load config: %v\n", err)
		return 1
	}
	if *mode != "" {
		cfg.Mode = driver.Mode(strings.ToLower(*mode))
		if !cfg.Mode.IsValid() {
			fmt.Fprintf(c.stderr, "unknown mode %q (want eval or parse)\n", *mode)
			return 2
		}
	}
	if *trace {
		cfg.Trace = true
	}
	c.cfg = cfg

	rest := fs.Args()
	if len(rest) == 0 {
		return c.runRepl()
	}
	switch rest[0] {
	case "repl":
		return c.runRepl()
	case "run":
		return c.runFile(rest[1:])
	case "parse":
		return c.parseFile(rest[1:])
	case "fixtures":
		return c.runFixtures(rest[1:])
	case "help":
		c.printUsage()
		return 0
	case "version":
		fmt.Fprintln(c.stdout, cliToolVersion)
		return 0
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n", rest[0])
		c.printUsage()
		return 2
	}
}

func (c *cli) printUsage() {
	fmt.Fprintln(c.stderr, "Usage:")
	fmt.Fprintln(c.stderr, "  monkey [flags] [repl]")
	fmt.Fprintln(c.stderr, "  monkey [flags] run <file>")
	fmt.Fprintln(c.stderr, "  monkey [flags] parse <file> [--json]")
	fmt.Fprintln(c.stderr, "  monkey [flags] fixtures <dir>")
	fmt.Fprintln(c.stderr, "Flags:")
	fmt.Fprintln(c.stderr, "  --config <path>   read settings from this monkey.yml")
	fmt.Fprintln(c.stderr, "  --mode eval|parse what the REPL prints")
	fmt.Fprintln(c.stderr, "  --trace           log parser rules to stderr")
	fmt.Fprintln(c.stderr, "  --version         print the version")
}

func (c *cli) newInterpreter() *interpreter.Interpreter {
	opts := []interpreter.Option{
		interpreter.WithBuiltin(interpreter.Puts(c.stdout)),
		interpreter.WithMaxCallDepth(c.cfg.MaxCallDepth),
	}
	if c.cfg.Trace {
		handler := slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, interpreter.WithParseTracer(slog.New(handler)))
	}
	return interpreter.New(opts...)
}

func (c *cli) readSourceArg(command string, args []string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(c.stderr, "monkey %s requires exactly one source file\n", command)
		return "", false
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to read %s: %v\n", args[0], err)
		return "", false
	}
	return string(data), true
}

func (c *cli) runFile(args []string) int {
	source, ok := c.readSourceArg("run", args)
	if !ok {
		return 1
	}
	value, err := c.newInterpreter().EvaluateSource(source)
	if err != nil {
		c.reportError(c.stderr, err)
		return 1
	}
	if _, isNull := value.(runtime.NullValue); !isNull {
		fmt.Fprintln(c.stdout, value.String())
	}
	return 0
}

func (c *cli) parseFile(args []string) int {
	asJSON := false
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--json" {
			asJSON = true
			continue
		}
		files = append(files, arg)
	}
	source, ok := c.readSourceArg("parse", files)
	if !ok {
		return 1
	}
	program, err := c.newInterpreter().Parse(source)
	if err != nil {
		c.reportError(c.stderr, err)
		return 1
	}
	if !asJSON {
		fmt.Fprintln(c.stdout, program.String())
		return 0
	}
	encoded, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to encode program: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.stdout, string(encoded))
	return 0
}

func (c *cli) runFixtures(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "monkey fixtures requires a directory")
		return 1
	}
	suites, err := interpreter.LoadFixtureDir(args[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "%v\n", err)
		return 1
	}
	passed, failed := 0, 0
	for _, suite := range suites {
		name := strings.TrimSuffix(filepath.Base(suite.Path), filepath.Ext(suite.Path))
		for _, fixture := range suite.Cases {
			result := interpreter.RunFixture(fixture)
			if result.Passed() {
				passed++
				fmt.Fprintf(c.stdout, "ok   %s/%s\n", name, result.Name)
				continue
			}
			failed++
			fmt.Fprintf(c.stdout, "FAIL %s/%s\n", name, result.Name)
			for _, failure := range result.Failures {
				fmt.Fprintf(c.stdout, "\t%s\n", failure)
			}
		}
	}
	fmt.Fprintf(c.stdout, "%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// reportError prints parse failures under the monkey banner and everything
// else as a single runtime error line.
func (c *cli) reportError(w io.Writer, err error) {
	var parseErr *interpreter.ParseError
	if errors.As(err, &parseErr) {
		printParserErrors(w, parseErr.Messages)
		return
	}
	fmt.Fprintf(w, "runtime error: %v\n", err)
}
