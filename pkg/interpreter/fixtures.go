package interpreter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"monkey/interpreter-go/pkg/parser"
)

// FixtureSuite is one YAML fixture file: a list of programs with their
// expected outcomes.
type FixtureSuite struct {
	Path        string        `yaml:"-"`
	Description string        `yaml:"description"`
	Cases       []FixtureCase `yaml:"cases"`
}

type FixtureCase struct {
	Name   string             `yaml:"name"`
	Source string             `yaml:"source"`
	Expect FixtureExpectation `yaml:"expect"`
}

// FixtureExpectation lists what a case checks. Empty fields are not checked,
// except that an error is always a failure unless Error or ParseErrors asks
// for one.
type FixtureExpectation struct {
	Value       *string  `yaml:"value"`
	Kind        string   `yaml:"kind"`
	Rendered    string   `yaml:"rendered"`
	Stdout      []string `yaml:"stdout"`
	ParseErrors []string `yaml:"parse_errors"`
	Error       string   `yaml:"error"`
}

// FixtureResult is the outcome of replaying one case.
type FixtureResult struct {
	Name     string
	Failures []string
}

func (r FixtureResult) Passed() bool { return len(r.Failures) == 0 }

// LoadFixtures decodes a fixture file, rejecting unknown keys.
func LoadFixtures(path string) (*FixtureSuite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var suite FixtureSuite
	if err := decoder.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixtures: %s is empty", path)
		}
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	suite.Path = path
	for idx, c := range suite.Cases {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("fixtures: %s: cases[%d] missing name", path, idx)
		}
	}
	return &suite, nil
}

// LoadFixtureDir loads every *.yml file in dir in name order.
func LoadFixtureDir(dir string) ([]*FixtureSuite, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("fixtures: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	suites := make([]*FixtureSuite, 0, len(paths))
	for _, path := range paths {
		suite, err := LoadFixtures(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// RunFixture evaluates a case with a fresh interpreter that has puts wired to
// a buffer, then compares every expectation the case sets.
func RunFixture(c FixtureCase) FixtureResult {
	result := FixtureResult{Name: c.Name}
	fail := func(format string, args ...any) {
		result.Failures = append(result.Failures, fmt.Sprintf(format, args...))
	}
	expect := c.Expect

	program, parseErrs := parser.ParseProgram(c.Source)
	if len(expect.ParseErrors) > 0 {
		if len(parseErrs) == 0 {
			fail("expected parse errors %v, got none", expect.ParseErrors)
			return result
		}
		for _, want := range expect.ParseErrors {
			if !contains(parseErrs, want) {
				fail("expected parse error %q in %v", want, parseErrs)
			}
		}
		return result
	}
	if len(parseErrs) > 0 {
		fail("unexpected parse errors: %v", parseErrs)
		return result
	}
	if expect.Rendered != "" && program.String() != expect.Rendered {
		fail("rendered %q, want %q", program.String(), expect.Rendered)
	}

	var stdout bytes.Buffer
	interp := New(WithBuiltin(Puts(&stdout)))
	value, err := interp.EvaluateProgram(program)

	if expect.Error != "" {
		if err == nil {
			fail("expected error %q, got value %s", expect.Error, value)
		} else if err.Error() != expect.Error {
			fail("error %q, want %q", err.Error(), expect.Error)
		}
		return result
	}
	if err != nil {
		fail("evaluation error: %v", err)
		return result
	}

	if expect.Value != nil && value.String() != *expect.Value {
		fail("value %s, want %s", value, *expect.Value)
	}
	if expect.Kind != "" && value.Kind().String() != expect.Kind {
		fail("kind %s, want %s", value.Kind(), expect.Kind)
	}
	if expect.Stdout != nil {
		lines := splitLines(stdout.String())
		if strings.Join(lines, "\n") != strings.Join(expect.Stdout, "\n") {
			fail("stdout %q, want %q", lines, expect.Stdout)
		}
	}
	return result
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
