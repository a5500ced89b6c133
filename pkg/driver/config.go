package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"monkey/interpreter-go/pkg/interpreter"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "monkey.yml"

// Mode selects what the REPL prints for each line.
type Mode string

const (
	ModeEval  Mode = "eval"
	ModeParse Mode = "parse"
)

// IsValid reports whether the mode is recognised.
func (m Mode) IsValid() bool {
	switch m {
	case ModeEval, ModeParse:
		return true
	default:
		return false
	}
}

// Config represents the parsed contents of monkey.yml.
type Config struct {
	Path         string
	Mode         Mode
	Prompt       string
	HistoryFile  string
	Trace        bool
	MaxCallDepth int
}

// DefaultConfig returns the settings used when no monkey.yml exists.
func DefaultConfig() *Config {
	return &Config{
		Mode:         ModeEval,
		Prompt:       ">> ",
		HistoryFile:  defaultHistoryFile(),
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".monkey_history")
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var ErrConfigNotFound = errors.New("config: monkey.yml not found")

type configFile struct {
	Mode         *string `yaml:"mode"`
	Prompt       *string `yaml:"prompt"`
	HistoryFile  *string `yaml:"history_file"`
	Trace        *bool   `yaml:"trace"`
	MaxCallDepth *int    `yaml:"max_call_depth"`
}

// LoadConfig parses a config file from disk. Keys left out keep their
// DefaultConfig values; unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if cf.Mode != nil {
		cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(*cf.Mode)))
	}
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	if cf.HistoryFile != nil {
		cfg.HistoryFile = expandHome(strings.TrimSpace(*cf.HistoryFile))
	}
	if cf.Trace != nil {
		cfg.Trace = *cf.Trace
	}
	if cf.MaxCallDepth != nil {
		cfg.MaxCallDepth = *cf.MaxCallDepth
	}
	return cfg
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (c *Config) validate() error {
	var errs ValidationError
	if !c.Mode.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("mode %q must be one of eval, parse", c.Mode))
	}
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must be a non-empty string")
	}
	if c.MaxCallDepth <= 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be positive (got %d)", c.MaxCallDepth))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start towards the filesystem root and returns the
// first monkey.yml it meets.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig loads path when given, otherwise the nearest monkey.yml
// above dir, falling back to DefaultConfig when there is none.
func ResolveConfig(path, dir string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	found, err := FindConfig(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadConfig(found)
}
