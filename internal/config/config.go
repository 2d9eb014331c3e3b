package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"checkattr/internal/trace"
)

// Config is the merged view of checkattr.toml. Zero values mean "not set";
// Defaults fills what the CLI needs.
type Config struct {
	// Path of the file the values came from, empty for defaults.
	Path string `toml:"-"`
	// Dir is the directory relative input paths are resolved against.
	Dir string `toml:"-"`

	Diagnostics Diagnostics `toml:"diagnostics"`
	Check       Check       `toml:"check"`
	Trace       Trace       `toml:"trace"`

	defined map[string]bool
}

type Diagnostics struct {
	Format           string `toml:"format"`
	Max              int    `toml:"max"`
	WarningsAsErrors bool   `toml:"warnings_as_errors"`
	NoWarnings       bool   `toml:"no_warnings"`
	WithNotes        bool   `toml:"with_notes"`
}

type Check struct {
	Jobs  int      `toml:"jobs"`
	Paths []string `toml:"paths"`
}

type Trace struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

var (
	// ErrUnknownKey reports a key checkattr does not understand.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidValue reports a key with a value outside its domain.
	ErrInvalidValue = errors.New("invalid value")
)

// Formats lists the accepted diagnostics.format values.
var Formats = []string{"pretty", "short", "json", "sarif"}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Diagnostics: Diagnostics{Format: "pretty", WithNotes: true},
		Trace:       Trace{Level: "off", Output: "-"},
		defined:     map[string]bool{},
	}
}

// FileError is a checkattr.toml that exists but cannot be used.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// Load parses path over the defaults and validates it. Problems with the
// file itself come back as *FileError.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, &FileError{Path: path, Err: fmt.Errorf("failed to parse TOML: %w", err)}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &FileError{Path: path, Err: fmt.Errorf("%w %q", ErrUnknownKey, undecoded[0].String())}
	}
	for _, key := range meta.Keys() {
		cfg.defined[key.String()] = true
	}
	cfg.Path = path
	cfg.Dir = filepath.Dir(path)
	if err := cfg.validate(); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return cfg, nil
}

// Discover loads checkattr.toml found upward from startDir, or the defaults.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		cfg := Defaults()
		cfg.Dir = startDir
		return cfg, nil
	}
	return Load(path)
}

// IsDefined reports whether the file set the dotted key, e.g.
// "diagnostics.format". CLI flags use it to decide precedence.
func (c *Config) IsDefined(key string) bool {
	return c.defined[key]
}

func (c *Config) validate() error {
	c.Diagnostics.Format = strings.ToLower(strings.TrimSpace(c.Diagnostics.Format))
	if !validFormat(c.Diagnostics.Format) {
		return fmt.Errorf("%w: diagnostics.format %q (expected %s)", ErrInvalidValue, c.Diagnostics.Format, strings.Join(Formats, "|"))
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("%w: diagnostics.max must not be negative, got %d", ErrInvalidValue, c.Diagnostics.Max)
	}
	if c.Diagnostics.WarningsAsErrors && c.Diagnostics.NoWarnings {
		return fmt.Errorf("%w: diagnostics.warnings_as_errors and diagnostics.no_warnings are mutually exclusive", ErrInvalidValue)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: check.jobs must not be negative, got %d", ErrInvalidValue, c.Check.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("%w: trace.level: %v", ErrInvalidValue, err)
	}
	return nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// InputPaths returns check.paths resolved against the config directory.
func (c *Config) InputPaths() []string {
	out := make([]string, 0, len(c.Check.Paths))
	for _, p := range c.Check.Paths {
		if !filepath.IsAbs(p) && c.Dir != "" {
			p = filepath.Join(c.Dir, p)
		}
		out = append(out, p)
	}
	return out
}
