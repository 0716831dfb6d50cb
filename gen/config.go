package gen

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// DefaultHeader is the header comment written at the top of every
// generated file.
const DefaultHeader = "Code generated by loom. DO NOT EDIT."

// Config configures code generation.
type Config struct {
	// Target is the output directory. Created if it does not exist.
	Target string
	// Package is the package name of the generated files. Defaults to
	// the base name of the target directory.
	Package string
	// Header is the header comment of the generated files.
	Header string
	// Workers bounds the number of files written in parallel. Defaults
	// to GOMAXPROCS.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", pkg, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithWorkers bounds the number of files written in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", fmt.Sprint(n), "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// NewConfig returns a generation config for the target directory with the
// given options applied.
func NewConfig(target string, opts ...Option) (Config, error) {
	if target == "" {
		return Config{}, NewConfigError("Target", target, "missing target directory")
	}
	cfg := Config{
		Target:  target,
		Package: filepath.Base(target),
		Header:  DefaultHeader,
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
