package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrTooLarge is returned by CheckTokens and CheckCells when an input exceeds a limit.
var ErrTooLarge = errors.New("config: input exceeds size limit")

var (
	validFormats   = []Format{FormatText, FormatHTML, FormatJSON, FormatPlain}
	validViews     = []View{ViewModified, ViewOriginal}
	validLogLevels = []LogLevel{LogDebug, LogInfo, LogWarn, LogError}
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of [Default] and
// validates the result. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error
	if !slices.Contains(validFormats, cfg.Format) {
		errs = append(errs, fmt.Errorf("format %q is not one of %v", cfg.Format, validFormats))
	}
	if !slices.Contains(validViews, cfg.View) {
		errs = append(errs, fmt.Errorf("view %q is not one of %v", cfg.View, validViews))
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q is not one of %v", cfg.LogLevel, validLogLevels))
	}
	return errors.Join(errs...)
}

// CheckTokens reports whether an input of n tokens may be diffed under cfg.
func (cfg *Config) CheckTokens(name string, n int) error {
	if cfg.MaxTokens > 0 && n > cfg.MaxTokens {
		return fmt.Errorf("%w: %s has %d tokens, limit is %d", ErrTooLarge, name, n, cfg.MaxTokens)
	}
	return nil
}

// CheckCells reports whether the LCS table for inputs of m and n tokens fits
// under cfg.MaxCells.
func (cfg *Config) CheckCells(m, n int) error {
	if cfg.MaxCells <= 0 {
		return nil
	}
	// Divide rather than multiply so huge inputs cannot overflow.
	if n+1 > cfg.MaxCells/(m+1) {
		return fmt.Errorf("%w: %d x %d token table exceeds max_cells %d", ErrTooLarge, m, n, cfg.MaxCells)
	}
	return nil
}
