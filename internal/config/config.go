// Package config loads numlit.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"numlit/internal/parsenum"
)

// FileName is the name looked up by Find.
const FileName = "numlit.toml"

const defaultMaxDiagnostics = 100

// Config is the resolved configuration of a run. Zero-valued fields of a
// loaded file keep their defaults.
type Config struct {
	Path string // file the values came from, "" for defaults

	Reporting    parsenum.Reporting
	SmallIntBits int
	Float        bool
	Complex      bool

	Jobs           int
	MaxDiagnostics int
	Cache          bool
	CacheDir       string
}

type fileConfig struct {
	Errors  errorsConfig  `toml:"errors"`
	Numbers numbersConfig `toml:"numbers"`
	Scan    scanConfig    `toml:"scan"`
}

type errorsConfig struct {
	Reporting string `toml:"reporting"`
}

type numbersConfig struct {
	SmallIntBits int  `toml:"small_int_bits"`
	Float        bool `toml:"float"`
	Complex      bool `toml:"complex"`
}

type scanConfig struct {
	Jobs           int    `toml:"jobs"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Cache          bool   `toml:"cache"`
	CacheDir       string `toml:"cache_dir"`
}

// Default returns the configuration used when no numlit.toml exists.
func Default() Config {
	return Config{
		Reporting:      parsenum.ReportNormal,
		Float:          true,
		Complex:        true,
		MaxDiagnostics: defaultMaxDiagnostics,
	}
}

// Find walks up from startDir looking for numlit.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest numlit.toml above startDir, or returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes and validates the file at path.
func Load(path string) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Path = path

	if meta.IsDefined("errors", "reporting") {
		r, err := parsenum.ParseReporting(fc.Errors.Reporting)
		if err != nil {
			return Config{}, fmt.Errorf("%s: [errors].reporting: %w", path, err)
		}
		cfg.Reporting = r
	}
	if meta.IsDefined("numbers", "small_int_bits") {
		cfg.SmallIntBits = fc.Numbers.SmallIntBits
	}
	if meta.IsDefined("numbers", "float") {
		cfg.Float = fc.Numbers.Float
	}
	if meta.IsDefined("numbers", "complex") {
		cfg.Complex = fc.Numbers.Complex
	}
	if meta.IsDefined("scan", "jobs") {
		cfg.Jobs = fc.Scan.Jobs
	}
	if meta.IsDefined("scan", "max_diagnostics") {
		cfg.MaxDiagnostics = fc.Scan.MaxDiagnostics
	}
	cfg.Cache = fc.Scan.Cache
	if dir := strings.TrimSpace(fc.Scan.CacheDir); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		cfg.CacheDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := c.Parser().Validate(); err != nil {
		return err
	}
	if c.Jobs < 0 {
		return fmt.Errorf("[scan].jobs must not be negative, got %d", c.Jobs)
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("[scan].max_diagnostics must not be negative, got %d", c.MaxDiagnostics)
	}
	return nil
}

// Parser returns the parser configuration.
func (c Config) Parser() parsenum.Config {
	return parsenum.Config{
		SmallIntBits:   c.SmallIntBits,
		DisableFloat:   !c.Float,
		DisableComplex: !c.Complex,
		Reporting:      c.Reporting,
	}
}
