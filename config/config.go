// Package config loads the YAML configuration of the ghertil binary.
//
// A file only needs the keys it overrides; everything else keeps the values
// of Default. Unknown keys are rejected so that typos surface early.
//
//	version: 1
//	generator:
//	  nodes: 10
//	  min_edges: 2
//	  max_edges: 4
//	  non_initiators: 5
//	  min_cost: 1
//	  max_cost: 10
//	seed: 0          # 0 picks a time-based seed
//	search:
//	  timeout: 5s
//	cache:
//	  size: 256      # 0 disables the result cache
//	store:
//	  path: ""       # empty disables snapshot persistence
//	log:
//	  level: info    # debug | info | warn | error
//	  format: text   # text | json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ghertil/builder"
)

// Version is the only configuration schema version understood.
const Version = 1

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration document.
type Config struct {
	Version   int            `yaml:"version"`
	Generator builder.Config `yaml:"generator"`
	Seed      int64          `yaml:"seed"`
	Search    Search         `yaml:"search"`
	Cache     Cache          `yaml:"cache"`
	Store     Store          `yaml:"store"`
	Log       Log            `yaml:"log"`
}

// Search bounds individual queries.
type Search struct {
	// Timeout caps one FindPath call; 0 means no deadline.
	Timeout time.Duration `yaml:"timeout"`
	// MaxDistance, when positive, treats farther targets as unreachable.
	MaxDistance int64 `yaml:"max_distance,omitempty"`
}

// Cache sizes the query result cache.
type Cache struct {
	Size int `yaml:"size"`
}

// Store locates the snapshot database.
type Store struct {
	Path string `yaml:"path"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default reproduces the reference application.
func Default() Config {
	return Config{
		Version:   Version,
		Generator: builder.DefaultConfig(),
		Search:    Search{Timeout: 5 * time.Second},
		Cache:     Cache{Size: 256},
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Load reads path and merges it over Default. The result is validated.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
// An empty document yields Default.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section. Generator checks are delegated to
// builder.Config.Validate, whose error is wrapped alongside ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidConfig, c.Version)
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("%w: generator: %w", ErrInvalidConfig, err)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout %s is negative", ErrInvalidConfig, c.Search.Timeout)
	}
	if c.Search.MaxDistance < 0 {
		return fmt.Errorf("%w: search.max_distance %d is negative", ErrInvalidConfig, c.Search.MaxDistance)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("%w: cache.size %d is negative", ErrInvalidConfig, c.Cache.Size)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel maps Level onto slog's levels.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
	}

	return lvl, nil
}

// NewLogger builds the slog.Logger described by l, writing to w.
func (l Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch l.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format %q", ErrInvalidConfig, l.Format)
	}
}
