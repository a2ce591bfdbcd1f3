// Package config loads the runtime settings of an application from YAML.
//
//	debug:
//	  borrow_tracking: true
//	  thread_affinity: true
//	breakpoints: {sm: 576, md: 768, lg: 992, xl: 1200, xxl: 1400}
//	metrics:
//	  enabled: true
//	  namespace: myapp
//	log:
//	  level: debug
//	  format: json
//
// Missing keys keep their default value, unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/sigui"
	"github.com/AnatoleLucet/sigui/style"
)

type Config struct {
	Debug       Debug             `yaml:"debug"`
	Breakpoints style.Breakpoints `yaml:"breakpoints"`
	Metrics     Metrics           `yaml:"metrics"`
	Log         Log               `yaml:"log"`
}

type Debug struct {
	BorrowTracking bool `yaml:"borrow_tracking"`
	ThreadAffinity bool `yaml:"thread_affinity"`
}

type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

type Log struct {
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

var ErrInvalid = errors.New("invalid config")

func Default() Config {
	opts := sigui.DefaultOptions()

	return Config{
		Debug: Debug{
			BorrowTracking: opts.BorrowTracking,
			ThreadAffinity: opts.ThreadAffinity,
		},
		Breakpoints: style.DefaultBreakpoints(),
		Metrics: Metrics{
			Namespace: "sigui",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Breakpoints.Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: %w: metrics.namespace is required when metrics are enabled", ErrInvalid)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: %w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	return level, nil
}

// Logger builds the logger described by c, writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Apply installs c process-wide: debug options, default breakpoints, the
// runtime logger writing to logs, and metrics registered on reg when enabled.
func (c Config) Apply(reg prometheus.Registerer, logs io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	logger, err := c.Logger(logs)
	if err != nil {
		return err
	}

	if err := style.SetBreakpoints(c.Breakpoints); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	sigui.Configure(sigui.Options{
		BorrowTracking: c.Debug.BorrowTracking,
		ThreadAffinity: c.Debug.ThreadAffinity,
	})
	sigui.SetLogger(logger)

	if !c.Metrics.Enabled {
		sigui.DisableMetrics()
		return nil
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := sigui.EnableMetrics(reg, c.Metrics.Namespace); err != nil {
		return fmt.Errorf("config: metrics: %w", err)
	}

	return nil
}
