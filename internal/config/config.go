package config

import (
	"fmt"
	"time"

	"github.com/jackielii/pageroute"
)

// Config is the root configuration of the pageroute server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Routes  RoutesConfig  `yaml:"routes"`
	Content ContentConfig `yaml:"content"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Router          string        `yaml:"router"` // "std" or "chi"
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Compress        bool          `yaml:"compress"`
	TrustProxy      bool          `yaml:"trust_proxy"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// RoutesConfig selects the route table. Variant names a preset ("pages" or
// "web"); the other fields override it.
type RoutesConfig struct {
	Variant       string `yaml:"variant"`
	Prefix        string `yaml:"prefix"`
	History       string `yaml:"history"` // web or hash
	ScopedHistory *bool  `yaml:"scoped_history"`
	Strict        bool   `yaml:"strict"`
	Title         string `yaml:"title"`
}

// ContentConfig selects where documents come from.
type ContentConfig struct {
	Source string   `yaml:"source"` // fs or s3
	Dir    string   `yaml:"dir"`
	S3     S3Config `yaml:"s3"`
}

// S3Config holds the bucket settings of the s3 content source.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TracerName string `yaml:"tracer_name"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Router == "" {
		c.Server.Router = "std"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Routes.Variant == "" && c.Routes.Prefix == "" {
		c.Routes.Variant = pageroute.WebVariant.Name
	}
	if c.Content.Source == "" {
		c.Content.Source = "fs"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "content"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Server.Router {
	case "std", "chi":
	default:
		return fmt.Errorf("server.router: unknown router %q", c.Server.Router)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	switch c.Content.Source {
	case "fs":
	case "s3":
		if c.Content.S3.Bucket == "" {
			return fmt.Errorf("content.s3.bucket: required for the s3 source")
		}
	default:
		return fmt.Errorf("content.source: unknown source %q", c.Content.Source)
	}
	if _, err := c.Pages(); err != nil {
		return err
	}
	return nil
}

// Pages returns the route table configuration. A prefix that differs from the
// variant's names the result "custom".
func (c *Config) Pages() (pageroute.Config, error) {
	var pc pageroute.Config
	if c.Routes.Variant != "" {
		v, ok := pageroute.Variant(c.Routes.Variant)
		if !ok {
			return pc, fmt.Errorf("routes.variant: unknown variant %q", c.Routes.Variant)
		}
		pc = v
	} else {
		pc.Name = "custom"
	}
	if c.Routes.Prefix != "" {
		if pageroute.NormalizePrefix(c.Routes.Prefix) != pageroute.NormalizePrefix(pc.Prefix) {
			pc.Name = "custom"
		}
		pc.Prefix = c.Routes.Prefix
	}
	if c.Routes.History != "" {
		mode, err := pageroute.ParseHistoryMode(c.Routes.History)
		if err != nil {
			return pc, fmt.Errorf("routes.history: %w", err)
		}
		pc.Mode = mode
	}
	if c.Routes.ScopedHistory != nil {
		pc.ScopedHistory = *c.Routes.ScopedHistory
	}
	if err := pc.Validate(); err != nil {
		return pc, fmt.Errorf("routes: %w", err)
	}
	return pc, nil
}
