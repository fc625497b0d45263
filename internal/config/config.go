package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Content     ContentConfig     `yaml:"content"`
	Language    LanguageConfig    `yaml:"language"`
	Boilerplate BoilerplateConfig `yaml:"boilerplate"`
	Compiler    CompilerConfig    `yaml:"compiler"`
	Check       CheckConfig       `yaml:"check"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ContentConfig locates the documentation tree.
type ContentConfig struct {
	Root      string `yaml:"root"`
	Extension string `yaml:"extension,omitempty"` // documentation file extension, default ".md"
}

// LanguageConfig describes how checked snippets are recognized inside fences.
type LanguageConfig struct {
	Tag          string `yaml:"tag"`                     // fence info-string tag for checked snippets
	SkipModifier string `yaml:"skip_modifier,omitempty"` // trailing word marking an illustrative, unchecked snippet
	CommentToken string `yaml:"comment_token,omitempty"` // single-line comment token of the checked language
	HiddenStart  string `yaml:"hidden_start,omitempty"`  // hidden-region start marker
	HiddenEnd    string `yaml:"hidden_end,omitempty"`    // hidden-region end marker
}

// BoilerplateConfig locates the shared prelude prepended to every checked snippet.
type BoilerplateConfig struct {
	Path string `yaml:"path"`
}

// CompilerConfig describes the external compiler binary.
type CompilerConfig struct {
	Path     string   `yaml:"path"`
	CheckArg string   `yaml:"check_arg,omitempty"` // subcommand passed before the unit path
	Timeout  Duration `yaml:"timeout,omitempty"`   // per-invocation budget
}

// CheckConfig tunes a single check run.
type CheckConfig struct {
	Workers int    `yaml:"workers,omitempty"` // bounded concurrent compiler invocations
	Format  string `yaml:"format,omitempty"`  // report format: text or json
}

// WatchConfig tunes the long-running watch mode.
type WatchConfig struct {
	Debounce    Duration   `yaml:"debounce,omitempty"` // quiet period after a filesystem event
	Interval    Duration   `yaml:"interval,omitempty"` // scheduled full re-check period (0 disables)
	MetricsAddr string     `yaml:"metrics_addr,omitempty"`
	HistoryDB   string     `yaml:"history_db,omitempty"` // sqlite path, ":memory:" allowed
	NATS        NATSConfig `yaml:"nats,omitempty"`
}

// NATSConfig enables publishing run summaries to a NATS subject.
type NATSConfig struct {
	URL     string `yaml:"url,omitempty"` // empty disables publishing
	Subject string `yaml:"subject,omitempty"`
}

// LoggingConfig controls slog setup.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load loads configuration from the specified file, overlaying .env variables,
// applying defaults, and validating the result.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, dcerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, dcerrors.Wrap(err, dcerrors.CategoryConfig, dcerrors.SeverityFatal, "failed to read configuration")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, dcerrors.Wrap(err, dcerrors.CategoryConfig, dcerrors.SeverityFatal, "failed to parse configuration")
	}

	cfg.applyEnvOverrides()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides lets a handful of environment variables override file values,
// primarily so CI can point at a different compiler without editing the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DOCCHECK_COMPILER"); v != "" {
		c.Compiler.Path = v
	}
	if v := os.Getenv("DOCCHECK_CONTENT_ROOT"); v != "" {
		c.Content.Root = v
	}
	if v := os.Getenv("DOCCHECK_BOILERPLATE"); v != "" {
		c.Boilerplate.Path = v
	}
	if v := os.Getenv("DOCCHECK_NATS_URL"); v != "" {
		c.Watch.NATS.URL = v
	}
}
