package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Transport    TransportConfig    `yaml:"transport"`
	Log          LogConfig          `yaml:"log"`
	Source       SourceConfig       `yaml:"source"`
	Integrations IntegrationsConfig `yaml:"integrations"`
	Scheduling   SchedulingConfig   `yaml:"scheduling"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "http" or "stdio"
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// SourceConfig selects where collection reads data from.
type SourceConfig struct {
	Mode   string       `yaml:"mode"` // "fixture", "live" or "sqlite"
	SQLite SQLiteConfig `yaml:"sqlite"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
	// Seed fills empty tables with the sample dataset on startup.
	Seed bool `yaml:"seed"`
}

type IntegrationsConfig struct {
	Slack  SlackConfig  `yaml:"slack"`
	GitHub GitHubConfig `yaml:"github"`
	Jira   JiraConfig   `yaml:"jira"`
}

type SlackConfig struct {
	BotToken       string `yaml:"bot_token"`
	DefaultChannel string `yaml:"default_channel"`
}

type GitHubConfig struct {
	Token      string `yaml:"token"`
	Repository string `yaml:"repository"`
}

type JiraConfig struct {
	URL        string `yaml:"url"`
	Token      string `yaml:"token"`
	ProjectKey string `yaml:"project_key"`
}

type SchedulingConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	Interval     time.Duration `yaml:"interval"`
}

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"

	SourceFixture = "fixture"
	SourceLive    = "live"
	SourceSQLite  = "sqlite"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: TransportHTTP,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: SourceConfig{
			Mode: SourceFixture,
			SQLite: SQLiteConfig{
				Path: "wellbeing.db",
				Seed: true,
			},
		},
		Integrations: IntegrationsConfig{
			Slack:  SlackConfig{DefaultChannel: "general"},
			GitHub: GitHubConfig{Repository: "team-wellbeing-agent"},
			Jira:   JiraConfig{ProjectKey: "TEAM"},
		},
		Scheduling: SchedulingConfig{
			Enabled:      false,
			InitialDelay: 30 * time.Second,
			Interval:     5 * time.Minute,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("WELLBEING_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("WELLBEING_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("WELLBEING_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid WELLBEING_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("WELLBEING_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("WELLBEING_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("WELLBEING_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if mode := os.Getenv("WELLBEING_SOURCE"); mode != "" {
		cfg.Source.Mode = mode
	}
	if path := os.Getenv("WELLBEING_SQLITE_PATH"); path != "" {
		cfg.Source.SQLite.Path = path
	}
	if enabled := os.Getenv("WELLBEING_SCHEDULING_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return fmt.Errorf("invalid WELLBEING_SCHEDULING_ENABLED: %w", err)
		}
		cfg.Scheduling.Enabled = v
	}
	if interval := os.Getenv("WELLBEING_COLLECT_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid WELLBEING_COLLECT_INTERVAL: %w", err)
		}
		cfg.Scheduling.Interval = d
	}
	if token := os.Getenv("SLACK_BOT_TOKEN"); token != "" {
		cfg.Integrations.Slack.BotToken = token
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Integrations.GitHub.Token = token
	}
	if token := os.Getenv("JIRA_TOKEN"); token != "" {
		cfg.Integrations.Jira.Token = token
	}
	return nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Source.Mode {
	case SourceFixture, SourceLive:
	case SourceSQLite:
		if c.Source.SQLite.Path == "" {
			return fmt.Errorf("sqlite source requires source.sqlite.path")
		}
	default:
		return fmt.Errorf("invalid source mode %q", c.Source.Mode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Scheduling.Enabled && c.Scheduling.Interval <= 0 {
		return fmt.Errorf("scheduling interval must be positive, got %s", c.Scheduling.Interval)
	}
	if c.Scheduling.InitialDelay < 0 {
		return fmt.Errorf("scheduling initial delay must not be negative")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
