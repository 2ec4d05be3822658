package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Notification kinds.
const (
	KindText  = "text"
	KindImage = "image"
	KindVideo = "video"
)

// Rendering platforms.
const (
	PlatformWeb     = "web"
	PlatformMobile  = "mobile"
	PlatformDesktop = "desktop"
)

// Config holds all configuration for bridge-notify
type Config struct {
	// Messages framing the showcase output
	Banner  string `yaml:"banner"`
	Closing string `yaml:"closing"`

	// Behavior flags
	Quiet bool `yaml:"quiet" env:"BRIDGE_NOTIFY_QUIET"`

	// Notifications to render, in order
	Notifications []Entry `yaml:"notifications"`
}

// Entry describes one notification to render: its content kind, the
// platform to render it on, and the content fields.
type Entry struct {
	Kind     string `yaml:"kind"`
	Platform string `yaml:"platform"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Media    string `yaml:"media"`
}

// DefaultConfig returns the default configuration: the canned showcase
// covering every notification kind across the three platforms.
func DefaultConfig() *Config {
	return &Config{
		Banner:  "=== Notification Showcase ===",
		Closing: "All notifications rendered.",
		Notifications: []Entry{
			{
				Kind:     KindText,
				Platform: PlatformWeb,
				Title:    "Novo Pedido",
				Body:     "Você tem um novo pedido",
			},
			{
				Kind:     KindText,
				Platform: PlatformMobile,
				Title:    "Novo Pedido",
				Body:     "Você tem um novo pedido",
			},
			{
				Kind:     KindImage,
				Platform: PlatformWeb,
				Title:    "Oferta Relâmpago",
				Body:     "Só hoje!",
				Media:    "oferta.png",
			},
			{
				Kind:     KindImage,
				Platform: PlatformDesktop,
				Title:    "Oferta Relâmpago",
				Body:     "Só hoje!",
				Media:    "oferta.png",
			},
			{
				Kind:     KindVideo,
				Platform: PlatformMobile,
				Title:    "Novo Tutorial",
				Body:     "Aprenda em 10 minutos",
				Media:    "tutorial.mp4",
			},
		},
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("BRIDGE_NOTIFY_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bridge-notify", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "bridge-notify", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if quiet := os.Getenv("BRIDGE_NOTIFY_QUIET"); quiet != "" {
		switch quiet {
		case "true", "1", "yes":
			cfg.Quiet = true
		case "false", "0", "no":
			cfg.Quiet = false
		default:
			return fmt.Errorf("invalid BRIDGE_NOTIFY_QUIET value: %q (use true/false)", quiet)
		}
	}

	return nil
}

// validate validates the configuration. Content strings are never
// validated; empty titles, bodies and locators render as empty text.
func validate(cfg *Config) error {
	for i, entry := range cfg.Notifications {
		switch entry.Kind {
		case KindText, KindImage, KindVideo:
		default:
			return fmt.Errorf("notifications[%d]: unknown kind %q", i, entry.Kind)
		}

		switch entry.Platform {
		case PlatformWeb, PlatformMobile, PlatformDesktop:
		default:
			return fmt.Errorf("notifications[%d]: unknown platform %q", i, entry.Platform)
		}
	}

	return nil
}
