package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jenkinpan/teaform/internal/theme"
)

// fileConfig mirrors the optional YAML file (~/.teaform/config.yaml).
// Durations travel as strings so users can write "30m".
type fileConfig struct {
	Title         string        `yaml:"title,omitempty"`
	Theme         string        `yaml:"theme,omitempty"`
	RememberTheme *bool         `yaml:"remember_theme,omitempty"`
	DatabasePath  string        `yaml:"database_path,omitempty"`
	SSH           fileSSHConfig `yaml:"ssh,omitempty"`
}

type fileSSHConfig struct {
	Host        string `yaml:"host,omitempty"`
	Port        int    `yaml:"port,omitempty"`
	HostKeyPath string `yaml:"host_key_path,omitempty"`
	IdleTimeout string `yaml:"idle_timeout,omitempty"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	// Title overrides the window title. Empty keeps the built-in one.
	Title string
	// Theme is the scheme sessions start in.
	Theme theme.Mode
	// RememberTheme re-applies the last saved scheme on the next run.
	RememberTheme bool
	// DatabasePath locates the preference store.
	DatabasePath string
	SSH          SSHConfig
}

// SSHConfig holds the settings for serving the UI over ssh.
type SSHConfig struct {
	Host        string
	Port        int
	HostKeyPath string
	IdleTimeout time.Duration
}

// Environment variables understood by Load. Each overrides the
// matching file value.
const (
	EnvTitle         = "TEAFORM_TITLE"
	EnvTheme         = "TEAFORM_THEME"
	EnvRememberTheme = "TEAFORM_REMEMBER_THEME"
	EnvDatabasePath  = "TEAFORM_DB_PATH"
	EnvSSHHost       = "TEAFORM_SSH_HOST"
	EnvSSHPort       = "TEAFORM_SSH_PORT"
	EnvSSHHostKey    = "TEAFORM_SSH_HOST_KEY"
	EnvSSHIdle       = "TEAFORM_SSH_IDLE_TIMEOUT"
)

// DefaultDir returns the dot directory for teaform's files.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teaform"
	}
	return filepath.Join(home, ".teaform")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() Config {
	dir := DefaultDir()
	return Config{
		Theme:        theme.Dark,
		DatabasePath: filepath.Join(dir, "teaform.db"),
		SSH: SSHConfig{
			Host:        "localhost",
			Port:        23234,
			HostKeyPath: filepath.Join(dir, "id_ed25519"),
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// Load resolves the configuration in three layers: built-in defaults,
// then the YAML file at path (a missing file is fine), then TEAFORM_*
// environment variables. A .env file in the working directory feeds
// the environment first.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}

	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	fc, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := applyFile(&cfg, fc); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile reads the YAML file if present.
func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}

func applyFile(cfg *Config, fc fileConfig) error {
	if v := strings.TrimSpace(fc.Title); v != "" {
		cfg.Title = v
	}
	if v := strings.TrimSpace(fc.Theme); v != "" {
		mode, err := theme.ParseMode(v)
		if err != nil {
			return fmt.Errorf("config theme: %w", err)
		}
		cfg.Theme = mode
	}
	if fc.RememberTheme != nil {
		cfg.RememberTheme = *fc.RememberTheme
	}
	if v := strings.TrimSpace(fc.DatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(fc.SSH.Host); v != "" {
		cfg.SSH.Host = v
	}
	if fc.SSH.Port != 0 {
		cfg.SSH.Port = fc.SSH.Port
	}
	if v := strings.TrimSpace(fc.SSH.HostKeyPath); v != "" {
		cfg.SSH.HostKeyPath = v
	}
	if v := strings.TrimSpace(fc.SSH.IdleTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config ssh.idle_timeout: %w", err)
		}
		cfg.SSH.IdleTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvTitle)); v != "" {
		cfg.Title = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		mode, err := theme.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTheme, err)
		}
		cfg.Theme = mode
	}
	if v := strings.TrimSpace(os.Getenv(EnvRememberTheme)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRememberTheme, err)
		}
		cfg.RememberTheme = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabasePath)); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSSHHost)); v != "" {
		cfg.SSH.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSSHPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSSHPort, err)
		}
		cfg.SSH.Port = port
	}
	if v := strings.TrimSpace(os.Getenv(EnvSSHHostKey)); v != "" {
		cfg.SSH.HostKeyPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSSHIdle)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSSHIdle, err)
		}
		cfg.SSH.IdleTimeout = d
	}
	return nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return fmt.Errorf("database path is required")
	}
	if strings.TrimSpace(cfg.SSH.HostKeyPath) == "" {
		return fmt.Errorf("ssh host key path is required")
	}
	if cfg.SSH.Port < 1 || cfg.SSH.Port > 65535 {
		return fmt.Errorf("ssh port %d out of range", cfg.SSH.Port)
	}
	if cfg.SSH.IdleTimeout <= 0 {
		return fmt.Errorf("ssh idle timeout must be positive, got %s", cfg.SSH.IdleTimeout)
	}
	return nil
}
