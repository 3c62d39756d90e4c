// Package config provides configuration management for the tool shell with
// Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// EnvPrefix prefixes every environment override, e.g. PPTB_LOGGING_LEVEL.
const EnvPrefix = "PPTB"

// Config represents the complete configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Session   SessionConfig   `mapstructure:"session" toml:"session"`
	Shortcuts ShortcutsConfig `mapstructure:"shortcuts" toml:"shortcuts"`
	Modal     ModalConfig     `mapstructure:"modal" toml:"modal"`
}

// DatabaseConfig holds the local storage settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/pptb/pptb.sqlite.
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
}

// SessionConfig controls open-tools persistence.
type SessionConfig struct {
	AutoRestore        bool `mapstructure:"auto_restore" toml:"auto_restore"`
	RestoreConcurrency int  `mapstructure:"restore_concurrency" toml:"restore_concurrency"`
}

// ShortcutsConfig lists the key combinations of each tab shortcut, in
// "ctrl+shift+tab" notation.
type ShortcutsConfig struct {
	NextTab     []string `mapstructure:"next_tab" toml:"next_tab"`
	PreviousTab []string `mapstructure:"previous_tab" toml:"previous_tab"`
	CloseTab    []string `mapstructure:"close_tab" toml:"close_tab"`
	TogglePin   []string `mapstructure:"toggle_pin" toml:"toggle_pin"`
}

// ModalSize is the surface size of one dialog kind.
type ModalSize struct {
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`
}

// ModalConfig overrides dialog sizes, keyed by dialog kind
// (e.g. "select-connection").
type ModalConfig struct {
	Sizes map[string]ModalSize `mapstructure:"sizes" toml:"sizes"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, then the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir, "."), nil
}

// NewManagerForDir creates a manager reading config.toml from dir only.
func NewManagerForDir(dir string) *Manager {
	return newManager(dir)
}

func newManager(paths ...string) *Manager {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		viper:     v,
		dir:       paths[0],
		callbacks: make([]func(*Config), 0),
	}
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}
	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// reload unmarshals, normalises and validates the current viper state. It
// must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.viper.ConfigFileUsed(), err)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	if config.Session.RestoreConcurrency == 0 {
		config.Session.RestoreConcurrency = DefaultRestoreConcurrency
	}

	defaults := DefaultConfig().Shortcuts
	if len(config.Shortcuts.NextTab) == 0 {
		config.Shortcuts.NextTab = defaults.NextTab
	}
	if len(config.Shortcuts.PreviousTab) == 0 {
		config.Shortcuts.PreviousTab = defaults.PreviousTab
	}
	if len(config.Shortcuts.CloseTab) == 0 {
		config.Shortcuts.CloseTab = defaults.CloseTab
	}
	if len(config.Shortcuts.TogglePin) == 0 {
		config.Shortcuts.TogglePin = defaults.TogglePin
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, "config.toml")
}

// createDefaultConfig writes the defaults to the first config path.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(configFile, filePerm)
}
