package config

// DefaultRestoreConcurrency bounds how many tool windows a restore opens at once.
const DefaultRestoreConcurrency = 4

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "console",
			MaxSizeMB: 10,
		},
		Session: SessionConfig{
			AutoRestore:        true,
			RestoreConcurrency: DefaultRestoreConcurrency,
		},
		Shortcuts: ShortcutsConfig{
			NextTab:     []string{"ctrl+tab"},
			PreviousTab: []string{"ctrl+shift+tab"},
			CloseTab:    []string{"ctrl+w"},
			TogglePin:   []string{"ctrl+shift+p"},
		},
		Modal: ModalConfig{Sizes: map[string]ModalSize{}},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is resolved in reload so the XDG lookup honours the
	// environment at load time.
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)

	m.viper.SetDefault("session.auto_restore", defaults.Session.AutoRestore)
	m.viper.SetDefault("session.restore_concurrency", defaults.Session.RestoreConcurrency)

	m.viper.SetDefault("shortcuts.next_tab", defaults.Shortcuts.NextTab)
	m.viper.SetDefault("shortcuts.previous_tab", defaults.Shortcuts.PreviousTab)
	m.viper.SetDefault("shortcuts.close_tab", defaults.Shortcuts.CloseTab)
	m.viper.SetDefault("shortcuts.toggle_pin", defaults.Shortcuts.TogglePin)
	m.viper.SetDefault("modal.sizes", defaults.Modal.Sizes)
}
