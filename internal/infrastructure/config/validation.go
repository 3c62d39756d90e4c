package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateShortcuts(config)...)
	validationErrors = append(validationErrors, validateModal(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

const maxRestoreConcurrency = 32

func validateSession(config *Config) []string {
	n := config.Session.RestoreConcurrency
	if n < 1 || n > maxRestoreConcurrency {
		return []string{fmt.Sprintf("session.restore_concurrency must be between 1 and %d (got: %d)", maxRestoreConcurrency, n)}
	}
	return nil
}

func validateShortcuts(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]string)
	check := func(name string, keys []string) {
		for _, k := range keys {
			norm := strings.ToLower(strings.TrimSpace(k))
			if norm == "" || strings.HasSuffix(norm, "+") {
				validationErrors = append(validationErrors, fmt.Sprintf("shortcuts.%s has an invalid key %q", name, k))
				continue
			}
			if other, dup := seen[norm]; dup && other != name {
				validationErrors = append(validationErrors, fmt.Sprintf("shortcuts.%s reuses %q already bound to shortcuts.%s", name, k, other))
				continue
			}
			seen[norm] = name
		}
	}
	check("next_tab", config.Shortcuts.NextTab)
	check("previous_tab", config.Shortcuts.PreviousTab)
	check("close_tab", config.Shortcuts.CloseTab)
	check("toggle_pin", config.Shortcuts.TogglePin)
	return validationErrors
}

func validateModal(config *Config) []string {
	var validationErrors []string
	for kind, size := range config.Modal.Sizes {
		if size.Width <= 0 || size.Height <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"modal.sizes.%s must have a positive width and height (got: %dx%d)",
				kind, size.Width, size.Height,
			))
		}
	}
	return validationErrors
}
