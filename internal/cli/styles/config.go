package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file path.
func (r *ConfigRenderer) RenderPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s Config %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderConfig renders the effective configuration, one section per block.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	var sb strings.Builder
	sb.WriteString(r.RenderPath(path))
	sb.WriteString("\n")

	r.section(&sb, "database", [][2]string{
		{"path", cfg.Database.Path},
	})
	r.section(&sb, "logging", [][2]string{
		{"level", cfg.Logging.Level},
		{"format", cfg.Logging.Format},
		{"enable_file_log", fmt.Sprintf("%t", cfg.Logging.EnableFileLog)},
		{"log_dir", cfg.Logging.LogDir},
		{"max_size_mb", fmt.Sprintf("%d", cfg.Logging.MaxSizeMB)},
	})
	r.section(&sb, "session", [][2]string{
		{"auto_restore", fmt.Sprintf("%t", cfg.Session.AutoRestore)},
		{"restore_concurrency", fmt.Sprintf("%d", cfg.Session.RestoreConcurrency)},
	})
	r.section(&sb, "shortcuts", [][2]string{
		{"next_tab", strings.Join(cfg.Shortcuts.NextTab, ", ")},
		{"previous_tab", strings.Join(cfg.Shortcuts.PreviousTab, ", ")},
		{"close_tab", strings.Join(cfg.Shortcuts.CloseTab, ", ")},
		{"toggle_pin", strings.Join(cfg.Shortcuts.TogglePin, ", ")},
	})

	kinds := make([]string, 0, len(cfg.Modal.Sizes))
	for kind := range cfg.Modal.Sizes {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	sizes := make([][2]string, 0, len(kinds))
	for _, kind := range kinds {
		size := cfg.Modal.Sizes[kind]
		sizes = append(sizes, [2]string{kind, fmt.Sprintf("%dx%d", size.Width, size.Height)})
	}
	r.section(&sb, "modal.sizes", sizes)

	return sb.String()
}

func (r *ConfigRenderer) section(sb *strings.Builder, name string, entries [][2]string) {
	sb.WriteString("\n")
	sb.WriteString(r.theme.Highlight.Render("[" + name + "]"))
	sb.WriteString("\n")
	if len(entries) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("(defaults)") + "\n")
		return
	}
	for _, e := range entries {
		value := e[1]
		if value == "" {
			value = r.theme.Subtle.Render("(unset)")
		}
		sb.WriteString(fmt.Sprintf("  %s = %s\n", r.theme.Title.Render(e[0]), value))
	}
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s Config error: %v", iconStyle.Render(IconX), err)
}
