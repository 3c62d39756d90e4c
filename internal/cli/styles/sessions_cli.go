package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// SessionsCLIRenderer renders the output of `pptb session` subcommands.
type SessionsCLIRenderer struct {
	theme *Theme
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme}
}

func (r *SessionsCLIRenderer) RenderEmpty() string {
	return r.theme.Subtle.Render("No saved session found.")
}

// RenderSnapshot lists the open tools of snap in launch order.
func (r *SessionsCLIRenderer) RenderSnapshot(snap *entity.SessionSnapshot, now time.Time) string {
	if snap == nil || len(snap.OpenTools) == 0 {
		return r.RenderEmpty()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconWindow), r.theme.Title.Render("Open tools")))
	if !snap.SavedAt.IsZero() {
		b.WriteString(r.theme.Subtle.Render(" saved " + relativeTime(snap.SavedAt, now)))
	}
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(snap.OpenTools))
	for i, t := range snap.OpenTools {
		marker := " "
		if t.InstanceID == snap.ActiveInstanceID {
			marker = "●"
		}
		pin := ""
		if t.IsPinned {
			pin = IconPin
		}
		secondary := string(t.SecondaryConnectionID)
		if secondary == "" {
			secondary = "-"
		}
		rows = append(rows, []string{
			marker,
			fmt.Sprintf("%d", i+1),
			string(t.ToolID),
			pin,
			string(t.ConnectionID),
			secondary,
		})
	}

	b.WriteString(r.table([]string{"", "#", "TOOL", "PIN", "PRIMARY", "SECONDARY"}, rows).String())
	return b.String()
}

func (r *SessionsCLIRenderer) RenderCleared() string {
	return fmt.Sprintf("%s Saved session cleared.", r.theme.SuccessStyle.Render(IconCheck))
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *SessionsCLIRenderer) table(headers []string, rows [][]string) *table.Table {
	return newTable(r.theme, headers, rows)
}

// newTable builds a borderless themed table.
func newTable(theme *Theme, headers []string, rows [][]string) *table.Table {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// relativeTime formats t relative to now, e.g. "5m ago".
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
