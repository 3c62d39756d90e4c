package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
)

// RenderShortcuts renders a key map as expanded help text.
func RenderShortcuts(theme *Theme, keys help.KeyMap) string {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc

	return fmt.Sprintf("%s %s\n\n%s",
		theme.Highlight.Render(IconKeyboard),
		theme.Title.Render("Tab shortcuts"),
		h.View(keys),
	)
}
